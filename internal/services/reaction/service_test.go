package reaction

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/princengoc/unspoken-sub000/internal/common/clock/mocks"
	"github.com/princengoc/unspoken-sub000/internal/models"
	pubsubMocks "github.com/princengoc/unspoken-sub000/internal/pubsub/mocks"
	playerMocks "github.com/princengoc/unspoken-sub000/internal/repositories/player/mocks"
	reactionRepo "github.com/princengoc/unspoken-sub000/internal/repositories/reaction"
	reactionMocks "github.com/princengoc/unspoken-sub000/internal/repositories/reaction/mocks"
	roomMocks "github.com/princengoc/unspoken-sub000/internal/repositories/room/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReactionServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomRepo     *roomMocks.MockRepository
	mockPlayerRepo   *playerMocks.MockRepository
	mockReactionRepo *reactionMocks.MockRepository
	mockPublisher    *pubsubMocks.MockPublisher
	mockClock        *clockMocks.MockClock
	reactionService  Service
	ctx              context.Context

	testTime   time.Time
	testRoomID string
	speakerID  string
	listenerID string
}

func (s *ReactionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockReactionRepo = reactionMocks.NewMockRepository(s.mockCtrl)
	s.mockPublisher = pubsubMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 7, 21, 30, 0, 0, time.UTC)
	s.testRoomID = "test-room-id"
	s.speakerID = "speaker-id"
	s.listenerID = "listener-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := New(&Config{
		RoomRepo:     s.mockRoomRepo,
		PlayerRepo:   s.mockPlayerRepo,
		ReactionRepo: s.mockReactionRepo,
		Publisher:    s.mockPublisher,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.reactionService = svc
}

func (s *ReactionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReactionServiceTestSuite) expectValidToggle() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(&models.Room{ID: s.testRoomID}, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.listenerID, RoomID: s.testRoomID}, nil)

	s.mockReactionRepo.EXPECT().
		GetReactionsForRoom(gomock.Any(), gomock.Any()).
		Return(&reactionRepo.GetReactionsForRoomOutput{}, nil)
}

func (s *ReactionServiceTestSuite) TestToggle_TurnsOn() {
	s.expectValidToggle()

	s.mockReactionRepo.EXPECT().
		ToggleReaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *reactionRepo.ToggleReactionInput) (*reactionRepo.ToggleReactionOutput, error) {
			s.Equal(models.TagResonates, input.Reaction.Tag)
			s.True(input.Reaction.IsPrivate)
			return &reactionRepo.ToggleReactionOutput{Active: true}, nil
		})

	output, err := s.reactionService.Toggle(s.ctx, &ToggleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.TagResonates,
		IsPrivate:  true,
	})

	s.Require().NoError(err)
	s.True(output.Active)
	s.Equal(models.TagResonates, output.Reaction.Tag)
}

func (s *ReactionServiceTestSuite) TestToggle_SecondFlipTurnsOff() {
	s.expectValidToggle()

	s.mockReactionRepo.EXPECT().
		ToggleReaction(gomock.Any(), gomock.Any()).
		Return(&reactionRepo.ToggleReactionOutput{Active: false}, nil)

	output, err := s.reactionService.Toggle(s.ctx, &ToggleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.TagMeToo,
	})

	s.Require().NoError(err)
	s.False(output.Active)
}

func (s *ReactionServiceTestSuite) TestToggle_UnknownTag() {
	output, err := s.reactionService.Toggle(s.ctx, &ToggleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.ReactionTag("applause"),
	})

	s.Require().Error(err)
	s.Equal(ErrInvalidTag, err)
	s.Nil(output)
}

func (s *ReactionServiceTestSuite) TestToggle_RippleTagRejected() {
	// The ripple mark has its own operation; it is not a reaction type
	output, err := s.reactionService.Toggle(s.ctx, &ToggleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.TagRipple,
	})

	s.Require().Error(err)
	s.Equal(ErrInvalidTag, err)
	s.Nil(output)
}

func (s *ReactionServiceTestSuite) TestToggle_SelfReaction() {
	output, err := s.reactionService.Toggle(s.ctx, &ToggleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.listenerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.TagInspiring,
	})

	s.Require().Error(err)
	s.Equal(ErrSelfReaction, err)
	s.Nil(output)
}

func (s *ReactionServiceTestSuite) TestToggleRipple_AlwaysPrivate() {
	s.expectValidToggle()

	s.mockReactionRepo.EXPECT().
		ToggleReaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *reactionRepo.ToggleReactionInput) (*reactionRepo.ToggleReactionOutput, error) {
			s.Equal(models.TagRipple, input.Reaction.Tag)
			s.True(input.Reaction.IsPrivate)
			return &reactionRepo.ToggleReactionOutput{Active: true}, nil
		})

	output, err := s.reactionService.ToggleRipple(s.ctx, &ToggleRippleInput{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
	})

	s.Require().NoError(err)
	s.True(output.Active)
	s.Equal(models.TagRipple, output.Reaction.Tag)
}

func (s *ReactionServiceTestSuite) TestListForRoom_FiltersByVisibility() {
	private := &models.Reaction{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: s.listenerID,
		CardID:     "c1",
		Tag:        models.TagResonates,
		IsPrivate:  true,
	}
	public := &models.Reaction{
		RoomID:     s.testRoomID,
		SpeakerID:  s.speakerID,
		ListenerID: "other-listener",
		CardID:     "c1",
		Tag:        models.TagInspiring,
	}

	s.mockReactionRepo.EXPECT().
		GetReactionsForRoom(gomock.Any(), gomock.Any()).
		Return(&reactionRepo.GetReactionsForRoomOutput{
			Reactions: []*models.Reaction{private, public},
		}, nil).
		Times(3)

	// A third party sees only the public reaction
	asThirdParty, err := s.reactionService.ListForRoom(s.ctx, &ListForRoomInput{
		RoomID:   s.testRoomID,
		ViewerID: "bystander-id",
	})
	s.Require().NoError(err)
	s.Len(asThirdParty.Reactions, 1)
	s.Equal(public, asThirdParty.Reactions[0])

	// The issuing listener sees their own private reaction
	asListener, err := s.reactionService.ListForRoom(s.ctx, &ListForRoomInput{
		RoomID:   s.testRoomID,
		ViewerID: s.listenerID,
	})
	s.Require().NoError(err)
	s.Len(asListener.Reactions, 2)

	// The addressed speaker sees everything on their card
	asSpeaker, err := s.reactionService.ListForRoom(s.ctx, &ListForRoomInput{
		RoomID:   s.testRoomID,
		ViewerID: s.speakerID,
	})
	s.Require().NoError(err)
	s.Len(asSpeaker.Reactions, 2)
}

func TestReactionServiceSuite(t *testing.T) {
	suite.Run(t, new(ReactionServiceTestSuite))
}
