package exchange

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/princengoc/unspoken-sub000/internal/common/clock/mocks"
	uuidMocks "github.com/princengoc/unspoken-sub000/internal/common/uuid/mocks"
	"github.com/princengoc/unspoken-sub000/internal/models"
	pubsubMocks "github.com/princengoc/unspoken-sub000/internal/pubsub/mocks"
	cardMocks "github.com/princengoc/unspoken-sub000/internal/repositories/card/mocks"
	exchangeRepo "github.com/princengoc/unspoken-sub000/internal/repositories/exchange"
	exchangeMocks "github.com/princengoc/unspoken-sub000/internal/repositories/exchange/mocks"
	playerMocks "github.com/princengoc/unspoken-sub000/internal/repositories/player/mocks"
	roomMocks "github.com/princengoc/unspoken-sub000/internal/repositories/room/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExchangeServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomRepo     *roomMocks.MockRepository
	mockPlayerRepo   *playerMocks.MockRepository
	mockCardRepo     *cardMocks.MockRepository
	mockExchangeRepo *exchangeMocks.MockRepository
	mockPublisher    *pubsubMocks.MockPublisher
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	exchangeService  Service
	ctx              context.Context

	testTime      time.Time
	testRoomID    string
	testRequestID string
	alice         string
	bob           string

	testRoom *models.Room
}

func (s *ExchangeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockCardRepo = cardMocks.NewMockRepository(s.mockCtrl)
	s.mockExchangeRepo = exchangeMocks.NewMockRepository(s.mockCtrl)
	s.mockPublisher = pubsubMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 7, 21, 0, 0, 0, time.UTC)
	s.testRoomID = "test-room-id"
	s.testRequestID = "test-request-id"
	s.alice = "alice-id"
	s.bob = "bob-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.testRoom = &models.Room{
		ID:    s.testRoomID,
		Phase: models.PhaseEndgame,
	}

	svc, err := New(&Config{
		RoomRepo:     s.mockRoomRepo,
		PlayerRepo:   s.mockPlayerRepo,
		CardRepo:     s.mockCardRepo,
		ExchangeRepo: s.mockExchangeRepo,
		Publisher:    s.mockPublisher,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
	})
	s.Require().NoError(err)
	s.exchangeService = svc
}

func (s *ExchangeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ExchangeServiceTestSuite) expectValidProposePreconditions() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(s.testRoom, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.alice, RoomID: s.testRoomID}, nil).
		Times(2)

	s.mockCardRepo.EXPECT().
		GetZones(gomock.Any(), gomock.Any()).
		Return(&models.ZoneView{Discard: []string{"c1", "c2"}}, nil)

	s.mockCardRepo.EXPECT().
		GetDealtTo(gomock.Any(), gomock.Any()).
		Return(map[string]string{"c1": s.alice, "c2": s.bob}, nil)
}

// Propose tests

func (s *ExchangeServiceTestSuite) TestPropose_HappyPath() {
	s.expectValidProposePreconditions()

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{}, nil)

	s.mockUUID.EXPECT().NewUUID().Return(s.testRequestID)

	s.mockExchangeRepo.EXPECT().
		SaveRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *exchangeRepo.SaveRequestInput) error {
			s.Equal(s.testRequestID, input.Request.ID)
			s.Equal(models.ExchangePending, input.Request.Status)
			s.Equal("c1", input.Request.CardID)
			s.Nil(input.Request.RespondedAt)
			return nil
		})

	// Post-save publish reloads the full set
	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{}, nil)

	output, err := s.exchangeService.Propose(s.ctx, &ProposeInput{
		RoomID:       s.testRoomID,
		FromPlayerID: s.alice,
		ToPlayerID:   s.bob,
		CardID:       "c1",
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(models.ExchangePending, output.Request.Status)
}

func (s *ExchangeServiceTestSuite) TestPropose_SelfExchange() {
	output, err := s.exchangeService.Propose(s.ctx, &ProposeInput{
		RoomID:       s.testRoomID,
		FromPlayerID: s.alice,
		ToPlayerID:   s.alice,
		CardID:       "c1",
	})

	s.Require().Error(err)
	s.Equal(ErrSelfExchange, err)
	s.Nil(output)
}

func (s *ExchangeServiceTestSuite) TestPropose_CardNotInDiscard() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(s.testRoom, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.alice}, nil).
		Times(2)

	s.mockCardRepo.EXPECT().
		GetZones(gomock.Any(), gomock.Any()).
		Return(&models.ZoneView{Discard: []string{"c2"}}, nil)

	output, err := s.exchangeService.Propose(s.ctx, &ProposeInput{
		RoomID:       s.testRoomID,
		FromPlayerID: s.alice,
		ToPlayerID:   s.bob,
		CardID:       "c1",
	})

	s.Require().Error(err)
	s.Equal(ErrCardNotExchangeable, err)
	s.Nil(output)
}

func (s *ExchangeServiceTestSuite) TestPropose_CardBelongsToSomeoneElse() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(s.testRoom, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.alice}, nil).
		Times(2)

	s.mockCardRepo.EXPECT().
		GetZones(gomock.Any(), gomock.Any()).
		Return(&models.ZoneView{Discard: []string{"c2"}}, nil)

	s.mockCardRepo.EXPECT().
		GetDealtTo(gomock.Any(), gomock.Any()).
		Return(map[string]string{"c2": s.bob}, nil)

	output, err := s.exchangeService.Propose(s.ctx, &ProposeInput{
		RoomID:       s.testRoomID,
		FromPlayerID: s.alice,
		ToPlayerID:   s.bob,
		CardID:       "c2",
	})

	s.Require().Error(err)
	s.Equal(ErrCardNotExchangeable, err)
	s.Nil(output)
}

func (s *ExchangeServiceTestSuite) TestPropose_DuplicatePending() {
	s.expectValidProposePreconditions()

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{
				{
					ID:           "older",
					RoomID:       s.testRoomID,
					FromPlayerID: s.alice,
					ToPlayerID:   s.bob,
					CardID:       "c1",
					Status:       models.ExchangePending,
				},
			},
		}, nil)

	output, err := s.exchangeService.Propose(s.ctx, &ProposeInput{
		RoomID:       s.testRoomID,
		FromPlayerID: s.alice,
		ToPlayerID:   s.bob,
		CardID:       "c1",
	})

	s.Require().Error(err)
	s.Equal(ErrDuplicateRequest, err)
	s.Nil(output)
}

// Respond tests

func (s *ExchangeServiceTestSuite) pendingRequest(id, from, to, cardID string) *models.ExchangeRequest {
	return &models.ExchangeRequest{
		ID:           id,
		RoomID:       s.testRoomID,
		FromPlayerID: from,
		ToPlayerID:   to,
		CardID:       cardID,
		Status:       models.ExchangePending,
		CreatedAt:    s.testTime,
	}
}

func (s *ExchangeServiceTestSuite) TestRespond_AcceptWithoutReverseIsNoMatch() {
	request := s.pendingRequest(s.testRequestID, s.alice, s.bob, "c1")

	s.mockExchangeRepo.EXPECT().
		GetRequest(gomock.Any(), &exchangeRepo.GetRequestInput{RequestID: s.testRequestID}).
		Return(request, nil)

	s.mockExchangeRepo.EXPECT().
		SaveRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *exchangeRepo.SaveRequestInput) error {
			s.Equal(models.ExchangeAccepted, input.Request.Status)
			s.Require().NotNil(input.Request.RespondedAt)
			s.Equal(s.testTime, *input.Request.RespondedAt)
			return nil
		})

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{request},
		}, nil)

	output, err := s.exchangeService.Respond(s.ctx, &RespondInput{
		RoomID:    s.testRoomID,
		RequestID: s.testRequestID,
		PlayerID:  s.bob,
		Accept:    true,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(models.ExchangeAccepted, output.Request.Status)
	s.Nil(output.Match)
}

func (s *ExchangeServiceTestSuite) TestRespond_MutualAcceptanceCompletesMatch() {
	// Bob's dare to Alice is already accepted; Alice's dare to Bob is
	// pending and Bob accepts it now
	reverse := s.pendingRequest("reverse-id", s.bob, s.alice, "c2")
	reverse.Status = models.ExchangeAccepted
	request := s.pendingRequest(s.testRequestID, s.alice, s.bob, "c1")

	s.mockExchangeRepo.EXPECT().
		GetRequest(gomock.Any(), gomock.Any()).
		Return(request, nil)

	s.mockExchangeRepo.EXPECT().
		SaveRequest(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{reverse, request},
		}, nil)

	output, err := s.exchangeService.Respond(s.ctx, &RespondInput{
		RoomID:    s.testRoomID,
		RequestID: s.testRequestID,
		PlayerID:  s.bob,
		Accept:    true,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Require().NotNil(output.Match)
	s.Equal(s.alice, output.Match.PlayerAID)
	s.Equal(s.bob, output.Match.PlayerBID)
	s.Equal(s.testRequestID, output.Match.RequestAToB)
	s.Equal("reverse-id", output.Match.RequestBToA)
}

func (s *ExchangeServiceTestSuite) TestRespond_DeclineNeverMatches() {
	reverse := s.pendingRequest("reverse-id", s.bob, s.alice, "c2")
	reverse.Status = models.ExchangeAccepted
	request := s.pendingRequest(s.testRequestID, s.alice, s.bob, "c1")

	s.mockExchangeRepo.EXPECT().
		GetRequest(gomock.Any(), gomock.Any()).
		Return(request, nil)

	s.mockExchangeRepo.EXPECT().
		SaveRequest(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), gomock.Any()).
		Return(&exchangeRepo.GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{reverse, request},
		}, nil)

	output, err := s.exchangeService.Respond(s.ctx, &RespondInput{
		RoomID:    s.testRoomID,
		RequestID: s.testRequestID,
		PlayerID:  s.bob,
		Accept:    false,
	})

	s.Require().NoError(err)
	s.Equal(models.ExchangeDeclined, output.Request.Status)
	s.Nil(output.Match)
}

func (s *ExchangeServiceTestSuite) TestRespond_OnlyRecipientMayRespond() {
	request := s.pendingRequest(s.testRequestID, s.alice, s.bob, "c1")

	s.mockExchangeRepo.EXPECT().
		GetRequest(gomock.Any(), gomock.Any()).
		Return(request, nil)

	output, err := s.exchangeService.Respond(s.ctx, &RespondInput{
		RoomID:    s.testRoomID,
		RequestID: s.testRequestID,
		PlayerID:  s.alice,
		Accept:    true,
	})

	s.Require().Error(err)
	s.Equal(ErrNotRecipient, err)
	s.Nil(output)
}

func (s *ExchangeServiceTestSuite) TestRespond_SettledRequestIsFinal() {
	request := s.pendingRequest(s.testRequestID, s.alice, s.bob, "c1")
	request.Status = models.ExchangeDeclined

	s.mockExchangeRepo.EXPECT().
		GetRequest(gomock.Any(), gomock.Any()).
		Return(request, nil)

	output, err := s.exchangeService.Respond(s.ctx, &RespondInput{
		RoomID:    s.testRoomID,
		RequestID: s.testRequestID,
		PlayerID:  s.bob,
		Accept:    true,
	})

	s.Require().Error(err)
	s.Equal(ErrRequestAlreadySettled, err)
	s.Nil(output)
}

// ListForRoom tests

func (s *ExchangeServiceTestSuite) TestListForRoom_DerivesMatches() {
	aToB := s.pendingRequest("a-to-b", s.alice, s.bob, "c1")
	aToB.Status = models.ExchangeAccepted
	bToA := s.pendingRequest("b-to-a", s.bob, s.alice, "c2")
	bToA.Status = models.ExchangeAccepted
	unrelated := s.pendingRequest("pending", s.alice, "carol-id", "c1")

	s.mockExchangeRepo.EXPECT().
		GetRequestsForRoom(gomock.Any(), &exchangeRepo.GetRequestsForRoomInput{RoomID: s.testRoomID}).
		Return(&exchangeRepo.GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{aToB, bToA, unrelated},
		}, nil)

	output, err := s.exchangeService.ListForRoom(s.ctx, &ListForRoomInput{RoomID: s.testRoomID})

	s.Require().NoError(err)
	s.Len(output.Requests, 3)
	s.Require().Len(output.Matches, 1)
	s.Equal(s.alice, output.Matches[0].PlayerAID)
	s.Equal(s.bob, output.Matches[0].PlayerBID)
}

func TestExchangeServiceSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}
