package reaction

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestReaction(tag models.ReactionTag) *models.Reaction {
	return &models.Reaction{
		RoomID:     "test-room-id",
		SpeakerID:  "speaker-id",
		ListenerID: "listener-id",
		CardID:     "card-1",
		Tag:        tag,
		CreatedAt:  s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestToggleCreatesThenRemoves() {
	rec := s.newTestReaction(models.TagResonates)

	out, err := s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: rec})
	s.Require().NoError(err)
	s.True(out.Active)

	listed, err := s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Len(listed.Reactions, 1)

	// Second toggle returns the ledger to its pre-toggle state exactly
	out, err = s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: rec})
	s.Require().NoError(err)
	s.False(out.Active)

	listed, err = s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Empty(listed.Reactions)
}

func (s *RedisRepositoryTestSuite) TestRippleIsIndependentOfReactionType() {
	resonates := s.newTestReaction(models.TagResonates)
	ripple := s.newTestReaction(models.TagRipple)

	_, err := s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: resonates})
	s.Require().NoError(err)
	_, err = s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: ripple})
	s.Require().NoError(err)

	listed, err := s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Len(listed.Reactions, 2)

	// Toggling the ripple off leaves the reaction intact
	_, err = s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: ripple})
	s.Require().NoError(err)

	listed, err = s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Require().Len(listed.Reactions, 1)
	s.Equal(models.TagResonates, listed.Reactions[0].Tag)
}

func (s *RedisRepositoryTestSuite) TestDistinctListenersKeepDistinctRecords() {
	first := s.newTestReaction(models.TagMeToo)
	second := s.newTestReaction(models.TagMeToo)
	second.ListenerID = "other-listener-id"

	_, err := s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: first})
	s.Require().NoError(err)
	_, err = s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: second})
	s.Require().NoError(err)

	listed, err := s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Len(listed.Reactions, 2)
}

func (s *RedisRepositoryTestSuite) TestClearRoom() {
	_, err := s.repo.ToggleReaction(s.ctx, &ToggleReactionInput{Reaction: s.newTestReaction(models.TagInspiring)})
	s.Require().NoError(err)

	err = s.repo.ClearRoom(s.ctx, &ClearRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)

	listed, err := s.repo.GetReactionsForRoom(s.ctx, &GetReactionsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Empty(listed.Reactions)
}