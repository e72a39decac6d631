package exchange

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

func (s *RedisRepositoryTestSuite) newTestRequest(id, from, to string, offset time.Duration) *models.ExchangeRequest {
	return &models.ExchangeRequest{
		ID:           id,
		RoomID:       "test-room-id",
		FromPlayerID: from,
		ToPlayerID:   to,
		CardID:       "card-1",
		Status:       models.ExchangePending,
		CreatedAt:    s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRequest() {
	req := s.newTestRequest("req-1", "player-a", "player-b", 0)

	err := s.repo.SaveRequest(s.ctx, &SaveRequestInput{Request: req})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRequest(s.ctx, &GetRequestInput{RequestID: "req-1"})
	s.Require().NoError(err)
	s.Equal("player-a", retrieved.FromPlayerID)
	s.Equal("player-b", retrieved.ToPlayerID)
	s.Equal(models.ExchangePending, retrieved.Status)
}

func (s *RedisRepositoryTestSuite) TestGetRequestNotFound() {
	_, err := s.repo.GetRequest(s.ctx, &GetRequestInput{RequestID: "missing"})
	s.ErrorIs(err, ErrRequestNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateRequestStatus() {
	req := s.newTestRequest("req-1", "player-a", "player-b", 0)
	s.Require().NoError(s.repo.SaveRequest(s.ctx, &SaveRequestInput{Request: req}))

	respondedAt := s.testNow.Add(time.Minute)
	req.Status = models.ExchangeAccepted
	req.RespondedAt = &respondedAt
	s.Require().NoError(s.repo.SaveRequest(s.ctx, &SaveRequestInput{Request: req}))

	retrieved, err := s.repo.GetRequest(s.ctx, &GetRequestInput{RequestID: "req-1"})
	s.Require().NoError(err)
	s.Equal(models.ExchangeAccepted, retrieved.Status)
	s.Require().NotNil(retrieved.RespondedAt)
	s.True(retrieved.RespondedAt.Equal(respondedAt))
}

func (s *RedisRepositoryTestSuite) TestGetRequestsForRoomOrdered() {
	s.Require().NoError(s.repo.SaveRequest(s.ctx, &SaveRequestInput{
		Request: s.newTestRequest("req-2", "player-b", "player-a", time.Minute),
	}))
	s.Require().NoError(s.repo.SaveRequest(s.ctx, &SaveRequestInput{
		Request: s.newTestRequest("req-1", "player-a", "player-b", 0),
	}))

	out, err := s.repo.GetRequestsForRoom(s.ctx, &GetRequestsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Require().Len(out.Requests, 2)
	s.Equal("req-1", out.Requests[0].ID)
	s.Equal("req-2", out.Requests[1].ID)
}

func (s *RedisRepositoryTestSuite) TestClearRoom() {
	s.Require().NoError(s.repo.SaveRequest(s.ctx, &SaveRequestInput{
		Request: s.newTestRequest("req-1", "player-a", "player-b", 0),
	}))

	err := s.repo.ClearRoom(s.ctx, &ClearRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)

	out, err := s.repo.GetRequestsForRoom(s.ctx, &GetRequestsForRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Empty(out.Requests)

	_, err = s.repo.GetRequest(s.ctx, &GetRequestInput{RequestID: "req-1"})
	s.ErrorIs(err, ErrRequestNotFound)
}