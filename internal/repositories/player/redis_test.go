package player

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

func (s *RedisRepositoryTestSuite) newTestPlayer(id string) *models.Player {
	return &models.Player{
		ID:       id,
		RoomID:   "test-room-id",
		Username: "Test Player",
		IsOnline: true,
		JoinedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	p := s.newTestPlayer("player-a")

	err := s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: p})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{
		RoomID:   "test-room-id",
		PlayerID: "player-a",
	})
	s.Require().NoError(err)
	s.Equal(p.ID, retrieved.ID)
	s.Equal(p.Username, retrieved.Username)
	s.False(retrieved.HasSpoken)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{
		RoomID:   "test-room-id",
		PlayerID: "missing",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInRoom() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newTestPlayer("player-a")}))
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newTestPlayer("player-b")}))

	out, err := s.repo.GetPlayersInRoom(s.ctx, &GetPlayersInRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Len(out.Players, 2)

	ids := []string{out.Players[0].ID, out.Players[1].ID}
	s.ElementsMatch([]string{"player-a", "player-b"}, ids)
}

func (s *RedisRepositoryTestSuite) TestRemovePlayer() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newTestPlayer("player-a")}))

	err := s.repo.RemovePlayer(s.ctx, &RemovePlayerInput{
		RoomID:   "test-room-id",
		PlayerID: "player-a",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPlayer(s.ctx, &GetPlayerInput{
		RoomID:   "test-room-id",
		PlayerID: "player-a",
	})
	s.ErrorIs(err, ErrPlayerNotFound)

	out, err := s.repo.GetPlayersInRoom(s.ctx, &GetPlayersInRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Empty(out.Players)
}