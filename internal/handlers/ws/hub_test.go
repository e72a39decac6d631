package ws

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type HubTestSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	ps     *pubsub.Redis
	hub    *Hub
	ctx    context.Context
}

func (s *HubTestSuite) SetupTest() {
	var err error
	s.mini, err = miniredis.Run()
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.ps, err = pubsub.NewRedis(&pubsub.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.hub = NewHub(s.ps)
	s.ctx = context.Background()
}

func (s *HubTestSuite) TearDownTest() {
	s.client.Close()
	s.mini.Close()
}

func (s *HubTestSuite) roomEntrySize(roomID string) (rooms, clients int) {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	rooms = len(s.hub.rooms)
	if entry, ok := s.hub.rooms[roomID]; ok {
		s.NotNil(entry.subscription)
		clients = len(entry.clients)
	}
	return rooms, clients
}

func (s *HubTestSuite) TestJoinAttachesFeedOnce() {
	first := &client{playerID: "alice"}
	second := &client{playerID: "bob"}

	s.Require().NoError(s.hub.Join(s.ctx, "room-1", first))
	s.Require().NoError(s.hub.Join(s.ctx, "room-1", second))

	rooms, clients := s.roomEntrySize("room-1")
	s.Equal(1, rooms)
	s.Equal(2, clients)

	s.hub.Leave("room-1", first)
	s.hub.Leave("room-1", second)
}

// Concurrent first joins race to attach the feed; exactly one subscription
// must survive and every client must end up registered.
func (s *HubTestSuite) TestConcurrentJoinsKeepOneSubscription() {
	const joiners = 8

	joined := make([]*client, joiners)
	var wg sync.WaitGroup
	for i := 0; i < joiners; i++ {
		joined[i] = &client{playerID: fmt.Sprintf("player-%d", i)}
		wg.Add(1)
		go func(c *client) {
			defer wg.Done()
			s.NoError(s.hub.Join(s.ctx, "room-1", c))
		}(joined[i])
	}
	wg.Wait()

	rooms, clients := s.roomEntrySize("room-1")
	s.Equal(1, rooms)
	s.Equal(joiners, clients)

	for _, c := range joined {
		s.hub.Leave("room-1", c)
	}
	rooms, _ = s.roomEntrySize("room-1")
	s.Equal(0, rooms)
}

func (s *HubTestSuite) TestLastLeaveDetachesFeed() {
	first := &client{playerID: "alice"}
	second := &client{playerID: "bob"}

	s.Require().NoError(s.hub.Join(s.ctx, "room-1", first))
	s.Require().NoError(s.hub.Join(s.ctx, "room-1", second))

	s.hub.Leave("room-1", first)
	rooms, clients := s.roomEntrySize("room-1")
	s.Equal(1, rooms)
	s.Equal(1, clients)

	s.hub.Leave("room-1", second)
	rooms, _ = s.roomEntrySize("room-1")
	s.Equal(0, rooms)
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}
