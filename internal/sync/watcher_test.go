package sync

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type WatcherTestSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	client  *redis.Client
	pubsub  *pubsub.Redis
	store   *Store
	watcher *Watcher
	ctx     context.Context

	roomID  string
	fetched int
}

func (s *WatcherTestSuite) SetupTest() {
	var err error
	s.mini, err = miniredis.Run()
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.pubsub, err = pubsub.NewRedis(&pubsub.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.roomID = "watched-room"
	s.store = NewStore()
	s.fetched = 0

	s.watcher, err = NewWatcher(&Config{
		Store:      s.store,
		Subscriber: s.pubsub,
		Fetch:      s.fetchSnapshot,
		RoomID:     s.roomID,
	})
	s.Require().NoError(err)
}

func (s *WatcherTestSuite) TearDownTest() {
	s.client.Close()
	s.mini.Close()
}

func (s *WatcherTestSuite) fetchSnapshot(_ context.Context, roomID string) (*models.Snapshot, error) {
	s.fetched++
	return &models.Snapshot{
		Room: &models.Room{
			ID:    roomID,
			Phase: models.PhaseSetup,
		},
		Players: map[string]*models.Player{},
	}, nil
}

func (s *WatcherTestSuite) TestStart_LoadsInitialSnapshot() {
	s.Require().NoError(s.watcher.Start(s.ctx))
	defer func() { _ = s.watcher.Stop() }()

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.Equal(s.roomID, snapshot.Room.ID)
	s.Equal(1, s.fetched)
}

func (s *WatcherTestSuite) TestPushedEventReconcilesIntoStore() {
	s.Require().NoError(s.watcher.Start(s.ctx))
	defer func() { _ = s.watcher.Stop() }()

	err := s.pubsub.Publish(s.ctx, &models.ChangeEvent{
		RoomID: s.roomID,
		Room: &models.Room{
			ID:             s.roomID,
			Phase:          models.PhaseSpeaking,
			ActivePlayerID: "alice",
		},
	})
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		snapshot, err := s.store.Snapshot()
		return err == nil && snapshot.Room.Phase == models.PhaseSpeaking
	}, time.Second, 10*time.Millisecond)
}

func (s *WatcherTestSuite) TestFeedLossMarksStoreStale() {
	s.Require().NoError(s.watcher.Start(s.ctx))

	s.Require().NoError(s.watcher.Stop())

	s.Require().Eventually(func() bool {
		return s.store.Lost()
	}, time.Second, 10*time.Millisecond)

	_, err := s.store.Snapshot()
	s.Equal(ErrStaleState, err)
}

func (s *WatcherTestSuite) TestResync_RecoversFromStaleState() {
	s.Require().NoError(s.watcher.Start(s.ctx))
	defer func() { _ = s.watcher.Stop() }()

	s.store.MarkLost()
	_, err := s.store.Snapshot()
	s.Equal(ErrStaleState, err)

	s.Require().NoError(s.watcher.Resync(s.ctx))
	s.Equal(2, s.fetched)

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.Equal(models.PhaseSetup, snapshot.Room.Phase)
}

func (s *WatcherTestSuite) TestResync_OverDeadFeedFails() {
	s.Require().NoError(s.watcher.Start(s.ctx))

	// Kill the feed without stopping the watcher, as a dropped connection
	// would
	s.Require().NoError(s.watcher.subscription.Cancel())

	s.Require().Eventually(func() bool {
		return s.store.Lost()
	}, time.Second, 10*time.Millisecond)

	err := s.watcher.Resync(s.ctx)
	s.Equal(ErrFeedDead, err)
	s.Equal(1, s.fetched)

	// The store stays stale until the watcher is restarted
	_, err = s.store.Snapshot()
	s.Equal(ErrStaleState, err)
}

func (s *WatcherTestSuite) TestResync_AfterStopFails() {
	s.Require().NoError(s.watcher.Start(s.ctx))
	s.Require().NoError(s.watcher.Stop())

	err := s.watcher.Resync(s.ctx)
	s.Equal(ErrWatcherStopped, err)
}

func TestWatcherSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}
