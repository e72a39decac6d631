package sync

import (
	"testing"

	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.store = NewStore()
}

func (s *StoreTestSuite) seed() *models.Snapshot {
	snapshot := &models.Snapshot{
		Room: &models.Room{
			ID:    "room-1",
			Phase: models.PhaseSetup,
		},
		Players: map[string]*models.Player{
			"alice": {ID: "alice", Username: "Alice"},
			"bob":   {ID: "bob", Username: "Bob"},
		},
		Zones: &models.ZoneView{
			Undealt: []string{"c1", "c2"},
		},
	}
	s.store.Replace(snapshot)
	return snapshot
}

func (s *StoreTestSuite) TestSnapshot_FailsBeforeFirstReplace() {
	snapshot, err := s.store.Snapshot()
	s.Require().Error(err)
	s.Equal(ErrNoSnapshot, err)
	s.Nil(snapshot)
}

func (s *StoreTestSuite) TestReconcile_NilSectionsLeaveStateUntouched() {
	s.seed()

	s.store.Reconcile(&models.ChangeEvent{
		RoomID: "room-1",
		Room:   &models.Room{ID: "room-1", Phase: models.PhaseSpeaking, ActivePlayerID: "alice"},
	})

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.Equal(models.PhaseSpeaking, snapshot.Room.Phase)

	// Untouched sections survive
	s.Len(snapshot.Players, 2)
	s.Equal([]string{"c1", "c2"}, snapshot.Zones.Undealt)
}

func (s *StoreTestSuite) TestReconcile_PlayersMergePerPlayer() {
	s.seed()

	s.store.Reconcile(&models.ChangeEvent{
		RoomID: "room-1",
		Players: map[string]*models.Player{
			"alice": {ID: "alice", Username: "Alice", HasSpoken: true},
		},
	})

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.True(snapshot.Players["alice"].HasSpoken)

	// Bob's record was not in the event and keeps its previous state
	s.Require().NotNil(snapshot.Players["bob"])
	s.False(snapshot.Players["bob"].HasSpoken)
}

func (s *StoreTestSuite) TestReconcile_OverwritesOptimisticOverlay() {
	s.seed()

	// Local guess: alice selected c1
	err := s.store.ApplyLocal(&models.ChangeEvent{
		RoomID: "room-1",
		Zones: &models.ZoneView{
			Selected: map[string]string{"alice": "c1"},
			Undealt:  []string{"c2"},
		},
	})
	s.Require().NoError(err)

	// Authoritative outcome disagrees: the selection lost a race
	s.store.Reconcile(&models.ChangeEvent{
		RoomID: "room-1",
		Zones: &models.ZoneView{
			Undealt: []string{"c1", "c2"},
		},
	})

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.Empty(snapshot.Zones.Selected)
	s.Equal([]string{"c1", "c2"}, snapshot.Zones.Undealt)
}

func (s *StoreTestSuite) TestMarkLost_GatesReadsAndWrites() {
	s.seed()
	s.store.MarkLost()

	_, err := s.store.Snapshot()
	s.Equal(ErrStaleState, err)

	err = s.store.ApplyLocal(&models.ChangeEvent{RoomID: "room-1"})
	s.Equal(ErrStaleState, err)

	// Events arriving on a lost feed are dropped, not merged
	s.store.Reconcile(&models.ChangeEvent{
		RoomID: "room-1",
		Room:   &models.Room{ID: "room-1", Phase: models.PhaseEndgame},
	})

	s.store.Replace(&models.Snapshot{
		Room: &models.Room{ID: "room-1", Phase: models.PhaseSetup},
	})

	snapshot, err := s.store.Snapshot()
	s.Require().NoError(err)
	s.Equal(models.PhaseSetup, snapshot.Room.Phase)
}

func (s *StoreTestSuite) TestReplace_ClearsLostFlag() {
	s.seed()
	s.store.MarkLost()
	s.True(s.store.Lost())

	s.store.Replace(&models.Snapshot{Room: &models.Room{ID: "room-1"}})
	s.False(s.store.Lost())

	_, err := s.store.Snapshot()
	s.Require().NoError(err)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
