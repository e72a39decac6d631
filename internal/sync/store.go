// Package sync keeps a client-side copy of one room's state converged with
// the authoritative store. Local mutations overlay the copy immediately for
// latency hiding; pushed change events carry the authoritative outcome and
// overwrite whatever the overlay guessed, so a lost optimistic write heals
// on the next event without any rollback bookkeeping.
package sync

import (
	stdsync "sync"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Store holds the local copy of a room's snapshot
type Store struct {
	mu       stdsync.RWMutex
	snapshot *models.Snapshot
	lost     bool
}

// NewStore creates an empty store; reads fail until the first Replace
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current local state. It fails when no snapshot was
// loaded yet or when the change feed was lost, because serving a copy that
// silently stopped receiving events is worse than failing.
func (s *Store) Snapshot() (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lost {
		return nil, ErrStaleState
	}
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot, nil
}

// Replace installs a freshly fetched authoritative snapshot and clears the
// lost flag
func (s *Store) Replace(snapshot *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.lost = false
}

// ApplyLocal overlays an optimistic local mutation. It is refused while the
// feed is lost: an overlay on stale state cannot be healed by events that
// are no longer arriving.
func (s *Store) ApplyLocal(event *models.ChangeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost {
		return ErrStaleState
	}
	if s.snapshot == nil {
		return ErrNoSnapshot
	}
	s.merge(event)
	return nil
}

// Reconcile applies an authoritative change event. Events that arrive while
// the feed is marked lost are dropped; only a full Replace recovers.
func (s *Store) Reconcile(event *models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost || s.snapshot == nil {
		return
	}
	s.merge(event)
}

// merge folds a partial snapshot into the local copy. Callers hold the lock.
func (s *Store) merge(event *models.ChangeEvent) {
	if event.Room != nil {
		s.snapshot.Room = event.Room
	}
	if event.Players != nil {
		if s.snapshot.Players == nil {
			s.snapshot.Players = make(map[string]*models.Player, len(event.Players))
		}
		for id, p := range event.Players {
			s.snapshot.Players[id] = p
		}
	}
	if event.Zones != nil {
		s.snapshot.Zones = event.Zones
	}
	if event.Requests != nil {
		s.snapshot.Requests = event.Requests
	}
	if event.Reactions != nil {
		s.snapshot.Reactions = event.Reactions
	}
}

// MarkLost flags the local copy as no longer converging
func (s *Store) MarkLost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lost = true
}

// Lost reports whether the change feed was lost
func (s *Store) Lost() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lost
}
