package sync

import (
	"context"
	"fmt"

	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
)

// FetchFunc retrieves the full authoritative snapshot of a room
type FetchFunc func(ctx context.Context, roomID string) (*models.Snapshot, error)

// Config holds the dependencies for a watcher
type Config struct {
	Store      *Store
	Subscriber pubsub.Subscriber
	Fetch      FetchFunc
	RoomID     string
}

// Watcher keeps one store converged with one room: it subscribes to the
// room's change feed, loads the initial snapshot, and reconciles every
// pushed event. When the feed drops, the store is marked lost so readers
// fail fast instead of serving a state that stopped updating.
type Watcher struct {
	store      *Store
	subscriber pubsub.Subscriber
	fetch      FetchFunc
	roomID     string

	subscription *pubsub.Subscription
}

// NewWatcher creates a new watcher
func NewWatcher(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.Subscriber == nil {
		return nil, ErrNilSubscriber
	}
	if cfg.Fetch == nil {
		return nil, ErrNilFetch
	}
	if cfg.RoomID == "" {
		return nil, ErrEmptyRoomID
	}

	return &Watcher{
		store:      cfg.Store,
		subscriber: cfg.Subscriber,
		fetch:      cfg.Fetch,
		roomID:     cfg.RoomID,
	}, nil
}

// Start subscribes and loads the initial snapshot. Subscribing before the
// fetch means a mutation committed between the two lands as an event on the
// already-open feed instead of falling into a gap.
func (w *Watcher) Start(ctx context.Context) error {
	subscription, err := w.subscriber.Subscribe(ctx, w.roomID, w.store.Reconcile)
	if err != nil {
		return fmt.Errorf("failed to subscribe to room %s: %w", w.roomID, err)
	}
	w.subscription = subscription

	snapshot, err := w.fetch(ctx, w.roomID)
	if err != nil {
		_ = subscription.Cancel()
		w.subscription = nil
		return fmt.Errorf("failed to fetch snapshot for room %s: %w", w.roomID, err)
	}
	w.store.Replace(snapshot)

	go func() {
		<-subscription.Done()
		w.store.MarkLost()
	}()

	return nil
}

// Resync refetches the full snapshot and clears the lost flag. It refuses
// to run over a dead feed: a resync only makes the store trustworthy again
// if a live subscription is delivering events behind it, so after a feed
// loss the watcher must be restarted (Stop then Start) before resyncing.
func (w *Watcher) Resync(ctx context.Context) error {
	if w.subscription == nil {
		return ErrWatcherStopped
	}
	select {
	case <-w.subscription.Done():
		return ErrFeedDead
	default:
	}

	snapshot, err := w.fetch(ctx, w.roomID)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot for room %s: %w", w.roomID, err)
	}
	w.store.Replace(snapshot)
	return nil
}

// Stop cancels the subscription
func (w *Watcher) Stop() error {
	if w.subscription == nil {
		return ErrWatcherStopped
	}
	err := w.subscription.Cancel()
	w.subscription = nil
	return err
}
