package sync

// SyncError represents an error in the sync layer
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

const (
	// ErrStaleState is returned when reads arrive after the change feed was
	// lost and before a full resync
	ErrStaleState = SyncError("local state is stale; resync required")

	// ErrNoSnapshot is returned when reads arrive before the first fetch
	ErrNoSnapshot = SyncError("no snapshot loaded yet")

	// ErrWatcherStopped is returned when operating on a stopped watcher
	ErrWatcherStopped = SyncError("watcher has been stopped")

	// ErrFeedDead is returned when resyncing over a subscription that has
	// already terminated; the feed must be re-established first
	ErrFeedDead = SyncError("change feed is dead; restart the watcher")

	// Config validation errors
	ErrNilConfig     = SyncError("config cannot be nil")
	ErrNilStore      = SyncError("store cannot be nil")
	ErrNilSubscriber = SyncError("subscriber cannot be nil")
	ErrNilFetch      = SyncError("fetch function cannot be nil")
	ErrEmptyRoomID   = SyncError("room ID cannot be empty")
)
