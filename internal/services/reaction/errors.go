package reaction

// ReactionError represents an error in the reaction service
type ReactionError string

// Error implements the error interface
func (e ReactionError) Error() string {
	return string(e)
}

const (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = ReactionError("room not found")

	// ErrPlayerNotInRoom is returned when the listener is not a member
	ErrPlayerNotInRoom = ReactionError("player is not in the room")

	// ErrSelfReaction is returned when a speaker reacts to their own card
	ErrSelfReaction = ReactionError("cannot react to your own card")

	// ErrInvalidTag is returned for an unknown reaction tag
	ErrInvalidTag = ReactionError("unknown reaction tag")

	// Config validation errors
	ErrNilConfig       = ReactionError("config cannot be nil")
	ErrNilRoomRepo     = ReactionError("room repository cannot be nil")
	ErrNilPlayerRepo   = ReactionError("player repository cannot be nil")
	ErrNilReactionRepo = ReactionError("reaction repository cannot be nil")
	ErrNilPublisher    = ReactionError("publisher cannot be nil")
	ErrNilClock        = ReactionError("clock cannot be nil")
)
