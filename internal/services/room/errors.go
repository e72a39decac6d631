package room

// RoomError is a custom error type for room-related errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound           RoomError = "room not found"
	ErrPlayerNotFound         RoomError = "player not found"
	ErrPlayerNotInRoom        RoomError = "player not in room"
	ErrPlayerAlreadyInRoom    RoomError = "player already in room"
	ErrRoomFull               RoomError = "room is at maximum capacity"
	ErrRoomNotJoinable        RoomError = "room is not accepting players"
	ErrNotOwner               RoomError = "only the room owner may do this"
	ErrNotActiveSpeaker       RoomError = "player is not the active speaker"
	ErrInvalidPhaseTransition RoomError = "invalid phase transition"
	ErrConcurrentUpdate       RoomError = "room was updated concurrently, re-sync required"
	ErrNilConfig              RoomError = "config cannot be nil"
	ErrNilRoomRepo            RoomError = "room repository cannot be nil"
	ErrNilPlayerRepo          RoomError = "player repository cannot be nil"
	ErrNilCardRepo            RoomError = "card repository cannot be nil"
	ErrNilExchangeRepo        RoomError = "exchange repository cannot be nil"
	ErrNilReactionRepo        RoomError = "reaction repository cannot be nil"
	ErrNilPicker              RoomError = "speaker picker cannot be nil"
	ErrNilPublisher           RoomError = "publisher cannot be nil"
	ErrNilClock               RoomError = "clock cannot be nil"
	ErrNilUUIDGenerator       RoomError = "UUID generator cannot be nil"
)
