package cards

// CardError represents an error in the cards service
type CardError string

// Error implements the error interface
func (e CardError) Error() string {
	return string(e)
}

const (
	// ErrCardNotFound is returned when a card does not exist
	ErrCardNotFound = CardError("card not found")

	// ErrCardNotInHand is returned when a player selects a card they do not hold
	ErrCardNotInHand = CardError("card is not in the player's hand")

	// ErrAlreadyDealt is returned when a player asks for a hand they already received this round
	ErrAlreadyDealt = CardError("player was already dealt a hand this round")

	// ErrDealingFailed is returned when the pool cannot cover a full hand
	ErrDealingFailed = CardError("not enough cards remain to deal a hand")

	// ErrNotInSetupPhase is returned when a hand operation arrives outside setup
	ErrNotInSetupPhase = CardError("hands can only change during setup")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = CardError("room not found")

	// ErrPlayerNotInRoom is returned when the player is not a member of the room
	ErrPlayerNotInRoom = CardError("player is not in the room")

	// Config validation errors
	ErrNilConfig     = CardError("config cannot be nil")
	ErrNilRoomRepo   = CardError("room repository cannot be nil")
	ErrNilPlayerRepo = CardError("player repository cannot be nil")
	ErrNilCardRepo   = CardError("card repository cannot be nil")
	ErrNilPublisher  = CardError("publisher cannot be nil")
	ErrNilClock      = CardError("clock cannot be nil")
)
