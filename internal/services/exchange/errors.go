package exchange

// ExchangeError represents an error in the exchange service
type ExchangeError string

// Error implements the error interface
func (e ExchangeError) Error() string {
	return string(e)
}

const (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = ExchangeError("room not found")

	// ErrPlayerNotInRoom is returned when either side of the exchange is not a member
	ErrPlayerNotInRoom = ExchangeError("player is not in the room")

	// ErrSelfExchange is returned when a player dares themselves
	ErrSelfExchange = ExchangeError("cannot propose an exchange to yourself")

	// ErrCardNotExchangeable is returned when the proposed card is not one of
	// the sender's own discarded cards
	ErrCardNotExchangeable = ExchangeError("card is not available for exchange")

	// ErrDuplicateRequest is returned when a pending request already exists
	// between the same sender and recipient
	ErrDuplicateRequest = ExchangeError("a pending request to that player already exists")

	// ErrRequestNotFound is returned when the request does not exist
	ErrRequestNotFound = ExchangeError("exchange request not found")

	// ErrNotRecipient is returned when someone other than the recipient responds
	ErrNotRecipient = ExchangeError("only the recipient can respond to a request")

	// ErrRequestAlreadySettled is returned when responding to an accepted or
	// declined request
	ErrRequestAlreadySettled = ExchangeError("request has already been settled")

	// Config validation errors
	ErrNilConfig       = ExchangeError("config cannot be nil")
	ErrNilRoomRepo     = ExchangeError("room repository cannot be nil")
	ErrNilPlayerRepo   = ExchangeError("player repository cannot be nil")
	ErrNilCardRepo     = ExchangeError("card repository cannot be nil")
	ErrNilExchangeRepo = ExchangeError("exchange repository cannot be nil")
	ErrNilPublisher    = ExchangeError("publisher cannot be nil")
	ErrNilClock        = ExchangeError("clock cannot be nil")
	ErrNilUUID         = ExchangeError("uuid generator cannot be nil")
)
