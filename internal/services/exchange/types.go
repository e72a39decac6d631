package exchange

import "github.com/princengoc/unspoken-sub000/internal/models"

// ProposeInput contains parameters for proposing an exchange
type ProposeInput struct {
	RoomID       string
	FromPlayerID string
	ToPlayerID   string
	CardID       string
}

// ProposeOutput contains the created request
type ProposeOutput struct {
	Request *models.ExchangeRequest
}

// RespondInput contains parameters for answering a request
type RespondInput struct {
	RoomID    string
	RequestID string
	PlayerID  string
	Accept    bool
}

// RespondOutput contains the settled request; Match is set when this
// response completed a mutual acceptance
type RespondOutput struct {
	Request *models.ExchangeRequest
	Match   *models.ExchangeMatch
}

// ListForRoomInput contains parameters for listing a room's exchange state
type ListForRoomInput struct {
	RoomID string
}

// ListForRoomOutput contains the live request set and the matches derived
// from it
type ListForRoomOutput struct {
	Requests []*models.ExchangeRequest
	Matches  []*models.ExchangeMatch
}
