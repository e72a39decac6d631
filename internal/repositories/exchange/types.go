package exchange

import "github.com/princengoc/unspoken-sub000/internal/models"

// SaveRequestInput contains parameters for saving an exchange request
type SaveRequestInput struct {
	Request *models.ExchangeRequest
}

// GetRequestInput contains parameters for retrieving a request
type GetRequestInput struct {
	RequestID string
}

// GetRequestsForRoomInput contains parameters for listing a room's requests
type GetRequestsForRoomInput struct {
	RoomID string
}

// GetRequestsForRoomOutput contains the result of listing a room's requests
type GetRequestsForRoomOutput struct {
	Requests []*models.ExchangeRequest
}

// ClearRoomInput contains parameters for clearing a room's requests
type ClearRoomInput struct {
	RoomID string
}
