package cards

import "github.com/princengoc/unspoken-sub000/internal/models"

// DealInput contains parameters for dealing a hand
type DealInput struct {
	RoomID   string
	PlayerID string
}

// DealOutput contains the dealt hand with content
type DealOutput struct {
	Cards []*models.Card
}

// SelectInput contains parameters for committing to a card
type SelectInput struct {
	RoomID   string
	PlayerID string
	CardID   string
}

// SelectOutput contains the selection result
type SelectOutput struct {
	Player *models.Player

	// RejectedCardIDs are the hand cards that moved to discard
	RejectedCardIDs []string
}

// DiscardInput contains parameters for discarding cards
type DiscardInput struct {
	RoomID  string
	CardIDs []string
}

// DiscardOutput contains the result of a discard
type DiscardOutput struct {
	Success bool
}

// GetCardInput contains parameters for fetching one card
type GetCardInput struct {
	CardID string
}

// GetCardOutput contains the fetched card
type GetCardOutput struct {
	Card *models.Card
}

// GetCardsInput contains parameters for fetching several cards
type GetCardsInput struct {
	CardIDs []string
}

// GetCardsOutput contains the fetched cards
type GetCardsOutput struct {
	Cards []*models.Card
}
