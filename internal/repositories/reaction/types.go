package reaction

import "github.com/princengoc/unspoken-sub000/internal/models"

// ToggleReactionInput contains the reaction whose record should be flipped
type ToggleReactionInput struct {
	Reaction *models.Reaction
}

// ToggleReactionOutput reports the record's state after the toggle
type ToggleReactionOutput struct {
	Active bool
}

// GetReactionsForRoomInput contains parameters for listing a room's reactions
type GetReactionsForRoomInput struct {
	RoomID string
}

// GetReactionsForRoomOutput contains the result of listing a room's reactions
type GetReactionsForRoomOutput struct {
	Reactions []*models.Reaction
}

// ClearRoomInput contains parameters for clearing a room's reactions
type ClearRoomInput struct {
	RoomID string
}
