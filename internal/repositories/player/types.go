package player

import "github.com/princengoc/unspoken-sub000/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	RoomID   string
	PlayerID string
}

// GetPlayersInRoomInput contains parameters for retrieving players in a room
type GetPlayersInRoomInput struct {
	RoomID string
}

// GetPlayersInRoomOutput contains the result of retrieving players in a room
type GetPlayersInRoomOutput struct {
	Players []*models.Player
}

// RemovePlayerInput contains parameters for removing a player from a room
type RemovePlayerInput struct {
	RoomID   string
	PlayerID string
}
