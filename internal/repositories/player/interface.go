package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/princengoc/unspoken-sub000/internal/repositories/player Repository

import (
	"context"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Repository defines the interface for player data persistence. Player
// records are scoped to a room and forgotten when the room is torn down.
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by room and ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInRoom retrieves all players in a room
	GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error)

	// RemovePlayer removes a player from a room
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error
}
