package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/princengoc/unspoken-sub000/internal/repositories/room Repository

import (
	"context"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Repository defines the interface for room state persistence. Writes are
// compare-and-set on the room version, so when two clients race on a
// transition exactly one write is accepted and the loser reconciles from
// the pushed snapshot.
type Repository interface {
	// CreateRoom persists a brand-new room
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// SaveRoom persists a room iff the stored version matches the room's
	// version; on success the room's version is advanced in place
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
