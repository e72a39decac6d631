package reaction

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/princengoc/unspoken-sub000/internal/repositories/reaction Repository

import (
	"context"
)

// Repository defines the interface for the reaction ledger. The presence of
// a record is the boolean state; toggling deletes the record if present and
// creates it otherwise.
type Repository interface {
	// ToggleReaction flips the record for the reaction's exact key and
	// reports whether the record now exists
	ToggleReaction(ctx context.Context, input *ToggleReactionInput) (*ToggleReactionOutput, error)

	// GetReactionsForRoom retrieves the room's full reaction ledger
	GetReactionsForRoom(ctx context.Context, input *GetReactionsForRoomInput) (*GetReactionsForRoomOutput, error)

	// ClearRoom removes all reactions for a room at teardown
	ClearRoom(ctx context.Context, input *ClearRoomInput) error
}
