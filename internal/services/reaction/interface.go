package reaction

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/princengoc/unspoken-sub000/internal/services/reaction Service

// Service defines the interface for the reaction and ripple ledger
type Service interface {
	// Toggle flips a reaction on or off for its exact tuple
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)

	// ToggleRipple flips the listener's save-for-later mark, independent of
	// any reaction on the same card
	ToggleRipple(ctx context.Context, input *ToggleRippleInput) (*ToggleRippleOutput, error)

	// ListForRoom retrieves the reactions visible to one viewer
	ListForRoom(ctx context.Context, input *ListForRoomInput) (*ListForRoomOutput, error)
}
