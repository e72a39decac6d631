package cards

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/princengoc/unspoken-sub000/internal/services/cards Service

// Service defines the interface for hand and custody operations
type Service interface {
	// Deal draws a fresh hand for a player, at most once per round
	Deal(ctx context.Context, input *DealInput) (*DealOutput, error)

	// Select commits a player to one card from their hand; the rest of the
	// hand moves to discard
	Select(ctx context.Context, input *SelectInput) (*SelectOutput, error)

	// Discard moves the listed cards to discard regardless of current zone
	Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error)

	// GetCard retrieves a single card's content
	GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error)

	// GetCards retrieves multiple cards' content
	GetCards(ctx context.Context, input *GetCardsInput) (*GetCardsOutput, error)
}
