package card

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/princengoc/unspoken-sub000/internal/repositories/card Repository

import (
	"context"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Repository defines the interface for card custody and content persistence.
// Every mutating operation is a move of an explicit id set between zones,
// never a predicate, so re-applying a move is naturally idempotent.
type Repository interface {
	// SeedPool loads a round's card pool into the room's undealt zone
	SeedPool(ctx context.Context, input *SeedPoolInput) error

	// DealToPlayer atomically moves count cards from undealt into a player's
	// hand, at most once per (room, player, round)
	DealToPlayer(ctx context.Context, input *DealToPlayerInput) (*DealToPlayerOutput, error)

	// SelectCard atomically moves a card from a player's hand to their
	// selected slot and the rejected remainder to discard
	SelectCard(ctx context.Context, input *SelectCardInput) error

	// DiscardCards moves the listed cards to discard regardless of their
	// current zone; discarding an already-discarded card is a no-op
	DiscardCards(ctx context.Context, input *DiscardCardsInput) error

	// GetCard retrieves a card's content by ID
	GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error)

	// GetCards retrieves multiple cards' content by ID
	GetCards(ctx context.Context, input *GetCardsInput) ([]*models.Card, error)

	// GetZones retrieves the room's full custody partition
	GetZones(ctx context.Context, input *GetZonesInput) (*models.ZoneView, error)

	// GetDealtTo retrieves the card-to-player map recorded at deal time
	GetDealtTo(ctx context.Context, input *GetDealtToInput) (map[string]string, error)

	// ClearRoom removes all custody state for a room at teardown
	ClearRoom(ctx context.Context, input *ClearRoomInput) error
}
