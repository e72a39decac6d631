package exchange

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/princengoc/unspoken-sub000/internal/services/exchange Service

// Service defines the interface for exchange negotiation
type Service interface {
	// Propose creates a pending request daring another player with one of
	// the sender's own discarded cards
	Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error)

	// Respond settles a pending request as accepted or declined
	Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error)

	// ListForRoom retrieves the live request set and derived matches
	ListForRoom(ctx context.Context, input *ListForRoomInput) (*ListForRoomOutput, error)
}
