package exchange

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/princengoc/unspoken-sub000/internal/repositories/exchange Repository

import (
	"context"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Repository defines the interface for exchange request persistence
type Repository interface {
	// SaveRequest persists an exchange request, new or updated
	SaveRequest(ctx context.Context, input *SaveRequestInput) error

	// GetRequest retrieves a request by ID
	GetRequest(ctx context.Context, input *GetRequestInput) (*models.ExchangeRequest, error)

	// GetRequestsForRoom retrieves all requests in a room, oldest first
	GetRequestsForRoom(ctx context.Context, input *GetRequestsForRoomInput) (*GetRequestsForRoomOutput, error)

	// ClearRoom removes all requests for a room at teardown
	ClearRoom(ctx context.Context, input *ClearRoomInput) error
}
