package pubsub

//go:generate mockgen -package=mocks -destination=mocks/mock_pubsub.go github.com/princengoc/unspoken-sub000/internal/pubsub Publisher,Subscriber

import (
	"context"

	"github.com/princengoc/unspoken-sub000/internal/models"
)

// Publisher pushes a change event to every subscriber of the event's room.
// Services publish after each accepted mutation; the event carries only the
// state sections the mutation touched.
type Publisher interface {
	Publish(ctx context.Context, event *models.ChangeEvent) error
}

// Subscriber attaches a handler to a room's change feed
type Subscriber interface {
	Subscribe(ctx context.Context, roomID string, onChange func(*models.ChangeEvent)) (*Subscription, error)
}
