package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Channel prefix for room change events
	roomEventsChannelPrefix = "room_events:"
)

// Config holds configuration for the Redis pubsub
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// Redis implements Publisher and Subscriber over Redis pub/sub
type Redis struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed pubsub
func NewRedis(cfg *Config) (*Redis, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client: cfg.RedisClient,
	}, nil
}

func roomEventsChannel(roomID string) string {
	return fmt.Sprintf("%s%s", roomEventsChannelPrefix, roomID)
}

// Publish pushes a change event to the room's channel
func (p *Redis) Publish(ctx context.Context, event *models.ChangeEvent) error {
	if event == nil || event.RoomID == "" {
		return errors.New("event and room ID cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := p.client.Publish(ctx, roomEventsChannel(event.RoomID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}

// Subscribe attaches a handler to the room's change feed. The returned
// subscription's Done channel closes when delivery stops for any reason,
// which callers must treat as sync lost.
func (p *Redis) Subscribe(ctx context.Context, roomID string, onChange func(*models.ChangeEvent)) (*Subscription, error) {
	if roomID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	if onChange == nil {
		return nil, errors.New("onChange handler cannot be nil")
	}

	ps := p.client.Subscribe(ctx, roomEventsChannel(roomID))

	// Wait for the subscription to be confirmed before returning, so no
	// event published after this call can be missed
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("failed to subscribe to room events: %w", err)
	}

	sub := &Subscription{
		pubsub: ps,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		for msg := range ps.Channel() {
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("dropping malformed change event on %s: %v", msg.Channel, err)
				continue
			}
			onChange(&event)
		}
	}()

	return sub, nil
}

// Subscription is a live attachment to a room's change feed
type Subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// Cancel detaches the subscription
func (s *Subscription) Cancel() error {
	return s.pubsub.Close()
}

// Done is closed when delivery stops, whether cancelled or dropped
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
