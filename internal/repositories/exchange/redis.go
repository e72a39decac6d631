package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	requestKeyPrefix      = "exchange:"
	roomRequestsKeyPrefix = "room_exchanges:"
)

// ErrRequestNotFound is returned when an exchange request is not found
var ErrRequestNotFound = errors.New("exchange request not found")

// Config holds configuration for the Redis exchange repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed exchange repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRequest persists an exchange request to Redis
func (r *redisRepository) SaveRequest(ctx context.Context, input *SaveRequestInput) error {
	if input == nil || input.Request == nil {
		return errors.New("input and request cannot be nil")
	}

	req := input.Request

	if req.ID == "" || req.RoomID == "" {
		return errors.New("request ID and room ID cannot be empty")
	}

	requestJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	requestKey := fmt.Sprintf("%s%s", requestKeyPrefix, req.ID)
	pipe.Set(ctx, requestKey, requestJSON, 0)

	roomKey := fmt.Sprintf("%s%s", roomRequestsKeyPrefix, req.RoomID)
	pipe.ZAdd(ctx, roomKey, redis.Z{
		Score:  float64(req.CreatedAt.UnixNano()),
		Member: req.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return nil
}

// GetRequest retrieves a request by ID from Redis
func (r *redisRepository) GetRequest(ctx context.Context, input *GetRequestInput) (*models.ExchangeRequest, error) {
	if input == nil || input.RequestID == "" {
		return nil, errors.New("input and request ID cannot be empty")
	}

	requestKey := fmt.Sprintf("%s%s", requestKeyPrefix, input.RequestID)
	requestJSON, err := r.client.Get(ctx, requestKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	var req models.ExchangeRequest
	if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %w", err)
	}

	return &req, nil
}

// GetRequestsForRoom retrieves all requests in a room, oldest first
func (r *redisRepository) GetRequestsForRoom(ctx context.Context, input *GetRequestsForRoomInput) (*GetRequestsForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomRequestsKeyPrefix, input.RoomID)
	requestIDs, err := r.client.ZRange(ctx, roomKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get request IDs: %w", err)
	}

	if len(requestIDs) == 0 {
		return &GetRequestsForRoomOutput{
			Requests: []*models.ExchangeRequest{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(requestIDs))
	for _, id := range requestIDs {
		requestKey := fmt.Sprintf("%s%s", requestKeyPrefix, id)
		commands = append(commands, pipe.Get(ctx, requestKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}

	requests := make([]*models.ExchangeRequest, 0, len(requestIDs))
	for i, cmd := range commands {
		requestJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Request removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get request %s: %w", requestIDs[i], err)
		}

		var req models.ExchangeRequest
		if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request %s: %w", requestIDs[i], err)
		}

		requests = append(requests, &req)
	}

	return &GetRequestsForRoomOutput{
		Requests: requests,
	}, nil
}

// ClearRoom removes all requests for a room
func (r *redisRepository) ClearRoom(ctx context.Context, input *ClearRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomRequestsKeyPrefix, input.RoomID)
	requestIDs, err := r.client.ZRange(ctx, roomKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get request IDs: %w", err)
	}

	keys := make([]string, 0, len(requestIDs)+1)
	for _, id := range requestIDs {
		keys = append(keys, fmt.Sprintf("%s%s", requestKeyPrefix, id))
	}
	keys = append(keys, roomKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear room requests: %w", err)
	}

	return nil
}
