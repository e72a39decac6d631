package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	roomKeyPrefix = "room:"
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists is returned when creating a room whose ID is taken
	ErrRoomExists = errors.New("room already exists")

	// ErrVersionConflict is returned when a save races against a newer write
	ErrVersionConflict = errors.New("room was updated concurrently")
)

// saveScript accepts the write only when the stored version matches the
// caller's expectation. The store, not any client, arbitrates races.
var saveScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then
	return redis.error_reply('room not found')
end
local stored = cjson.decode(cur)
if stored['Version'] ~= tonumber(ARGV[2]) then
	return redis.error_reply('version conflict')
end
redis.call('SET', KEYS[1], ARGV[1])
return redis.status_reply('OK')
`)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// CreateRoom persists a brand-new room
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	input.Room.Version = 1

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	ok, err := r.client.SetNX(ctx, roomKey, roomJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	if !ok {
		return ErrRoomExists
	}

	return nil
}

// GetRoom retrieves a room by ID
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// SaveRoom persists the room iff the stored version matches. On success the
// room's Version field is advanced in place to the stored value.
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	expected := input.Room.Version
	input.Room.Version = expected + 1

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		input.Room.Version = expected
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	if err := saveScript.Run(ctx, r.client, []string{roomKey}, roomJSON, expected).Err(); err != nil {
		input.Room.Version = expected
		if strings.Contains(err.Error(), "room not found") {
			return ErrRoomNotFound
		}
		if strings.Contains(err.Error(), "version conflict") {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// DeleteRoom removes a room
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	if err := r.client.Del(ctx, roomKey).Err(); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
