package player

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
	playerKeyPrefix      = "player:"
	roomPlayersKeyPrefix = "room_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func playerKey(roomID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, roomID, playerID)
}

func roomPlayersKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomPlayersKeyPrefix, roomID)
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player

	if p.ID == "" || p.RoomID == "" {
		return errors.New("player ID and room ID cannot be empty")
	}

	playerJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey(p.RoomID, p.ID), playerJSON, 0)
	pipe.SAdd(ctx, roomPlayersKey(p.RoomID), p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by room and ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.RoomID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var p models.Player
	if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &p, nil
}

// GetPlayersInRoom retrieves all players in a room from Redis
func (r *redisRepository) GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, roomPlayersKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for room: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInRoomOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all player records in parallel using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.Get(ctx, playerKey(input.RoomID, playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player left between getting the IDs and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &p)
	}

	return &GetPlayersInRoomOutput{
		Players: players,
	}, nil
}

// RemovePlayer removes a player from a room
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return errors.New("input, room ID and player ID cannot be empty")
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()
	pipe.Del(ctx, playerKey(input.RoomID, input.PlayerID))
	pipe.SRem(ctx, roomPlayersKey(input.RoomID), input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	return nil
}
