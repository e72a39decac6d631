package reaction

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
	reactionKeyPrefix      = "reaction:"
	roomReactionsKeyPrefix = "room_reactions:"
)

// toggleScript flips the record atomically: the check and the write happen
// in one step, so two racing toggles resolve to exactly one flip each.
var toggleScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('DEL', KEYS[1])
	redis.call('SREM', KEYS[2], ARGV[2])
	return 0
end
redis.call('SET', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[2])
return 1
`)

// Config holds configuration for the Redis reaction repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed reaction repository
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

func reactionKey(roomID, member string) string {
	return fmt.Sprintf("%s%s:%s", reactionKeyPrefix, roomID, member)
}

func roomReactionsKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomReactionsKeyPrefix, roomID)
}

// ToggleReaction flips the record for the reaction's exact key
func (r *redisRepository) ToggleReaction(ctx context.Context, input *ToggleReactionInput) (*ToggleReactionOutput, error) {
	if input == nil || input.Reaction == nil {
		return nil, errors.New("input and reaction cannot be nil")
	}

	rec := input.Reaction

	if rec.RoomID == "" || rec.SpeakerID == "" || rec.ListenerID == "" || rec.CardID == "" || rec.Tag == "" {
		return nil, errors.New("reaction key fields cannot be empty")
	}

	reactionJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reaction: %w", err)
	}

	member := rec.Key()
	keys := []string{
		reactionKey(rec.RoomID, member),
		roomReactionsKey(rec.RoomID),
	}

	result, err := toggleScript.Run(ctx, r.client, keys, reactionJSON, member).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	return &ToggleReactionOutput{Active: result == 1}, nil
}

// GetReactionsForRoom retrieves the room's full reaction ledger
func (r *redisRepository) GetReactionsForRoom(ctx context.Context, input *GetReactionsForRoomInput) (*GetReactionsForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	members, err := r.client.SMembers(ctx, roomReactionsKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction keys: %w", err)
	}

	if len(members) == 0 {
		return &GetReactionsForRoomOutput{
			Reactions: []*models.Reaction{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(members))
	for _, member := range members {
		commands = append(commands, pipe.Get(ctx, reactionKey(input.RoomID, member)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}

	reactions := make([]*models.Reaction, 0, len(members))
	for i, cmd := range commands {
		reactionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Toggled off between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get reaction %s: %w", members[i], err)
		}

		var rec models.Reaction
		if err := json.Unmarshal([]byte(reactionJSON), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reaction %s: %w", members[i], err)
		}

		reactions = append(reactions, &rec)
	}

	return &GetReactionsForRoomOutput{
		Reactions: reactions,
	}, nil
}

// ClearRoom removes all reactions for a room
func (r *redisRepository) ClearRoom(ctx context.Context, input *ClearRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	members, err := r.client.SMembers(ctx, roomReactionsKey(input.RoomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get reaction keys: %w", err)
	}

	keys := make([]string, 0, len(members)+1)
	for _, member := range members {
		keys = append(keys, reactionKey(input.RoomID, member))
	}
	keys = append(keys, roomReactionsKey(input.RoomID))

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear room reactions: %w", err)
	}

	return nil
}
