package card

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
	// Key prefixes for Redis
	cardKeyPrefix      = "card:"
	roomCardsKeyPrefix = "room_cards:"
)

var (
	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound = errors.New("card not found")

	// ErrCardNotInHand is returned when a selection names a card outside the player's hand
	ErrCardNotInHand = errors.New("card not in player's hand")

	// ErrInsufficientCards is returned when the undealt pool cannot cover a deal
	ErrInsufficientCards = errors.New("not enough undealt cards")

	// ErrAlreadyDealt is returned when a player was already dealt cards this round
	ErrAlreadyDealt = errors.New("player already dealt cards this round")
)

// dealScript moves count cards from the undealt pool into a hand. The whole
// move runs server-side so two concurrent deals can never hand out the same
// card, and the guard key makes it at most once per (room, player, round).
var dealScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[3]) == 1 then
	return redis.error_reply('already dealt')
end
local count = tonumber(ARGV[1])
if redis.call('SCARD', KEYS[1]) < count then
	return redis.error_reply('insufficient cards')
end
local dealt = {}
for i = 1, count do
	local id = redis.call('SPOP', KEYS[1])
	redis.call('SADD', KEYS[2], id)
	redis.call('HSET', KEYS[4], id, ARGV[2])
	dealt[i] = id
end
redis.call('SET', KEYS[3], '1')
redis.call('SADD', KEYS[5], ARGV[2])
return dealt
`)

// selectScript validates the card is in the hand, then moves it to the
// selected slot and the rejected remainder to discard in one step.
var selectScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
	return redis.error_reply('card not in hand')
end
redis.call('SREM', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[1])
for i = 2, #ARGV do
	redis.call('SREM', KEYS[1], ARGV[i])
	redis.call('SADD', KEYS[3], ARGV[i])
end
return redis.status_reply('OK')
`)

// Config holds configuration for the Redis card repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed card repository
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

func undealtKey(roomID string) string {
	return fmt.Sprintf("%s%s:undealt", roomCardsKeyPrefix, roomID)
}

func handKey(roomID, playerID string) string {
	return fmt.Sprintf("%s%s:hand:%s", roomCardsKeyPrefix, roomID, playerID)
}

func selectedKey(roomID, playerID string) string {
	return fmt.Sprintf("%s%s:selected:%s", roomCardsKeyPrefix, roomID, playerID)
}

func discardKey(roomID string) string {
	return fmt.Sprintf("%s%s:discard", roomCardsKeyPrefix, roomID)
}

func dealtToKey(roomID string) string {
	return fmt.Sprintf("%s%s:dealt_to", roomCardsKeyPrefix, roomID)
}

func dealtPlayersKey(roomID string) string {
	return fmt.Sprintf("%s%s:players", roomCardsKeyPrefix, roomID)
}

func dealGuardKey(roomID, playerID string, round int) string {
	return fmt.Sprintf("%s%s:deal_guard:%s:%d", roomCardsKeyPrefix, roomID, playerID, round)
}

// SeedPool loads card content and places all ids into the undealt zone
func (r *redisRepository) SeedPool(ctx context.Context, input *SeedPoolInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	if len(input.Cards) == 0 {
		return errors.New("cards cannot be empty")
	}

	pipe := r.client.Pipeline()

	ids := make([]interface{}, 0, len(input.Cards))
	for _, c := range input.Cards {
		if c.ID == "" {
			return errors.New("card ID cannot be empty")
		}

		cardJSON, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal card: %w", err)
		}

		cardKey := fmt.Sprintf("%s%s", cardKeyPrefix, c.ID)
		pipe.Set(ctx, cardKey, cardJSON, 0)
		ids = append(ids, c.ID)
	}

	pipe.SAdd(ctx, undealtKey(input.RoomID), ids...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed pool: %w", err)
	}

	return nil
}

// DealToPlayer atomically deals cards into a player's hand
func (r *redisRepository) DealToPlayer(ctx context.Context, input *DealToPlayerInput) (*DealToPlayerOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	if input.Count < 1 {
		return nil, errors.New("count must be positive")
	}

	keys := []string{
		undealtKey(input.RoomID),
		handKey(input.RoomID, input.PlayerID),
		dealGuardKey(input.RoomID, input.PlayerID, input.Round),
		dealtToKey(input.RoomID),
		dealtPlayersKey(input.RoomID),
	}

	result, err := dealScript.Run(ctx, r.client, keys, input.Count, input.PlayerID).Result()
	if err != nil {
		if strings.Contains(err.Error(), "already dealt") {
			return nil, ErrAlreadyDealt
		}
		if strings.Contains(err.Error(), "insufficient cards") {
			return nil, ErrInsufficientCards
		}
		return nil, fmt.Errorf("failed to deal cards: %w", err)
	}

	raw, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected deal script result type %T", result)
	}

	cardIDs := make([]string, 0, len(raw))
	for _, v := range raw {
		id, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected card id type %T", v)
		}
		cardIDs = append(cardIDs, id)
	}

	return &DealToPlayerOutput{CardIDs: cardIDs}, nil
}

// SelectCard atomically moves a card to the player's selected slot and the
// rejected remainder to discard
func (r *redisRepository) SelectCard(ctx context.Context, input *SelectCardInput) error {
	if input == nil || input.RoomID == "" || input.PlayerID == "" || input.CardID == "" {
		return errors.New("input, room ID, player ID and card ID cannot be empty")
	}

	keys := []string{
		handKey(input.RoomID, input.PlayerID),
		selectedKey(input.RoomID, input.PlayerID),
		discardKey(input.RoomID),
	}

	args := make([]interface{}, 0, len(input.RejectedCardIDs)+1)
	args = append(args, input.CardID)
	for _, id := range input.RejectedCardIDs {
		args = append(args, id)
	}

	if err := selectScript.Run(ctx, r.client, keys, args...).Err(); err != nil {
		if strings.Contains(err.Error(), "card not in hand") {
			return ErrCardNotInHand
		}
		return fmt.Errorf("failed to select card: %w", err)
	}

	return nil
}

// DiscardCards moves the listed cards to discard from whatever zone holds them
func (r *redisRepository) DiscardCards(ctx context.Context, input *DiscardCardsInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	if len(input.CardIDs) == 0 {
		return nil
	}

	// Zones are sets, so removing an id that is not a member and re-adding
	// one that already is are both no-ops. That makes this move idempotent.
	playerIDs, err := r.client.SMembers(ctx, dealtPlayersKey(input.RoomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get dealt players: %w", err)
	}

	ids := make([]interface{}, 0, len(input.CardIDs))
	for _, id := range input.CardIDs {
		ids = append(ids, id)
	}

	pipe := r.client.Pipeline()
	pipe.SRem(ctx, undealtKey(input.RoomID), ids...)
	for _, playerID := range playerIDs {
		pipe.SRem(ctx, handKey(input.RoomID, playerID), ids...)
		pipe.SRem(ctx, selectedKey(input.RoomID, playerID), ids...)
	}
	pipe.SAdd(ctx, discardKey(input.RoomID), ids...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to discard cards: %w", err)
	}

	return nil
}

// GetCard retrieves a card's content by ID
func (r *redisRepository) GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.New("input and card ID cannot be empty")
	}

	cardKey := fmt.Sprintf("%s%s", cardKeyPrefix, input.CardID)
	cardJSON, err := r.client.Get(ctx, cardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	var card models.Card
	if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	return &card, nil
}

// GetCards retrieves multiple cards' content by ID
func (r *redisRepository) GetCards(ctx context.Context, input *GetCardsInput) ([]*models.Card, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.CardIDs) == 0 {
		return []*models.Card{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(input.CardIDs))
	for _, id := range input.CardIDs {
		cardKey := fmt.Sprintf("%s%s", cardKeyPrefix, id)
		commands[id] = pipe.Get(ctx, cardKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}

	cards := make([]*models.Card, 0, len(input.CardIDs))
	for _, id := range input.CardIDs {
		cardJSON, err := commands[id].Result()
		if err != nil {
			if err == redis.Nil {
				// Content not yet cached server-side; callers treat misses
				// as a latency point, not an error
				continue
			}
			return nil, fmt.Errorf("failed to get card %s: %w", id, err)
		}

		var card models.Card
		if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card %s: %w", id, err)
		}

		cards = append(cards, &card)
	}

	return cards, nil
}

// GetZones retrieves the room's full custody partition
func (r *redisRepository) GetZones(ctx context.Context, input *GetZonesInput) (*models.ZoneView, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	undealt, err := r.client.SMembers(ctx, undealtKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get undealt zone: %w", err)
	}

	discard, err := r.client.SMembers(ctx, discardKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get discard zone: %w", err)
	}

	playerIDs, err := r.client.SMembers(ctx, dealtPlayersKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get dealt players: %w", err)
	}

	zones := &models.ZoneView{
		Undealt:  undealt,
		Hands:    make(map[string][]string, len(playerIDs)),
		Selected: make(map[string]string, len(playerIDs)),
		Discard:  discard,
	}

	for _, playerID := range playerIDs {
		hand, err := r.client.SMembers(ctx, handKey(input.RoomID, playerID)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get hand for %s: %w", playerID, err)
		}
		zones.Hands[playerID] = hand

		selected, err := r.client.SMembers(ctx, selectedKey(input.RoomID, playerID)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get selected slot for %s: %w", playerID, err)
		}
		if len(selected) > 0 {
			zones.Selected[playerID] = selected[0]
		}
	}

	return zones, nil
}

// GetDealtTo retrieves the card-to-player map recorded at deal time
func (r *redisRepository) GetDealtTo(ctx context.Context, input *GetDealtToInput) (map[string]string, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	dealtTo, err := r.client.HGetAll(ctx, dealtToKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get dealt-to map: %w", err)
	}

	return dealtTo, nil
}

// ClearRoom removes all custody state for a room
func (r *redisRepository) ClearRoom(ctx context.Context, input *ClearRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, dealtPlayersKey(input.RoomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get dealt players: %w", err)
	}

	keys := []string{
		undealtKey(input.RoomID),
		discardKey(input.RoomID),
		dealtToKey(input.RoomID),
		dealtPlayersKey(input.RoomID),
	}
	for _, playerID := range playerIDs {
		keys = append(keys, handKey(input.RoomID, playerID), selectedKey(input.RoomID, playerID))
	}

	guardKeys, err := r.client.Keys(ctx, fmt.Sprintf("%s%s:deal_guard:*", roomCardsKeyPrefix, input.RoomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list deal guards: %w", err)
	}
	keys = append(keys, guardKeys...)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear room custody state: %w", err)
	}

	return nil
}
