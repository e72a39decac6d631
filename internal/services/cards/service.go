package cards

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/princengoc/unspoken-sub000/internal/common/clock"
	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	cardRepo "github.com/princengoc/unspoken-sub000/internal/repositories/card"
	playerRepo "github.com/princengoc/unspoken-sub000/internal/repositories/player"
	roomRepo "github.com/princengoc/unspoken-sub000/internal/repositories/room"
)

// Config holds the dependencies for the cards service
type Config struct {
	RoomRepo   roomRepo.Repository
	PlayerRepo playerRepo.Repository
	CardRepo   cardRepo.Repository
	Publisher  pubsub.Publisher
	Clock      clock.Clock
}

// service implements the Service interface
type service struct {
	roomRepo   roomRepo.Repository
	playerRepo playerRepo.Repository
	cardRepo   cardRepo.Repository
	publisher  pubsub.Publisher
	clock      clock.Clock

	// Card content never changes after seeding, so fetched cards are
	// cached for the life of the process
	mu    sync.RWMutex
	cache map[string]*models.Card
}

// New creates a new cards service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.CardRepo == nil {
		return nil, ErrNilCardRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		roomRepo:   cfg.RoomRepo,
		playerRepo: cfg.PlayerRepo,
		cardRepo:   cfg.CardRepo,
		publisher:  cfg.Publisher,
		clock:      cfg.Clock,
		cache:      make(map[string]*models.Card),
	}, nil
}

func (s *service) publish(ctx context.Context, event *models.ChangeEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish change event for room %s: %v", event.RoomID, err)
	}
}

// cachedCards resolves ids through the content cache, fetching misses in a
// single repository call
func (s *service) cachedCards(ctx context.Context, cardIDs []string) ([]*models.Card, error) {
	result := make(map[string]*models.Card, len(cardIDs))

	s.mu.RLock()
	var misses []string
	for _, id := range cardIDs {
		if c, ok := s.cache[id]; ok {
			result[id] = c
		} else {
			misses = append(misses, id)
		}
	}
	s.mu.RUnlock()

	if len(misses) > 0 {
		fetched, err := s.cardRepo.GetCards(ctx, &cardRepo.GetCardsInput{CardIDs: misses})
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		for _, c := range fetched {
			s.cache[c.ID] = c
			result[c.ID] = c
		}
		s.mu.Unlock()
	}

	cards := make([]*models.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		c, ok := result[id]
		if !ok {
			return nil, ErrCardNotFound
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Deal draws a fresh hand for a player, at most once per round
func (s *service) Deal(ctx context.Context, input *DealInput) (*DealOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.Phase != models.PhaseSetup {
		return nil, ErrNotInSetupPhase
	}

	if _, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, ErrPlayerNotInRoom
	}

	dealt, err := s.cardRepo.DealToPlayer(ctx, &cardRepo.DealToPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
		Round:    room.CurrentRound,
		Count:    room.CardsPerHand,
	})
	if err != nil {
		if errors.Is(err, cardRepo.ErrAlreadyDealt) {
			return nil, ErrAlreadyDealt
		}
		if errors.Is(err, cardRepo.ErrInsufficientCards) {
			return nil, ErrDealingFailed
		}
		return nil, fmt.Errorf("failed to deal: %w", err)
	}

	cards, err := s.cachedCards(ctx, dealt.CardIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealt cards: %w", err)
	}

	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err == nil {
		s.publish(ctx, &models.ChangeEvent{
			RoomID: input.RoomID,
			Zones:  zones,
		})
	}

	return &DealOutput{Cards: cards}, nil
}

// Select commits a player to one card from their hand
func (s *service) Select(ctx context.Context, input *SelectInput) (*SelectOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" || input.CardID == "" {
		return nil, errors.New("input, room ID, player ID and card ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.Phase != models.PhaseSetup {
		return nil, ErrNotInSetupPhase
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, ErrPlayerNotInRoom
	}

	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	hand := zones.Hands[input.PlayerID]
	rejected := make([]string, 0, len(hand))
	found := false
	for _, id := range hand {
		if id == input.CardID {
			found = true
			continue
		}
		rejected = append(rejected, id)
	}
	if !found {
		return nil, ErrCardNotInHand
	}

	if err := s.cardRepo.SelectCard(ctx, &cardRepo.SelectCardInput{
		RoomID:          input.RoomID,
		PlayerID:        input.PlayerID,
		CardID:          input.CardID,
		RejectedCardIDs: rejected,
	}); err != nil {
		if errors.Is(err, cardRepo.ErrCardNotInHand) {
			return nil, ErrCardNotInHand
		}
		return nil, fmt.Errorf("failed to select card: %w", err)
	}

	player.SelectedCardID = input.CardID
	player.UpdatedAt = s.clock.Now()
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	updatedZones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err == nil {
		s.publish(ctx, &models.ChangeEvent{
			RoomID:  input.RoomID,
			Players: map[string]*models.Player{player.ID: player},
			Zones:   updatedZones,
		})
	}

	return &SelectOutput{Player: player, RejectedCardIDs: rejected}, nil
}

// Discard moves the listed cards to discard regardless of current zone
func (s *service) Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error) {
	if input == nil || input.RoomID == "" || len(input.CardIDs) == 0 {
		return nil, errors.New("input, room ID and card IDs cannot be empty")
	}

	if err := s.cardRepo.DiscardCards(ctx, &cardRepo.DiscardCardsInput{
		RoomID:  input.RoomID,
		CardIDs: input.CardIDs,
	}); err != nil {
		return nil, fmt.Errorf("failed to discard: %w", err)
	}

	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err == nil {
		s.publish(ctx, &models.ChangeEvent{
			RoomID: input.RoomID,
			Zones:  zones,
		})
	}

	return &DiscardOutput{Success: true}, nil
}

// GetCard retrieves a single card's content
func (s *service) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.New("input and card ID cannot be empty")
	}

	cards, err := s.cachedCards(ctx, []string{input.CardID})
	if err != nil {
		if errors.Is(err, cardRepo.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &GetCardOutput{Card: cards[0]}, nil
}

// GetCards retrieves multiple cards' content
func (s *service) GetCards(ctx context.Context, input *GetCardsInput) (*GetCardsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cards, err := s.cachedCards(ctx, input.CardIDs)
	if err != nil {
		if errors.Is(err, cardRepo.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &GetCardsOutput{Cards: cards}, nil
}
