package exchange

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/princengoc/unspoken-sub000/internal/common/clock"
	"github.com/princengoc/unspoken-sub000/internal/common/uuid"
	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	cardRepo "github.com/princengoc/unspoken-sub000/internal/repositories/card"
	exchangeRepo "github.com/princengoc/unspoken-sub000/internal/repositories/exchange"
	playerRepo "github.com/princengoc/unspoken-sub000/internal/repositories/player"
	roomRepo "github.com/princengoc/unspoken-sub000/internal/repositories/room"
)

// Config holds the dependencies for the exchange service
type Config struct {
	RoomRepo     roomRepo.Repository
	PlayerRepo   playerRepo.Repository
	CardRepo     cardRepo.Repository
	ExchangeRepo exchangeRepo.Repository
	Publisher    pubsub.Publisher
	Clock        clock.Clock
	UUID         uuid.UUID
}

// service implements the Service interface
type service struct {
	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	cardRepo     cardRepo.Repository
	exchangeRepo exchangeRepo.Repository
	publisher    pubsub.Publisher
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new exchange service
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
	if cfg.ExchangeRepo == nil {
		return nil, ErrNilExchangeRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		roomRepo:     cfg.RoomRepo,
		playerRepo:   cfg.PlayerRepo,
		cardRepo:     cfg.CardRepo,
		exchangeRepo: cfg.ExchangeRepo,
		publisher:    cfg.Publisher,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}, nil
}

func (s *service) publish(ctx context.Context, event *models.ChangeEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish change event for room %s: %v", event.RoomID, err)
	}
}

// publishRequests pushes the full live request set; section-level overwrite
// on the receiving side needs the whole set, not a delta
func (s *service) publishRequests(ctx context.Context, roomID string) {
	all, err := s.exchangeRepo.GetRequestsForRoom(ctx, &exchangeRepo.GetRequestsForRoomInput{RoomID: roomID})
	if err != nil {
		log.Printf("failed to load requests for room %s: %v", roomID, err)
		return
	}
	s.publish(ctx, &models.ChangeEvent{
		RoomID:   roomID,
		Requests: all.Requests,
	})
}

func (s *service) requirePlayer(ctx context.Context, roomID, playerID string) error {
	_, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   roomID,
		PlayerID: playerID,
	})
	if err != nil {
		return ErrPlayerNotInRoom
	}
	return nil
}

// Propose creates a pending request daring another player
func (s *service) Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error) {
	if input == nil || input.RoomID == "" || input.FromPlayerID == "" || input.ToPlayerID == "" || input.CardID == "" {
		return nil, errors.New("input, room ID, both player IDs and card ID cannot be empty")
	}

	if input.FromPlayerID == input.ToPlayerID {
		return nil, ErrSelfExchange
	}

	if _, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, ErrRoomNotFound
	}

	if err := s.requirePlayer(ctx, input.RoomID, input.FromPlayerID); err != nil {
		return nil, err
	}
	if err := s.requirePlayer(ctx, input.RoomID, input.ToPlayerID); err != nil {
		return nil, err
	}

	// Only a card the sender themselves discarded can be offered
	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}
	inDiscard := false
	for _, id := range zones.Discard {
		if id == input.CardID {
			inDiscard = true
			break
		}
	}
	if !inDiscard {
		return nil, ErrCardNotExchangeable
	}

	dealtTo, err := s.cardRepo.GetDealtTo(ctx, &cardRepo.GetDealtToInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get deal record: %w", err)
	}
	if dealtTo[input.CardID] != input.FromPlayerID {
		return nil, ErrCardNotExchangeable
	}

	existing, err := s.exchangeRepo.GetRequestsForRoom(ctx, &exchangeRepo.GetRequestsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	for _, req := range existing.Requests {
		if req.Status == models.ExchangePending &&
			req.FromPlayerID == input.FromPlayerID &&
			req.ToPlayerID == input.ToPlayerID {
			return nil, ErrDuplicateRequest
		}
	}

	request := &models.ExchangeRequest{
		ID:           s.uuid.NewUUID(),
		RoomID:       input.RoomID,
		FromPlayerID: input.FromPlayerID,
		ToPlayerID:   input.ToPlayerID,
		CardID:       input.CardID,
		Status:       models.ExchangePending,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.exchangeRepo.SaveRequest(ctx, &exchangeRepo.SaveRequestInput{Request: request}); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	s.publishRequests(ctx, input.RoomID)

	return &ProposeOutput{Request: request}, nil
}

// Respond settles a pending request as accepted or declined
func (s *service) Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	if input == nil || input.RoomID == "" || input.RequestID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID, request ID and player ID cannot be empty")
	}

	request, err := s.exchangeRepo.GetRequest(ctx, &exchangeRepo.GetRequestInput{RequestID: input.RequestID})
	if err != nil {
		return nil, ErrRequestNotFound
	}

	if request.RoomID != input.RoomID {
		return nil, ErrRequestNotFound
	}

	if request.ToPlayerID != input.PlayerID {
		return nil, ErrNotRecipient
	}

	if request.IsTerminal() {
		return nil, ErrRequestAlreadySettled
	}

	now := s.clock.Now()
	if input.Accept {
		request.Status = models.ExchangeAccepted
	} else {
		request.Status = models.ExchangeDeclined
	}
	request.RespondedAt = &now

	if err := s.exchangeRepo.SaveRequest(ctx, &exchangeRepo.SaveRequestInput{Request: request}); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	all, err := s.exchangeRepo.GetRequestsForRoom(ctx, &exchangeRepo.GetRequestsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	var match *models.ExchangeMatch
	for _, m := range models.DeriveMatches(all.Requests) {
		if m.RequestAToB == request.ID || m.RequestBToA == request.ID {
			match = m
			break
		}
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:   input.RoomID,
		Requests: all.Requests,
	})

	return &RespondOutput{Request: request, Match: match}, nil
}

// ListForRoom retrieves the live request set and derived matches
func (s *service) ListForRoom(ctx context.Context, input *ListForRoomInput) (*ListForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	all, err := s.exchangeRepo.GetRequestsForRoom(ctx, &exchangeRepo.GetRequestsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &ListForRoomOutput{
		Requests: all.Requests,
		Matches:  models.DeriveMatches(all.Requests),
	}, nil
}
