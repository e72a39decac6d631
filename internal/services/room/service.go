package room

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
	reactionRepo "github.com/princengoc/unspoken-sub000/internal/repositories/reaction"
	roomRepo "github.com/princengoc/unspoken-sub000/internal/repositories/room"
	"github.com/princengoc/unspoken-sub000/internal/rotation"
)

// Config holds the dependencies and settings for the room service
type Config struct {
	RoomRepo     roomRepo.Repository
	PlayerRepo   playerRepo.Repository
	CardRepo     cardRepo.Repository
	ExchangeRepo exchangeRepo.Repository
	ReactionRepo reactionRepo.Repository
	Picker       rotation.Picker
	Publisher    pubsub.Publisher
	Clock        clock.Clock
	UUID         uuid.UUID

	// MaxPlayers caps room membership; defaults to 8
	MaxPlayers int

	// DefaultCardsPerHand is used when a room is created without one; defaults to 3
	DefaultCardsPerHand int
}

// service implements the Service interface
type service struct {
	config       *Config
	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	cardRepo     cardRepo.Repository
	exchangeRepo exchangeRepo.Repository
	reactionRepo reactionRepo.Repository
	picker       rotation.Picker
	publisher    pubsub.Publisher
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new room service
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
	if cfg.ReactionRepo == nil {
		return nil, ErrNilReactionRepo
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = 8
	}
	if cfg.DefaultCardsPerHand <= 0 {
		cfg.DefaultCardsPerHand = 3
	}

	return &service{
		config:       cfg,
		roomRepo:     cfg.RoomRepo,
		playerRepo:   cfg.PlayerRepo,
		cardRepo:     cfg.CardRepo,
		exchangeRepo: cfg.ExchangeRepo,
		reactionRepo: cfg.ReactionRepo,
		picker:       cfg.Picker,
		publisher:    cfg.Publisher,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}, nil
}

// publish pushes a change event; the mutation is already committed, so a
// failed push is logged rather than surfaced. Subscribers recover on their
// next full fetch.
func (s *service) publish(ctx context.Context, event *models.ChangeEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish change event for room %s: %v", event.RoomID, err)
	}
}

// filterByDepth keeps cards at or below the depth limit; 0 keeps everything
func filterByDepth(cards []*models.Card, limit models.CardDepth) []*models.Card {
	if limit == 0 {
		return cards
	}
	filtered := make([]*models.Card, 0, len(cards))
	for _, c := range cards {
		if c.Depth <= limit {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// saveRoom persists the room, mapping a lost write race onto the service's
// error taxonomy
func (s *service) saveRoom(ctx context.Context, room *models.Room) error {
	err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
	if err != nil {
		if errors.Is(err, roomRepo.ErrVersionConflict) {
			return ErrConcurrentUpdate
		}
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

// CreateRoom creates a new room with its owner as the first player
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	now := s.clock.Now()
	totalRounds := input.TotalRounds
	if totalRounds < 1 {
		totalRounds = 1
	}
	cardsPerHand := input.CardsPerHand
	if cardsPerHand < 1 {
		cardsPerHand = s.config.DefaultCardsPerHand
	}

	room := &models.Room{
		ID:           s.uuid.NewUUID(),
		OwnerID:      input.OwnerID,
		Phase:        models.PhaseSetup,
		CurrentRound: 1,
		TotalRounds:  totalRounds,
		CardsPerHand: cardsPerHand,
		DepthFilter:  input.DepthFilter,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room}); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	owner := &models.Player{
		ID:        input.OwnerID,
		RoomID:    room.ID,
		Username:  input.OwnerUsername,
		IsOnline:  true,
		JoinedAt:  now,
		UpdatedAt: now,
	}
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: owner}); err != nil {
		return nil, fmt.Errorf("failed to save owner: %w", err)
	}

	if pool := filterByDepth(input.PoolCards, room.DepthFilter); len(pool) > 0 {
		if err := s.cardRepo.SeedPool(ctx, &cardRepo.SeedPoolInput{
			RoomID: room.ID,
			Cards:  pool,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed card pool: %w", err)
		}
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:  room.ID,
		Room:    room,
		Players: map[string]*models.Player{owner.ID: owner},
	})

	return &CreateRoomOutput{Room: room}, nil
}

// JoinRoom adds a player to a room during setup
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	// Mid-round joiners would be speakers without a selected card, so
	// membership changes only during setup
	if room.Phase != models.PhaseSetup {
		return nil, ErrRoomNotJoinable
	}

	existing, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err == nil && existing != nil {
		return nil, ErrPlayerAlreadyInRoom
	}

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if len(players.Players) >= s.config.MaxPlayers {
		return nil, ErrRoomFull
	}

	now := s.clock.Now()
	player := &models.Player{
		ID:        input.PlayerID,
		RoomID:    input.RoomID,
		Username:  input.Username,
		IsOnline:  true,
		JoinedAt:  now,
		UpdatedAt: now,
	}
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:  input.RoomID,
		Players: map[string]*models.Player{player.ID: player},
	})

	return &JoinRoomOutput{Player: player}, nil
}

// LeaveRoom removes a player from a room. When the active speaker leaves
// mid-turn the rotation advances as if their turn had ended.
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	leaver, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, ErrPlayerNotInRoom
	}

	// Whatever the leaver held goes to discard so the partition stays total
	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}
	held := append([]string{}, zones.Hands[leaver.ID]...)
	if selected, ok := zones.Selected[leaver.ID]; ok {
		held = append(held, selected)
	}
	if len(held) > 0 {
		if err := s.cardRepo.DiscardCards(ctx, &cardRepo.DiscardCardsInput{
			RoomID:  input.RoomID,
			CardIDs: held,
		}); err != nil {
			return nil, fmt.Errorf("failed to discard leaver's cards: %w", err)
		}
	}

	if err := s.playerRepo.RemovePlayer(ctx, &playerRepo.RemovePlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, fmt.Errorf("failed to remove player: %w", err)
	}

	roomChanged := false
	if room.ActivePlayerID == input.PlayerID {
		players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
		if err != nil {
			return nil, fmt.Errorf("failed to list players: %w", err)
		}
		s.rotate(room, players.Players)
		roomChanged = true
	}

	now := s.clock.Now()
	if roomChanged {
		room.UpdatedAt = now
		if err := s.saveRoom(ctx, room); err != nil {
			return nil, err
		}
	}

	event := &models.ChangeEvent{RoomID: input.RoomID}
	if roomChanged {
		event.Room = room
	}
	updatedZones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err == nil {
		event.Zones = updatedZones
	}
	s.publish(ctx, event)

	return &LeaveRoomOutput{Success: true}, nil
}

// SetOnline updates a player's presence flag
func (s *service) SetOnline(ctx context.Context, input *SetOnlineInput) (*SetOnlineOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, ErrPlayerNotInRoom
	}

	if player.IsOnline == input.IsOnline {
		return &SetOnlineOutput{Player: player}, nil
	}

	player.IsOnline = input.IsOnline
	player.UpdatedAt = s.clock.Now()
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:  input.RoomID,
		Players: map[string]*models.Player{player.ID: player},
	})

	return &SetOnlineOutput{Player: player}, nil
}

// StartSpeaking moves the room from setup to speaking and picks the first
// speaker. Legal only when every player has a selected card.
func (s *service) StartSpeaking(ctx context.Context, input *StartSpeakingInput) (*StartSpeakingOutput, error) {
	if input == nil || input.RoomID == "" || input.RequestedBy == "" {
		return nil, errors.New("input, room ID and requester cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.OwnerID != input.RequestedBy {
		return nil, ErrNotOwner
	}

	if room.Phase != models.PhaseSetup {
		return nil, ErrInvalidPhaseTransition
	}

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if len(players.Players) == 0 {
		return nil, ErrInvalidPhaseTransition
	}

	// The all-ready guard: nobody speaks until everyone has chosen
	for _, p := range players.Players {
		if p.SelectedCardID == "" {
			return nil, ErrInvalidPhaseTransition
		}
	}

	candidates := make([]string, 0, len(players.Players))
	for _, p := range players.Players {
		if !p.HasSpoken {
			candidates = append(candidates, p.ID)
		}
	}

	speakerID, err := s.picker.Pick(candidates)
	if err != nil {
		return nil, ErrInvalidPhaseTransition
	}

	room.Phase = models.PhaseSpeaking
	room.ActivePlayerID = speakerID
	room.IsSpeakerSharing = false
	room.UpdatedAt = s.clock.Now()

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID: input.RoomID,
		Room:   room,
	})

	return &StartSpeakingOutput{Room: room, SpeakerID: speakerID}, nil
}

// BeginSharing marks the active speaker as sharing their card
func (s *service) BeginSharing(ctx context.Context, input *BeginSharingInput) (*BeginSharingOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.Phase != models.PhaseSpeaking {
		return nil, ErrInvalidPhaseTransition
	}

	if room.ActivePlayerID != input.PlayerID {
		return nil, ErrNotActiveSpeaker
	}

	room.Phase = models.PhaseListening
	room.IsSpeakerSharing = true
	room.UpdatedAt = s.clock.Now()

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID: input.RoomID,
		Room:   room,
	})

	return &BeginSharingOutput{Room: room}, nil
}

// rotate picks the next speaker among players who have not spoken, or moves
// the room to endgame when the round is complete
func (s *service) rotate(room *models.Room, players []*models.Player) {
	candidates := make([]string, 0, len(players))
	for _, p := range players {
		if !p.HasSpoken {
			candidates = append(candidates, p.ID)
		}
	}

	next, err := s.picker.Pick(candidates)
	if err != nil {
		// Round complete: nobody left to speak
		room.Phase = models.PhaseEndgame
		room.ActivePlayerID = ""
		room.IsSpeakerSharing = false
		return
	}

	room.Phase = models.PhaseSpeaking
	room.ActivePlayerID = next
	room.IsSpeakerSharing = false
}

// EndSharing finishes the active speaker's turn: marks them spoken, moves
// their remaining cards to discard, and rotates or ends the round.
func (s *service) EndSharing(ctx context.Context, input *EndSharingInput) (*EndSharingOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.Phase != models.PhaseListening {
		return nil, ErrInvalidPhaseTransition
	}

	if room.ActivePlayerID != input.PlayerID {
		return nil, ErrNotActiveSpeaker
	}

	speaker, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, ErrPlayerNotFound
	}

	now := s.clock.Now()
	speaker.HasSpoken = true
	speaker.UpdatedAt = now
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: speaker}); err != nil {
		return nil, fmt.Errorf("failed to save speaker: %w", err)
	}

	// The spoken card and any hand leftovers go to discard, where the card
	// becomes fair game for exchange dares
	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}
	held := append([]string{}, zones.Hands[speaker.ID]...)
	if selected, ok := zones.Selected[speaker.ID]; ok {
		held = append(held, selected)
	}
	if len(held) > 0 {
		if err := s.cardRepo.DiscardCards(ctx, &cardRepo.DiscardCardsInput{
			RoomID:  input.RoomID,
			CardIDs: held,
		}); err != nil {
			return nil, fmt.Errorf("failed to discard speaker's cards: %w", err)
		}
	}

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	s.rotate(room, players.Players)
	room.UpdatedAt = now

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	updatedZones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:  input.RoomID,
		Room:    room,
		Players: map[string]*models.Player{speaker.ID: speaker},
		Zones:   updatedZones,
	})

	return &EndSharingOutput{
		Room:          room,
		NextSpeakerID: room.ActivePlayerID,
		RoundComplete: room.Phase == models.PhaseEndgame,
	}, nil
}

// StartEncore replays a new round after endgame: every player's spoken flag
// and selection reset, all hands empty to discard, and a fresh pool is
// seeded under the new depth filter.
func (s *service) StartEncore(ctx context.Context, input *StartEncoreInput) (*StartEncoreOutput, error) {
	if input == nil || input.RoomID == "" || input.RequestedBy == "" {
		return nil, errors.New("input, room ID and requester cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.OwnerID != input.RequestedBy {
		return nil, ErrNotOwner
	}

	if room.Phase != models.PhaseEndgame {
		return nil, ErrInvalidPhaseTransition
	}

	now := s.clock.Now()

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	var held []string
	for _, hand := range zones.Hands {
		held = append(held, hand...)
	}
	for _, selected := range zones.Selected {
		held = append(held, selected)
	}
	if len(held) > 0 {
		if err := s.cardRepo.DiscardCards(ctx, &cardRepo.DiscardCardsInput{
			RoomID:  input.RoomID,
			CardIDs: held,
		}); err != nil {
			return nil, fmt.Errorf("failed to discard held cards: %w", err)
		}
	}

	changedPlayers := make(map[string]*models.Player, len(players.Players))
	for _, p := range players.Players {
		p.HasSpoken = false
		p.SelectedCardID = ""
		p.UpdatedAt = now
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: p}); err != nil {
			return nil, fmt.Errorf("failed to reset player %s: %w", p.ID, err)
		}
		changedPlayers[p.ID] = p
	}

	room.Phase = models.PhaseSetup
	room.ActivePlayerID = ""
	room.IsSpeakerSharing = false
	room.CurrentRound++
	if room.CurrentRound > room.TotalRounds {
		room.TotalRounds = room.CurrentRound
	}
	room.DepthFilter = input.DepthFilter
	room.UpdatedAt = now

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	if pool := filterByDepth(input.PoolCards, room.DepthFilter); len(pool) > 0 {
		if err := s.cardRepo.SeedPool(ctx, &cardRepo.SeedPoolInput{
			RoomID: input.RoomID,
			Cards:  pool,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed encore pool: %w", err)
		}
	}

	updatedZones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	s.publish(ctx, &models.ChangeEvent{
		RoomID:  input.RoomID,
		Room:    room,
		Players: changedPlayers,
		Zones:   updatedZones,
	})

	return &StartEncoreOutput{Room: room}, nil
}

// GetRoomState assembles the full authoritative snapshot of a room
func (s *service) GetRoomState(ctx context.Context, input *GetRoomStateInput) (*GetRoomStateOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	zones, err := s.cardRepo.GetZones(ctx, &cardRepo.GetZonesInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	requests, err := s.exchangeRepo.GetRequestsForRoom(ctx, &exchangeRepo.GetRequestsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	reactions, err := s.reactionRepo.GetReactionsForRoom(ctx, &reactionRepo.GetReactionsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	playerMap := make(map[string]*models.Player, len(players.Players))
	for _, p := range players.Players {
		playerMap[p.ID] = p
	}

	return &GetRoomStateOutput{
		Snapshot: &models.Snapshot{
			Room:      room,
			Players:   playerMap,
			Zones:     zones,
			Requests:  requests.Requests,
			Reactions: reactions.Reactions,
		},
	}, nil
}

// CloseRoom tears a room down and forgets its state
func (s *service) CloseRoom(ctx context.Context, input *CloseRoomInput) (*CloseRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.RequestedBy == "" {
		return nil, errors.New("input, room ID and requester cannot be empty")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if room.OwnerID != input.RequestedBy {
		return nil, ErrNotOwner
	}

	players, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	for _, p := range players.Players {
		if err := s.playerRepo.RemovePlayer(ctx, &playerRepo.RemovePlayerInput{
			RoomID:   input.RoomID,
			PlayerID: p.ID,
		}); err != nil {
			return nil, fmt.Errorf("failed to remove player %s: %w", p.ID, err)
		}
	}

	if err := s.cardRepo.ClearRoom(ctx, &cardRepo.ClearRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, fmt.Errorf("failed to clear custody state: %w", err)
	}
	if err := s.exchangeRepo.ClearRoom(ctx, &exchangeRepo.ClearRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, fmt.Errorf("failed to clear requests: %w", err)
	}
	if err := s.reactionRepo.ClearRoom(ctx, &reactionRepo.ClearRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, fmt.Errorf("failed to clear reactions: %w", err)
	}
	if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, fmt.Errorf("failed to delete room: %w", err)
	}

	return &CloseRoomOutput{Success: true}, nil
}
