package reaction

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/princengoc/unspoken-sub000/internal/common/clock"
	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	playerRepo "github.com/princengoc/unspoken-sub000/internal/repositories/player"
	reactionRepo "github.com/princengoc/unspoken-sub000/internal/repositories/reaction"
	roomRepo "github.com/princengoc/unspoken-sub000/internal/repositories/room"
)

// Config holds the dependencies for the reaction service
type Config struct {
	RoomRepo     roomRepo.Repository
	PlayerRepo   playerRepo.Repository
	ReactionRepo reactionRepo.Repository
	Publisher    pubsub.Publisher
	Clock        clock.Clock
}

// service implements the Service interface
type service struct {
	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	reactionRepo reactionRepo.Repository
	publisher    pubsub.Publisher
	clock        clock.Clock
}

// New creates a new reaction service
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
	if cfg.ReactionRepo == nil {
		return nil, ErrNilReactionRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		roomRepo:     cfg.RoomRepo,
		playerRepo:   cfg.PlayerRepo,
		reactionRepo: cfg.ReactionRepo,
		publisher:    cfg.Publisher,
		clock:        cfg.Clock,
	}, nil
}

func validTag(tag models.ReactionTag) bool {
	switch tag {
	case models.TagInspiring, models.TagResonates, models.TagMeToo, models.TagTellMeMore:
		return true
	}
	return false
}

func (s *service) publishReactions(ctx context.Context, roomID string) {
	all, err := s.reactionRepo.GetReactionsForRoom(ctx, &reactionRepo.GetReactionsForRoomInput{RoomID: roomID})
	if err != nil {
		log.Printf("failed to load reactions for room %s: %v", roomID, err)
		return
	}
	if err := s.publisher.Publish(ctx, &models.ChangeEvent{
		RoomID:    roomID,
		Reactions: all.Reactions,
	}); err != nil {
		log.Printf("failed to publish change event for room %s: %v", roomID, err)
	}
}

// toggle runs the shared precondition checks and flips the given reaction
func (s *service) toggle(ctx context.Context, reaction *models.Reaction) (bool, error) {
	if reaction.ListenerID == reaction.SpeakerID {
		return false, ErrSelfReaction
	}

	if _, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: reaction.RoomID}); err != nil {
		return false, ErrRoomNotFound
	}

	if _, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		RoomID:   reaction.RoomID,
		PlayerID: reaction.ListenerID,
	}); err != nil {
		return false, ErrPlayerNotInRoom
	}

	output, err := s.reactionRepo.ToggleReaction(ctx, &reactionRepo.ToggleReactionInput{Reaction: reaction})
	if err != nil {
		return false, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	s.publishReactions(ctx, reaction.RoomID)

	return output.Active, nil
}

// Toggle flips a reaction on or off for its exact tuple
func (s *service) Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error) {
	if input == nil || input.RoomID == "" || input.SpeakerID == "" || input.ListenerID == "" || input.CardID == "" {
		return nil, errors.New("input, room ID, speaker ID, listener ID and card ID cannot be empty")
	}

	if !validTag(input.Tag) {
		return nil, ErrInvalidTag
	}

	reaction := &models.Reaction{
		RoomID:     input.RoomID,
		SpeakerID:  input.SpeakerID,
		ListenerID: input.ListenerID,
		CardID:     input.CardID,
		Tag:        input.Tag,
		IsPrivate:  input.IsPrivate,
		CreatedAt:  s.clock.Now(),
	}

	active, err := s.toggle(ctx, reaction)
	if err != nil {
		return nil, err
	}

	return &ToggleOutput{Reaction: reaction, Active: active}, nil
}

// ToggleRipple flips the listener's save-for-later mark. Ripples are always
// private to the listener and speaker.
func (s *service) ToggleRipple(ctx context.Context, input *ToggleRippleInput) (*ToggleRippleOutput, error) {
	if input == nil || input.RoomID == "" || input.SpeakerID == "" || input.ListenerID == "" || input.CardID == "" {
		return nil, errors.New("input, room ID, speaker ID, listener ID and card ID cannot be empty")
	}

	reaction := &models.Reaction{
		RoomID:     input.RoomID,
		SpeakerID:  input.SpeakerID,
		ListenerID: input.ListenerID,
		CardID:     input.CardID,
		Tag:        models.TagRipple,
		IsPrivate:  true,
		CreatedAt:  s.clock.Now(),
	}

	active, err := s.toggle(ctx, reaction)
	if err != nil {
		return nil, err
	}

	return &ToggleRippleOutput{Reaction: reaction, Active: active}, nil
}

// ListForRoom retrieves the reactions visible to one viewer
func (s *service) ListForRoom(ctx context.Context, input *ListForRoomInput) (*ListForRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.ViewerID == "" {
		return nil, errors.New("input, room ID and viewer ID cannot be empty")
	}

	all, err := s.reactionRepo.GetReactionsForRoom(ctx, &reactionRepo.GetReactionsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	visible := make([]*models.Reaction, 0, len(all.Reactions))
	for _, r := range all.Reactions {
		if r.VisibleTo(input.ViewerID) {
			visible = append(visible, r)
		}
	}

	return &ListForRoomOutput{Reactions: visible}, nil
}
