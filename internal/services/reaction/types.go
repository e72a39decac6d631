package reaction

import "github.com/princengoc/unspoken-sub000/internal/models"

// ToggleInput contains parameters for flipping a reaction
type ToggleInput struct {
	RoomID     string
	SpeakerID  string
	ListenerID string
	CardID     string
	Tag        models.ReactionTag
	IsPrivate  bool
}

// ToggleOutput reports the reaction's state after the flip
type ToggleOutput struct {
	Reaction *models.Reaction
	Active   bool
}

// ToggleRippleInput contains parameters for flipping the ripple mark
type ToggleRippleInput struct {
	RoomID     string
	SpeakerID  string
	ListenerID string
	CardID     string
}

// ToggleRippleOutput reports the ripple mark's state after the flip
type ToggleRippleOutput struct {
	Reaction *models.Reaction
	Active   bool
}

// ListForRoomInput contains parameters for listing a room's reactions as
// seen by one viewer
type ListForRoomInput struct {
	RoomID   string
	ViewerID string
}

// ListForRoomOutput contains the reactions the viewer may see
type ListForRoomOutput struct {
	Reactions []*models.Reaction
}
