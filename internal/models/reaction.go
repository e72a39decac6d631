package models

import (
	"fmt"
	"time"
)

// ReactionTag names what a listener marked on a speaker's card. Reaction
// types and the ripple mark share key shape but toggle independently.
type ReactionTag string

const (
	// TagInspiring marks the share as inspiring
	TagInspiring ReactionTag = "inspiring"

	// TagResonates marks the share as resonating with the listener
	TagResonates ReactionTag = "resonates"

	// TagMeToo marks that the listener has lived the same thing
	TagMeToo ReactionTag = "metoo"

	// TagTellMeMore asks the speaker to keep going
	TagTellMeMore ReactionTag = "tellmemore"

	// TagRipple is the listener's save-for-later mark, independent of any
	// reaction type on the same (speaker, card, listener) key
	TagRipple ReactionTag = "ripple"
)

// Reaction is a listener's mark on a speaker's card. At most one record
// exists per (room, speaker, listener, card, tag); toggling removes the
// record if present and creates it otherwise.
type Reaction struct {
	// RoomID is the room the reaction belongs to
	RoomID string

	// SpeakerID is the player who shared the card
	SpeakerID string

	// ListenerID is the player issuing the reaction
	ListenerID string

	// CardID is the card being reacted to
	CardID string

	// Tag is the reaction type or the ripple mark
	Tag ReactionTag

	// IsPrivate hides the reaction from third parties
	IsPrivate bool

	// CreatedAt is when the reaction was toggled on
	CreatedAt time.Time
}

// Key returns the unique tuple key for the reaction.
func (r *Reaction) Key() string {
	return fmt.Sprintf("%s:%s:%s:%s", r.SpeakerID, r.CardID, r.ListenerID, r.Tag)
}

// VisibleTo reports whether a viewer may see the reaction: the issuing
// listener always, the addressed speaker always, third parties only when
// the reaction is not private.
func (r *Reaction) VisibleTo(viewerID string) bool {
	if viewerID == r.ListenerID || viewerID == r.SpeakerID {
		return true
	}
	return !r.IsPrivate
}
