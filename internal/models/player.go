package models

import (
	"time"
)

// PlayerStatus is a player's presentation state, derived from the room
// phase and the player's own custody state. It is never stored.
type PlayerStatus string

const (
	// StatusChoosing indicates a player is still picking a card from their hand
	StatusChoosing PlayerStatus = "choosing"

	// StatusBrowsing indicates a player has selected and is waiting
	StatusBrowsing PlayerStatus = "browsing"

	// StatusSpeaking indicates a player is the active speaker
	StatusSpeaking PlayerStatus = "speaking"

	// StatusListening indicates a player is listening to the active speaker
	StatusListening PlayerStatus = "listening"
)

// Player represents a participant in a room
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// RoomID is the room the player belongs to
	RoomID string

	// Username is the display name of the player
	Username string

	// IsOnline indicates the player currently has a live connection
	IsOnline bool

	// HasSpoken indicates the player has finished their speaking turn this round
	HasSpoken bool

	// SelectedCardID is the card in the player's selected slot, if any
	SelectedCardID string

	// JoinedAt is when the player joined the room
	JoinedAt time.Time

	// UpdatedAt is when the player was last updated
	UpdatedAt time.Time
}

// DeriveStatus computes a player's status from the room phase and the
// player's custody state. Status is a pure function of these inputs so it
// can never desync from them.
func DeriveStatus(room *Room, player *Player) PlayerStatus {
	if room == nil || player == nil {
		return StatusBrowsing
	}

	switch room.Phase {
	case PhaseSetup:
		if player.SelectedCardID == "" {
			return StatusChoosing
		}
		return StatusBrowsing
	case PhaseSpeaking, PhaseListening:
		if room.ActivePlayerID == player.ID {
			return StatusSpeaking
		}
		if room.IsSpeakerSharing {
			return StatusListening
		}
		return StatusBrowsing
	default:
		return StatusBrowsing
	}
}
