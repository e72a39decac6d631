package models

import (
	"time"
)

// RoomPhase represents the current phase of a room's match
type RoomPhase string

const (
	// PhaseSetup indicates players are being dealt cards and choosing one
	PhaseSetup RoomPhase = "setup"

	// PhaseSpeaking indicates a speaker has the floor but is not yet sharing
	PhaseSpeaking RoomPhase = "speaking"

	// PhaseListening indicates the active speaker is sharing their card
	PhaseListening RoomPhase = "listening"

	// PhaseEndgame indicates every player has spoken this round
	PhaseEndgame RoomPhase = "endgame"
)

// Room represents a match room and its phase state
type Room struct {
	// ID is the unique identifier for the room
	ID string

	// OwnerID is the player who created the room
	OwnerID string

	// Phase is the current phase of the match
	Phase RoomPhase

	// ActivePlayerID is the current speaker; empty outside speaking/listening
	ActivePlayerID string

	// IsSpeakerSharing indicates the active speaker is actively sharing
	IsSpeakerSharing bool

	// CurrentRound is the 1-based round counter
	CurrentRound int

	// TotalRounds is how many rounds the room is configured to play
	TotalRounds int

	// CardsPerHand is how many cards each player is dealt per round
	CardsPerHand int

	// DepthFilter limits the pool to cards at or below this depth; 0 means no filter
	DepthFilter CardDepth

	// Version increments on every accepted write; the store rejects writes
	// against a stale version so concurrent transitions have a single winner
	Version int64

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}
