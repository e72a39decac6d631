package models

// CardDepth indicates how personal a card's prompt is
type CardDepth int

const (
	// DepthSurface is a light icebreaker prompt
	DepthSurface CardDepth = 1

	// DepthMiddle is a moderately personal prompt
	DepthMiddle CardDepth = 2

	// DepthDeep is a vulnerable, personal prompt
	DepthDeep CardDepth = 3
)

// CardZone is a card's custodial location within a room
type CardZone string

const (
	// ZoneUndealt indicates a card is still in the room's pool
	ZoneUndealt CardZone = "undealt"

	// ZoneHand indicates a card is in a player's hand
	ZoneHand CardZone = "hand"

	// ZoneSelected indicates a card is in a player's selected slot
	ZoneSelected CardZone = "selected"

	// ZoneDiscard indicates a card is in the room's discard pile
	ZoneDiscard CardZone = "discard"
)

// Card is an immutable prompt card. Identity is the ID; content never
// changes after creation.
type Card struct {
	// ID is the unique identifier for the card
	ID string

	// Content is the prompt text
	Content string

	// Category groups cards by theme
	Category string

	// Depth is how personal the prompt is
	Depth CardDepth

	// ContributorID is the player who contributed the card, if any
	ContributorID string
}
