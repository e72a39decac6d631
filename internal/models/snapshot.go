package models

// ZoneView is the full custody partition of a room's dealt cards. Every
// dealt card id appears in exactly one zone.
type ZoneView struct {
	// Undealt contains card ids still in the pool
	Undealt []string

	// Hands maps player id to the card ids in that player's hand
	Hands map[string][]string

	// Selected maps player id to the card id in that player's selected slot
	Selected map[string]string

	// Discard contains card ids in the discard pile
	Discard []string
}

// Snapshot is the full authoritative state of a room as pushed by the
// persistence layer.
type Snapshot struct {
	// Room is the room's phase state
	Room *Room

	// Players maps player id to player record
	Players map[string]*Player

	// Zones is the custody partition
	Zones *ZoneView

	// Requests is the live exchange request set
	Requests []*ExchangeRequest

	// Reactions is the live reaction ledger
	Reactions []*Reaction
}

// ChangeEvent is a partial snapshot published after an accepted mutation.
// Only the sections a mutation touched are populated; nil sections leave
// the receiver's state for that concern untouched.
type ChangeEvent struct {
	// RoomID is the room the event belongs to
	RoomID string

	// Room replaces the room's phase state when non-nil
	Room *Room

	// Players replaces the listed players; players absent from the map keep
	// their previous record
	Players map[string]*Player

	// Zones replaces the custody partition when non-nil
	Zones *ZoneView

	// Requests replaces the full request set when non-nil
	Requests []*ExchangeRequest

	// Reactions replaces the full reaction ledger when non-nil
	Reactions []*Reaction
}
