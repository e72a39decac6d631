package models

import (
	"time"
)

// ExchangeStatus represents the state of an exchange request
type ExchangeStatus string

const (
	// ExchangePending indicates the recipient has not yet responded
	ExchangePending ExchangeStatus = "pending"

	// ExchangeAccepted indicates the recipient accepted the dare
	ExchangeAccepted ExchangeStatus = "accepted"

	// ExchangeDeclined indicates the recipient declined the dare
	ExchangeDeclined ExchangeStatus = "declined"
)

// ExchangeRequest is a directional dare: the sender names one of their own
// discarded cards for the recipient to answer. Accepted and declined are
// terminal; a counter-proposal is a brand-new request in the opposite
// direction, never a mutation of this one.
type ExchangeRequest struct {
	// ID is the unique identifier for the request
	ID string

	// RoomID is the room the request belongs to
	RoomID string

	// FromPlayerID is the player proposing the card
	FromPlayerID string

	// ToPlayerID is the player being dared
	ToPlayerID string

	// CardID is the proposed card
	CardID string

	// Status is the current state of the request
	Status ExchangeStatus

	// CreatedAt is when the request was created
	CreatedAt time.Time

	// RespondedAt is when the recipient responded, if they have
	RespondedAt *time.Time
}

// IsTerminal reports whether the request can no longer change state.
func (r *ExchangeRequest) IsTerminal() bool {
	return r.Status == ExchangeAccepted || r.Status == ExchangeDeclined
}

// ExchangeMatch is the derived mutual-acceptance relationship between two
// players. It is recomputed from the live request set, never stored.
type ExchangeMatch struct {
	// PlayerAID and PlayerBID are the matched pair
	PlayerAID string
	PlayerBID string

	// RequestAToB is the accepted request from A to B
	RequestAToB string

	// RequestBToA is the accepted request from B to A
	RequestBToA string
}

// DeriveMatches recomputes the full match set from the given requests. The
// derivation runs over the whole set on every call because either side's
// request can change status independently and out of order.
func DeriveMatches(requests []*ExchangeRequest) []*ExchangeMatch {
	accepted := make(map[string]*ExchangeRequest)
	for _, req := range requests {
		if req.Status != ExchangeAccepted {
			continue
		}
		key := req.FromPlayerID + ":" + req.ToPlayerID
		if _, ok := accepted[key]; !ok {
			accepted[key] = req
		}
	}

	var matches []*ExchangeMatch
	seen := make(map[string]bool)
	for key, req := range accepted {
		reverseKey := req.ToPlayerID + ":" + req.FromPlayerID
		reverse, ok := accepted[reverseKey]
		if !ok || seen[key] || seen[reverseKey] {
			continue
		}
		seen[key] = true
		seen[reverseKey] = true

		// Order the pair deterministically so output does not depend on map order
		a, b := req, reverse
		if a.FromPlayerID > b.FromPlayerID {
			a, b = b, a
		}
		matches = append(matches, &ExchangeMatch{
			PlayerAID:   a.FromPlayerID,
			PlayerBID:   b.FromPlayerID,
			RequestAToB: a.ID,
			RequestBToA: b.ID,
		})
	}

	return matches
}
