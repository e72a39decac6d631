package ws

import (
	"errors"

	"github.com/princengoc/unspoken-sub000/internal/models"
	cardsService "github.com/princengoc/unspoken-sub000/internal/services/cards"
	exchangeService "github.com/princengoc/unspoken-sub000/internal/services/exchange"
	reactionService "github.com/princengoc/unspoken-sub000/internal/services/reaction"
	roomService "github.com/princengoc/unspoken-sub000/internal/services/room"
)

// Outbound frame types
const (
	frameSnapshot = "snapshot"
	frameChange   = "change"
	frameDealt    = "dealt"
	frameToggled  = "toggled"
	frameMatched  = "matched"
	frameError    = "error"
	frameAck      = "ack"
)

// Inbound command types
const (
	cmdDeal          = "deal"
	cmdSelectCard    = "select_card"
	cmdStartSpeaking = "start_speaking"
	cmdBeginSharing  = "begin_sharing"
	cmdEndSharing    = "end_sharing"
	cmdStartEncore   = "start_encore"
	cmdPropose       = "propose_exchange"
	cmdRespond       = "respond_exchange"
	cmdToggle        = "toggle_reaction"
	cmdToggleRipple  = "toggle_ripple"
	cmdLeaveRoom     = "leave_room"
)

// Error codes carried on error frames
const (
	codeBadCommand        = "bad_command"
	codeRoomNotFound      = "room_not_found"
	codeNotInRoom         = "not_in_room"
	codeNotOwner          = "not_owner"
	codeNotActiveSpeaker  = "not_active_speaker"
	codeInvalidTransition = "invalid_transition"
	codeConcurrentUpdate  = "concurrent_update"
	codeAlreadyDealt      = "already_dealt"
	codeDealingFailed     = "dealing_failed"
	codeCardNotInHand     = "card_not_in_hand"
	codeNotExchangeable   = "not_exchangeable"
	codeDuplicateRequest  = "duplicate_request"
	codeRequestSettled    = "request_settled"
	codeNotRecipient      = "not_recipient"
	codeInvalidTag        = "invalid_tag"
	codeSyncLost          = "sync_lost"
	codeInternal          = "internal"
)

// command is the inbound frame shape; unused fields stay zero
type command struct {
	Type string `json:"type"`

	CardID      string `json:"card_id,omitempty"`
	ToPlayerID  string `json:"to_player_id,omitempty"`
	SpeakerID   string `json:"speaker_id,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
	Accept      bool   `json:"accept,omitempty"`
	Tag         string `json:"tag,omitempty"`
	IsPrivate   bool   `json:"is_private,omitempty"`
	DepthFilter int    `json:"depth_filter,omitempty"`

	// Cards carries the next round's catalog on start_encore
	Cards []*models.Card `json:"cards,omitempty"`
}

type snapshotFrame struct {
	Type     string           `json:"type"`
	Snapshot *models.Snapshot `json:"snapshot"`
}

type changeFrame struct {
	Type  string              `json:"type"`
	Event *models.ChangeEvent `json:"event"`
}

type dealtFrame struct {
	Type  string         `json:"type"`
	Cards []*models.Card `json:"cards"`
}

type toggledFrame struct {
	Type   string `json:"type"`
	Tag    string `json:"tag"`
	CardID string `json:"card_id"`
	Active bool   `json:"active"`
}

type matchedFrame struct {
	Type  string                `json:"type"`
	Match *models.ExchangeMatch `json:"match"`
}

type ackFrame struct {
	Type string `json:"type"`
	Cmd  string `json:"cmd"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Cmd     string `json:"cmd,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// codeFor maps a service error onto a wire error code
func codeFor(err error) string {
	switch {
	case errors.Is(err, roomService.ErrRoomNotFound),
		errors.Is(err, cardsService.ErrRoomNotFound),
		errors.Is(err, exchangeService.ErrRoomNotFound),
		errors.Is(err, reactionService.ErrRoomNotFound):
		return codeRoomNotFound
	case errors.Is(err, roomService.ErrPlayerNotInRoom),
		errors.Is(err, cardsService.ErrPlayerNotInRoom),
		errors.Is(err, exchangeService.ErrPlayerNotInRoom),
		errors.Is(err, reactionService.ErrPlayerNotInRoom):
		return codeNotInRoom
	case errors.Is(err, roomService.ErrNotOwner):
		return codeNotOwner
	case errors.Is(err, roomService.ErrNotActiveSpeaker):
		return codeNotActiveSpeaker
	case errors.Is(err, roomService.ErrInvalidPhaseTransition),
		errors.Is(err, cardsService.ErrNotInSetupPhase):
		return codeInvalidTransition
	case errors.Is(err, roomService.ErrConcurrentUpdate):
		return codeConcurrentUpdate
	case errors.Is(err, cardsService.ErrAlreadyDealt):
		return codeAlreadyDealt
	case errors.Is(err, cardsService.ErrDealingFailed):
		return codeDealingFailed
	case errors.Is(err, cardsService.ErrCardNotInHand):
		return codeCardNotInHand
	case errors.Is(err, exchangeService.ErrCardNotExchangeable),
		errors.Is(err, exchangeService.ErrSelfExchange):
		return codeNotExchangeable
	case errors.Is(err, exchangeService.ErrDuplicateRequest):
		return codeDuplicateRequest
	case errors.Is(err, exchangeService.ErrRequestAlreadySettled):
		return codeRequestSettled
	case errors.Is(err, exchangeService.ErrNotRecipient),
		errors.Is(err, exchangeService.ErrRequestNotFound):
		return codeNotRecipient
	case errors.Is(err, reactionService.ErrInvalidTag),
		errors.Is(err, reactionService.ErrSelfReaction):
		return codeInvalidTag
	default:
		return codeInternal
	}
}
