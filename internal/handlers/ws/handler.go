package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/princengoc/unspoken-sub000/internal/models"
	cardsService "github.com/princengoc/unspoken-sub000/internal/services/cards"
	exchangeService "github.com/princengoc/unspoken-sub000/internal/services/exchange"
	reactionService "github.com/princengoc/unspoken-sub000/internal/services/reaction"
	roomService "github.com/princengoc/unspoken-sub000/internal/services/room"
)

// Config holds the dependencies for the gateway
type Config struct {
	RoomService     roomService.Service
	CardsService    cardsService.Service
	ExchangeService exchangeService.Service
	ReactionService reactionService.Service
	Hub             *Hub

	// AllowedOrigins restricts websocket upgrades; empty allows any origin
	AllowedOrigins []string
}

// Handler is the websocket gateway: one connection per (room, player), the
// full snapshot on attach, change frames as the room mutates, and JSON
// commands for every player action.
type Handler struct {
	roomService     roomService.Service
	cardsService    cardsService.Service
	exchangeService exchangeService.Service
	reactionService reactionService.Service
	hub             *Hub
	upgrader        websocket.Upgrader
}

// New creates a new gateway handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}
	if cfg.CardsService == nil {
		return nil, errors.New("cards service cannot be nil")
	}
	if cfg.ExchangeService == nil {
		return nil, errors.New("exchange service cannot be nil")
	}
	if cfg.ReactionService == nil {
		return nil, errors.New("reaction service cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	return &Handler{
		roomService:     cfg.RoomService,
		cardsService:    cfg.CardsService,
		exchangeService: cfg.ExchangeService,
		reactionService: cfg.ReactionService,
		hub:             cfg.Hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: makeCheckOrigin(cfg.AllowedOrigins),
		},
	}, nil
}

func makeCheckOrigin(allowedOrigins []string) func(r *http.Request) bool {
	if len(allowedOrigins) == 0 {
		return func(r *http.Request) bool { return true }
	}
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		o := strings.TrimSpace(strings.ToLower(origin))
		if o != "" {
			allowed[o] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := strings.TrimSpace(strings.ToLower(r.Header.Get("Origin")))
		_, ok := allowed[origin]
		return ok
	}
}

// ServeHTTP attaches a player to their room's live feed
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	playerID := r.URL.Query().Get("player_id")
	username := r.URL.Query().Get("username")
	if roomID == "" || playerID == "" {
		http.Error(w, "room_id and player_id are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// Presence doubles as the membership check; unknown players join on
	// the fly when the room is still in setup and a username was given
	_, err := h.roomService.SetOnline(ctx, &roomService.SetOnlineInput{
		RoomID:   roomID,
		PlayerID: playerID,
		IsOnline: true,
	})
	if err != nil {
		if errors.Is(err, roomService.ErrPlayerNotInRoom) && username != "" {
			_, err = h.roomService.JoinRoom(ctx, &roomService.JoinRoomInput{
				RoomID:   roomID,
				PlayerID: playerID,
				Username: username,
			})
		}
		if err != nil {
			http.Error(w, codeFor(err), http.StatusForbidden)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	c := &client{conn: conn, playerID: playerID}
	if err := h.hub.Join(ctx, roomID, c); err != nil {
		log.Printf("ws: join room %s: %v", roomID, err)
		return
	}
	defer func() {
		h.hub.Leave(roomID, c)
		// The request context died with the connection
		if _, err := h.roomService.SetOnline(context.Background(), &roomService.SetOnlineInput{
			RoomID:   roomID,
			PlayerID: playerID,
			IsOnline: false,
		}); err != nil {
			log.Printf("ws: set offline for %s: %v", playerID, err)
		}
	}()

	// The full snapshot first; every later frame is a delta against it
	state, err := h.roomService.GetRoomState(ctx, &roomService.GetRoomStateInput{RoomID: roomID})
	if err != nil {
		_ = c.send(&errorFrame{Type: frameError, Code: codeFor(err), Message: err.Error()})
		return
	}
	if err := c.send(&snapshotFrame{Type: frameSnapshot, Snapshot: state.Snapshot}); err != nil {
		return
	}

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			break
		}
		h.dispatch(ctx, c, roomID, playerID, &cmd)
		if cmd.Type == cmdLeaveRoom {
			break
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, c *client, roomID, playerID string, cmd *command) {
	fail := func(err error) {
		if sendErr := c.send(&errorFrame{
			Type:    frameError,
			Cmd:     cmd.Type,
			Code:    codeFor(err),
			Message: err.Error(),
		}); sendErr != nil {
			c.conn.Close()
		}
	}
	ack := func() {
		_ = c.send(&ackFrame{Type: frameAck, Cmd: cmd.Type})
	}

	switch cmd.Type {
	case cmdDeal:
		output, err := h.cardsService.Deal(ctx, &cardsService.DealInput{
			RoomID:   roomID,
			PlayerID: playerID,
		})
		if err != nil {
			fail(err)
			return
		}
		// The hand is the one state other players never see, so it rides a
		// direct frame instead of the room feed
		_ = c.send(&dealtFrame{Type: frameDealt, Cards: output.Cards})

	case cmdSelectCard:
		if _, err := h.cardsService.Select(ctx, &cardsService.SelectInput{
			RoomID:   roomID,
			PlayerID: playerID,
			CardID:   cmd.CardID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdStartSpeaking:
		if _, err := h.roomService.StartSpeaking(ctx, &roomService.StartSpeakingInput{
			RoomID:      roomID,
			RequestedBy: playerID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdBeginSharing:
		if _, err := h.roomService.BeginSharing(ctx, &roomService.BeginSharingInput{
			RoomID:   roomID,
			PlayerID: playerID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdEndSharing:
		if _, err := h.roomService.EndSharing(ctx, &roomService.EndSharingInput{
			RoomID:   roomID,
			PlayerID: playerID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdStartEncore:
		if _, err := h.roomService.StartEncore(ctx, &roomService.StartEncoreInput{
			RoomID:      roomID,
			RequestedBy: playerID,
			DepthFilter: models.CardDepth(cmd.DepthFilter),
			PoolCards:   cmd.Cards,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdPropose:
		if _, err := h.exchangeService.Propose(ctx, &exchangeService.ProposeInput{
			RoomID:       roomID,
			FromPlayerID: playerID,
			ToPlayerID:   cmd.ToPlayerID,
			CardID:       cmd.CardID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	case cmdRespond:
		output, err := h.exchangeService.Respond(ctx, &exchangeService.RespondInput{
			RoomID:    roomID,
			RequestID: cmd.RequestID,
			PlayerID:  playerID,
			Accept:    cmd.Accept,
		})
		if err != nil {
			fail(err)
			return
		}
		if output.Match != nil {
			_ = c.send(&matchedFrame{Type: frameMatched, Match: output.Match})
		} else {
			ack()
		}

	case cmdToggle:
		output, err := h.reactionService.Toggle(ctx, &reactionService.ToggleInput{
			RoomID:     roomID,
			SpeakerID:  cmd.SpeakerID,
			ListenerID: playerID,
			CardID:     cmd.CardID,
			Tag:        models.ReactionTag(cmd.Tag),
			IsPrivate:  cmd.IsPrivate,
		})
		if err != nil {
			fail(err)
			return
		}
		_ = c.send(&toggledFrame{Type: frameToggled, Tag: cmd.Tag, CardID: cmd.CardID, Active: output.Active})

	case cmdToggleRipple:
		output, err := h.reactionService.ToggleRipple(ctx, &reactionService.ToggleRippleInput{
			RoomID:     roomID,
			SpeakerID:  cmd.SpeakerID,
			ListenerID: playerID,
			CardID:     cmd.CardID,
		})
		if err != nil {
			fail(err)
			return
		}
		_ = c.send(&toggledFrame{Type: frameToggled, Tag: string(models.TagRipple), CardID: cmd.CardID, Active: output.Active})

	case cmdLeaveRoom:
		if _, err := h.roomService.LeaveRoom(ctx, &roomService.LeaveRoomInput{
			RoomID:   roomID,
			PlayerID: playerID,
		}); err != nil {
			fail(err)
			return
		}
		ack()

	default:
		fail(errors.New("unknown command: " + cmd.Type))
	}
}

// createRoomRequest is the POST /rooms body
type createRoomRequest struct {
	OwnerID       string         `json:"owner_id"`
	OwnerUsername string         `json:"owner_username"`
	TotalRounds   int            `json:"total_rounds"`
	CardsPerHand  int            `json:"cards_per_hand"`
	DepthFilter   int            `json:"depth_filter"`
	Cards         []*models.Card `json:"cards"`
}

type createRoomResponse struct {
	RoomID string `json:"room_id"`
}

// MakeCreateRoomHandler returns the HTTP handler for creating a room; the
// body carries the owner, the settings, and the round's card catalog
func MakeCreateRoomHandler(svc roomService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		if req.OwnerID == "" {
			http.Error(w, "owner_id is required", http.StatusBadRequest)
			return
		}

		output, err := svc.CreateRoom(r.Context(), &roomService.CreateRoomInput{
			OwnerID:       req.OwnerID,
			OwnerUsername: req.OwnerUsername,
			TotalRounds:   req.TotalRounds,
			CardsPerHand:  req.CardsPerHand,
			DepthFilter:   models.CardDepth(req.DepthFilter),
			PoolCards:     req.Cards,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&createRoomResponse{RoomID: output.Room.ID})
	}
}
