package ws

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/princengoc/unspoken-sub000/internal/models"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
)

// client wraps a connection with a write lock; the read loop and the room
// fan-out write concurrently
type client struct {
	conn     *websocket.Conn
	playerID string
	mu       sync.Mutex
}

func (c *client) send(payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(payload)
}

// roomEntry is one room's set of live connections plus its change feed
type roomEntry struct {
	clients      map[*client]struct{}
	subscription *pubsub.Subscription
}

// Hub fans each room's change feed out to that room's connections. The
// feed is attached when the first client joins a room and detached when
// the last one leaves.
type Hub struct {
	mu         sync.Mutex
	subscriber pubsub.Subscriber
	rooms      map[string]*roomEntry
}

// NewHub creates a new hub
func NewHub(subscriber pubsub.Subscriber) *Hub {
	return &Hub{
		subscriber: subscriber,
		rooms:      make(map[string]*roomEntry),
	}
}

// Join registers a client under a room, attaching the room's change feed if
// this is the room's first connection
func (h *Hub) Join(ctx context.Context, roomID string, c *client) error {
	h.mu.Lock()
	if entry, ok := h.rooms[roomID]; ok {
		entry.clients[c] = struct{}{}
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	// Subscribe without holding the lock; the round trip must not stall
	// other rooms' traffic
	subscription, err := h.subscriber.Subscribe(ctx, roomID, func(event *models.ChangeEvent) {
		h.broadcast(roomID, &changeFrame{Type: frameChange, Event: event})
	})
	if err != nil {
		return err
	}

	h.mu.Lock()
	if entry, ok := h.rooms[roomID]; ok {
		// A concurrent join attached the feed first; keep that one
		entry.clients[c] = struct{}{}
		h.mu.Unlock()
		return subscription.Cancel()
	}

	entry := &roomEntry{
		clients:      map[*client]struct{}{c: {}},
		subscription: subscription,
	}
	h.rooms[roomID] = entry
	h.mu.Unlock()

	go func() {
		<-subscription.Done()
		h.dropRoom(roomID, entry)
	}()
	return nil
}

// Leave removes a client; the room's feed is detached when the last client
// is gone
func (h *Hub) Leave(roomID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(entry.clients, c)
	if len(entry.clients) == 0 {
		if err := entry.subscription.Cancel(); err != nil {
			log.Printf("ws: cancel subscription for room %s: %v", roomID, err)
		}
		delete(h.rooms, roomID)
	}
}

// dropRoom tears a room down after its feed died; remaining clients get a
// sync-lost frame so they reconnect rather than sit on frozen state
func (h *Hub) dropRoom(roomID string, entry *roomEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, ok := h.rooms[roomID]
	if !ok || current != entry {
		return
	}
	for c := range entry.clients {
		if err := c.send(&errorFrame{Type: frameError, Code: codeSyncLost, Message: "change feed lost; reconnect"}); err != nil {
			c.conn.Close()
		}
	}
	delete(h.rooms, roomID)
}

// broadcast sends a payload to every client in a room
func (h *Hub) broadcast(roomID string, payload any) {
	h.mu.Lock()
	entry, ok := h.rooms[roomID]
	if !ok {
		h.mu.Unlock()
		return
	}
	clients := make([]*client, 0, len(entry.clients))
	for c := range entry.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.send(payload); err != nil {
			c.conn.Close()
		}
	}
}
