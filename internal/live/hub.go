package live

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub tracks the clients subscribed to each board.
type Hub struct {
	mu     sync.RWMutex
	boards map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{boards: make(map[string]map[*Client]struct{})}
}

// Subscribe adds c to its board.
func (h *Hub) Subscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.boards[c.Board]
	if !ok {
		clients = make(map[*Client]struct{})
		h.boards[c.Board] = clients
	}
	clients[c] = struct{}{}
}

// Unsubscribe removes c and closes its send channel. Safe to call twice.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	clients, ok := h.boards[c.Board]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.boards, c.Board)
	}
}

// Publish sends ev to every subscriber of ev.Board. Clients whose buffer is
// full miss the event.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("❌ Failed to encode %s event: %v", ev.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.boards[ev.Board] {
		select {
		case c.send <- data:
		default:
			log.Printf("⚠️  Dropping %s event for slow client %s", ev.Type, c.ID)
		}
	}
}

// CloseBoard disconnects every subscriber of a board.
func (h *Hub) CloseBoard(board string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.boards[board] {
		h.removeLocked(c)
	}
}

// SubscriberCount returns the number of clients following a board.
func (h *Hub) SubscriberCount(board string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.boards[board])
}
