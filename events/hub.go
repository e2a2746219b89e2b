package events

import (
	"log"
	"sync"

	"github.com/JWDT/bug-tracker/models"
	"github.com/gorilla/websocket"
)

const (
	EventTicketCreated = "ticketCreated"
	EventTicketUpdated = "ticketUpdated"
)

type TicketEvent struct {
	Type   string         `json:"type"`
	Ticket *models.Ticket `json:"ticket"`
}

// Hub fans ticket mutation events out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

func (h *Hub) Broadcast(event TicketEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("events: dropping client after write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
