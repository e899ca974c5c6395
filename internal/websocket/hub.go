package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Record event types
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Entities a RecordEvent can refer to
const (
	EntityDocumentRequest = "documentRequest"
	EntityBlotter         = "blotter"
	EntityFeedback        = "feedback"
	EntityUser            = "user"
)

// RecordEvent tells dashboards that a record changed and should be refetched
type RecordEvent struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

// Publisher is what handlers need to announce changes
type Publisher interface {
	Publish(event RecordEvent)
}

// Hub maintains the set of connected dashboards and fans out record events
type Hub struct {
	// Registered clients map: ClientID -> Client
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	// Guards clients for readers outside Run
	mu sync.RWMutex

	log zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "ws").Logger(),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.log.Debug().Str("client", client.ID).Msg("📺 Dashboard connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				h.log.Debug().Str("client", client.ID).Msg("📴 Dashboard disconnected")
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than stall everyone else
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues event for every connected dashboard. It never blocks the
// caller: when the queue is full the event is dropped and logged.
func (h *Hub) Publish(event RecordEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal record event")
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.log.Warn().Str("entity", event.Entity).Str("id", event.ID).Msg("⚠️ Event queue full, dropping")
	}
}

// ClientCount reports how many dashboards are connected
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
