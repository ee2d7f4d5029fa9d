package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected admin dashboard
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans booking and inquiry events out to every connected admin
// dashboard. Broadcasting is fire-and-forget: a full or absent client
// never blocks or fails the request that produced the event.
type Hub struct {
	// Registered clients
	Clients map[*Client]bool

	// Broadcast channel for events to all clients
	Broadcast chan *Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// Event is a single dashboard notification
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Event types pushed to the admin dashboard
const (
	EventBookingCreated = "booking_created"
	EventInquiryCreated = "inquiry_created"
)

// NewHub creates a new event hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Admin dashboard connected (%d active)", h.ClientCount())

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Admin dashboard disconnected (%d active)", h.ClientCount())

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to all connected dashboards
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Error marshaling event: %v", err)
		return
	}

	for client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.Clients, client)
		}
	}
}

// ClientCount returns the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}

// NotifyBookingCreated pushes a new-booking event to connected dashboards
func (h *Hub) NotifyBookingCreated(data interface{}) {
	h.notify(&Event{Type: EventBookingCreated, Data: data, Timestamp: time.Now()})
}

// NotifyInquiryCreated pushes a new-inquiry event to connected dashboards
func (h *Hub) NotifyInquiryCreated(data interface{}) {
	h.notify(&Event{Type: EventInquiryCreated, Data: data, Timestamp: time.Now()})
}

// notify queues an event without ever blocking the caller
func (h *Hub) notify(event *Event) {
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Event channel full, dropping %s event", event.Type)
	}
}
