package push

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/fleetcases/internal/events"
)

const clientBufferSize = 16

// Client is a connected push session, messages for it are queued to Send
type Client struct {
	ID         string
	Send       chan []byte
	CustomerID string
}

// SubscribeMessage is sent by client to start or stop receiving customer events
type SubscribeMessage struct {
	Action     string `json:"action"`
	CustomerID string `json:"customerId"`
}

// Hub keeps connected clients and delivers case events to subscribers of the event customer
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// NewClient builds client with buffered send queue
func NewClient(id string) *Client {
	return &Client{ID: id, Send: make(chan []byte, clientBufferSize)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	close(c.Send)
}

// Subscribe binds client to customer, empty customer id stops delivery
func (h *Hub) Subscribe(c *Client, customerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.CustomerID = customerID
}

// Clients returns number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish implements events.Publisher, slow clients lose messages instead of blocking the caller
func (h *Hub) Publish(_ context.Context, e events.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		logrus.Errorf("push: failed to marshal case event - %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.CustomerID == "" || c.CustomerID != e.CustomerID {
			continue
		}

		select {
		case c.Send <- payload:
		default:
			logrus.Warnf("push: drop %s message for client %s", e.Type, c.ID)
		}
	}
}

// ParseSubscribe returns false if data is not a subscribe or unsubscribe message
func ParseSubscribe(data []byte) (SubscribeMessage, bool) {
	var msg SubscribeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return SubscribeMessage{}, false
	}

	if msg.Action != "subscribe" && msg.Action != "unsubscribe" {
		return SubscribeMessage{}, false
	}
	return msg, true
}
