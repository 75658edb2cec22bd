// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Dashboard event names pushed to connected back-office clients.
const (
	EventIncomeRecorded  = "income.recorded"
	EventAccountCreated  = "account.created"
	EventAccountDeleted  = "account.deleted"
	EventFactoryChanged  = "factory.changed"
	EventMachineChanged  = "machine.changed"
	EventDeliveryCreated = "delivery.created"
	// EventPasswordReset goes only to the account whose password changed.
	EventPasswordReset = "account.password_reset"
)

type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Conn is the subset of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
}

// client serializes writes; a websocket connection allows one writer at a time.
type client struct {
	accountID string
	conn      Conn
	mu        sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub tracks every open dashboard connection. One account may hold several.
type Hub struct {
	clients map[Conn]*client
	mu      sync.RWMutex
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[Conn]*client),
		log:     log,
	}
}

func (h *Hub) Register(accountID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = &client{accountID: accountID, conn: conn}
	h.log.Debug("websocket client registered", zap.String("account_id", accountID))
}

func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		h.log.Debug("websocket client unregistered", zap.String("account_id", c.accountID))
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) snapshot(match func(*client) bool) []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Send delivers an event to every connection of one account. An offline account
// or a nil hub is not an error.
func (h *Hub) Send(accountID string, eventType string, payload any) error {
	if h == nil {
		return nil
	}
	msg, err := encode(eventType, payload)
	if err != nil {
		return err
	}
	for _, c := range h.snapshot(func(c *client) bool { return c.accountID == accountID }) {
		if err := c.write(msg); err != nil {
			h.log.Warn("websocket send failed", zap.String("account_id", accountID), zap.Error(err))
		}
	}
	return nil
}

// Broadcast delivers an event to every connection. A nil hub drops it.
func (h *Hub) Broadcast(eventType string, payload any) {
	if h == nil {
		return
	}
	msg, err := encode(eventType, payload)
	if err != nil {
		h.log.Error("websocket event encode failed", zap.String("type", eventType), zap.Error(err))
		return
	}
	for _, c := range h.snapshot(func(*client) bool { return true }) {
		if err := c.write(msg); err != nil {
			h.log.Warn("websocket broadcast failed", zap.String("account_id", c.accountID), zap.Error(err))
		}
	}
}

func encode(eventType string, payload any) ([]byte, error) {
	return json.Marshal(Event{Type: eventType, Payload: payload, At: time.Now().UTC()})
}
