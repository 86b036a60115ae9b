package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// Event is a domain change pushed to connected admin dashboards,
// e.g. {resource: "sales", action: "created"}.
type Event struct {
	Resource string      `json:"resource"`
	Action   string      `json:"action"`
	Actor    string      `json:"actor,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*websocket.Conn]bool),
	}
}

// Register adds a connection to the broadcast set
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister removes and closes a connection
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Publish queues an event for all connected clients. Marshalling failures
// are logged and dropped; the feed is advisory, never load-bearing.
func (h *Hub) Publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("ws: failed to marshal event")
		return
	}
	h.broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			logrus.Debug("ws: client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
