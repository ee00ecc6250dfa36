package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub fans moderation events out to every connected admin dashboard.
// Delivery is best-effort; a connection that fails a write is dropped.
type Hub struct {
	mutex sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

type envelope struct {
	Event string    `json:"event"`
	Data  any       `json:"data"`
	At    time.Time `json:"at"`
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.conns[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.conns[conn]; exists {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

// Publish sends the event to every connection. The hub lock serializes
// writes, which gorilla connections require.
func (h *Hub) Publish(event string, data any) {
	msg := envelope{Event: event, Data: data, At: time.Now()}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.conns)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}
