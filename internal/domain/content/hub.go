package content

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSEvent is pushed to editors previewing a section
type WSEvent struct {
	Type    string `json:"type"`
	Section string `json:"section"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventContentUpdated = "content_updated"
	EventSnapshot       = "snapshot"
)

type connection struct {
	section string
	conn    *websocket.Conn
	send    chan []byte
}

// Hub fans content changes out to live-preview sockets, grouped by section
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{connections: make(map[*connection]struct{})}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// Count returns the number of sockets watching section
func (h *Hub) Count(section string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.connections {
		if c.section == section {
			n++
		}
	}
	return n
}

// Broadcast sends event to every socket watching event.Section
func (h *Hub) Broadcast(event *WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if c.section != event.Section {
			continue
		}
		select {
		case c.send <- data:
		default:
			// slow reader, drop
		}
	}
}

// ServeWS registers conn for section, sends initial (if not nil) and blocks until the socket closes
func (h *Hub) ServeWS(conn *websocket.Conn, section string, initial *WSEvent) {
	c := &connection{
		section: section,
		conn:    conn,
		send:    make(chan []byte, 64),
	}
	h.register(c)

	if initial != nil {
		if data, err := json.Marshal(initial); err == nil {
			c.send <- data
		}
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump only drains control frames; editors never send content over the socket.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
