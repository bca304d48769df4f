package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"betagym/internal/metrics"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 32
)

// Event types pushed to clients.
const (
	EventGallery = "gallery"
	EventContact = "contact"
	EventError   = "error"
)

// Event is a state update pushed to every tab of a session.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ClientMessage is what a browser may send over the socket.
type ClientMessage struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

// Client message types.
const (
	MessageSelectCategory = "select_category"
)

// connection represents a single WebSocket client
type connection struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
}

// Hub fans session events out to the open sockets of that session.
// A visitor may have several tabs open, so one session maps to many
// connections.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*connection]struct{}
	metrics  *metrics.Metrics
	log      *zap.Logger
	closed   bool
}

func NewHub(m *metrics.Metrics, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		sessions: make(map[string]map[*connection]struct{}),
		metrics:  m,
		log:      log,
	}
}

func (h *Hub) register(c *connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	conns, ok := h.sessions[c.sessionID]
	if !ok {
		conns = make(map[*connection]struct{})
		h.sessions[c.sessionID] = conns
	}
	conns[c] = struct{}{}
	h.metrics.LiveConnected(1)
	return true
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.sessions[c.sessionID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.sessions, c.sessionID)
	}
	close(c.send)
	h.metrics.LiveConnected(-1)
}

// Publish sends event to every connection of the session. Slow clients
// miss the event rather than blocking the publisher.
func (h *Hub) Publish(sessionID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Warn("marshal live event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.sessions[sessionID] {
		select {
		case c.send <- data:
		default:
			h.log.Debug("live client too slow, event dropped", zap.String("session_id", sessionID))
		}
	}
}

// Connections returns the number of open sockets for the session.
func (h *Hub) Connections(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

// Disconnect closes every socket of the session, e.g. when it expires.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.sessions[sessionID] {
		delete(h.sessions[sessionID], c)
		close(c.send)
		h.metrics.LiveConnected(-1)
	}
	delete(h.sessions, sessionID)
}

// Close disconnects everybody and refuses new connections.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.Disconnect(id)
	}
}

// ServeWS registers the connection, sends hello and runs the read and
// write loops. It blocks until the client goes away.
func (h *Hub) ServeWS(conn *websocket.Conn, sessionID string, hello []Event, receive func(ClientMessage) error) {
	c := &connection{
		sessionID: sessionID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}

	for _, ev := range hello {
		if data, err := json.Marshal(ev); err == nil {
			c.send <- data
		}
	}

	if !h.register(c) {
		conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c, receive)
}

func (h *Hub) readPump(c *connection, receive func(ClientMessage) error) {
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
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("live socket closed", zap.String("session_id", c.sessionID), zap.Error(err))
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if receive == nil {
			continue
		}
		if err := receive(msg); err != nil {
			h.Publish(c.sessionID, Event{Type: EventError, Payload: map[string]string{"message": err.Error()}})
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
