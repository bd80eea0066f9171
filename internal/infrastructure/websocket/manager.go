package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"localmarket/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Client is one live connection. A user may hold several.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
	}
}

// Push encodes message as JSON and queues it on this connection. It never
// blocks: a full buffer or a closed client drops the message.
func (c *Client) Push(message interface{}) {
	payload, err := json.Marshal(message)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode websocket message")
		return
	}
	if !c.enqueue(payload) {
		logger.Warn().Str("user_id", c.UserID).Msg("dropping message for slow or closed client")
	}
}

func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// Manager tracks connections per user and fans messages out to them.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed once the registration loop has stopped
	mutex      sync.RWMutex
	log        zerolog.Logger
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        logger.With("websocket"),
	}
}

// Start runs the registration loop until ctx ends.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		defer close(m.done)
		for {
			select {
			case client := <-m.register:
				m.mutex.Lock()
				if m.clients[client.UserID] == nil {
					m.clients[client.UserID] = make(map[*Client]struct{})
				}
				m.clients[client.UserID][client] = struct{}{}
				m.mutex.Unlock()
				m.log.Debug().Str("user_id", client.UserID).Msg("client registered")

			case client := <-m.unregister:
				m.remove(client)
				m.log.Debug().Str("user_id", client.UserID).Msg("client unregistered")

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Register adds client to its user's connections. It reports false once the
// manager has stopped.
func (m *Manager) Register(client *Client) bool {
	select {
	case m.register <- client:
		return true
	case <-m.done:
		return false
	}
}

// Unregister drops client and closes its send queue. After shutdown the client
// is removed directly instead of through the loop.
func (m *Manager) Unregister(client *Client) {
	select {
	case m.unregister <- client:
	case <-m.done:
		m.remove(client)
	}
}

func (m *Manager) remove(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	conns, ok := m.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; ok {
		delete(conns, client)
		client.close()
	}
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
	}
}

// SendToUser encodes message as JSON and queues it on every connection of the
// user. Connections with a full buffer are skipped.
func (m *Manager) SendToUser(userID string, message interface{}) {
	payload, err := json.Marshal(message)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to encode websocket message")
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.clients[userID] {
		if !client.enqueue(payload) {
			m.log.Warn().Str("user_id", userID).Msg("dropping message for slow client")
		}
	}
}

func (m *Manager) ConnectionCount(userID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients[userID])
}

// ReadPump drains the connection so control frames are handled. It returns when
// the peer goes away.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				m.log.Warn().Err(err).Str("user_id", c.UserID).Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
