// Package events streams recorded transactions to websocket clients.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is the message sent to clients for every recorded transaction.
type Event struct {
	Type        string             `json:"type" example:"transaction"`
	Transaction models.Transaction `json:"transaction"`
}

const (
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps track of connected websocket clients and broadcasts
// every recorded transaction to them.
//
// Broadcasting never blocks. Clients that cannot keep up are disconnected.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub returns a Hub accepting websocket connections from any origin.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket connection and
// registers it as a client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		conn.Close()
		return
	}

	go h.write(c)

	// Clients do not send anything, reading only detects the disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}

// TransactionRecorded broadcasts the transaction to all clients.
func (h *Hub) TransactionRecorded(t models.Transaction) {
	message, err := json.Marshal(Event{Type: "transaction", Transaction: t})
	if err != nil {
		log.Error().Err(err).Str("transaction", t.ID).Msg("could not encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- message:
		default:
			log.Info().Str("remote", c.conn.RemoteAddr().String()).Msg("websocket client too slow, disconnecting")
			h.drop(c)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients. Connections arriving afterwards are rejected.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.drop(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.clients[c] = struct{}{}
	log.Debug().Int("clients", len(h.clients)).Msg("websocket client connected")
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		h.drop(c)
		log.Debug().Int("clients", len(h.clients)).Msg("websocket client disconnected")
	}
}

// drop removes the client. The caller must hold h.mu.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// write sends queued messages to the client until its queue is closed.
func (h *Hub) write(c *client) {
	defer c.conn.Close()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.unregister(c)
			// Drain so that the queue can be closed without blocking anyone
			for range c.send {
			}
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
