package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Broadcaster is the push side of the realtime channel. Controllers emit
// one event per successful mutation; delivery is fire-and-forget, so
// implementations must never return an error to the caller.
//
// Kept as an interface so the broadcast-then-refetch scheme can later be
// swapped for incremental patches without touching the controllers.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// Event is the wire shape pushed to every connected client.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Outbound buffer per client. A client that cannot drain this many
	// events is disconnected; it catches up on its next full refresh.
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement happens in the CORS middleware; the upgrade
	// itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans mutation events out to all connected clients. All client-map
// access happens on the Run goroutine, so no lock is needed.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast marshals the event once and queues it for every client. A
// marshal failure is logged and the event dropped; it never propagates to
// the mutation that triggered it.
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		log.Printf("realtime: dropping event %s: %v", event, err)
		return
	}
	h.broadcast <- msg
}

// Handler upgrades the request and attaches the connection to the hub.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("realtime: upgrade failed: %v", err)
			return
		}
		cl := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
		h.register <- cl
		go cl.writePump()
		go cl.readPump()
	}
}

// readPump discards inbound frames; the channel is push-only. Its job is
// to notice the peer going away and unregister the client.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
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

func (c *client) writePump() {
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
