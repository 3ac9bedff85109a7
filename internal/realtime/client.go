package realtime

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
	writeWait      = 10 * time.Second
)

// Client represents a single WebSocket connection and the subscriptions it
// has requested.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// controlMessage is what clients send to manage their subscriptions.
type controlMessage struct {
	Action      string `json:"action"`
	Table       string `json:"table"`
	HouseholdID uint   `json:"household_id"`
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Run registers the client, starts the write pump, and runs the read pump.
// It blocks until the connection closes, then unregisters.
func (c *Client) Run() {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	done := make(chan struct{})
	go c.writePump(done)
	c.readPump()
	close(done)
}

// readPump handles incoming subscribe/unsubscribe control messages. It
// returns on read error (connection close), which triggers cleanup.
func (c *Client) readPump() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg controlMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		switch msg.Action {
		case "subscribe":
			c.hub.Subscribe(c, msg.Table, msg.HouseholdID)
		case "unsubscribe":
			c.hub.Unsubscribe(c, msg.Table, msg.HouseholdID)
		}
	}
}

// writePump drains the send channel onto the connection and pings
// periodically to detect stale connections.
func (c *Client) writePump(done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				// Hub closed the channel; connection is done
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
