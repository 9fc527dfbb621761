package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// envelope is the wire format in both directions: the client identifies
// itself with {"event":"identify"} and the server pushes
// {"event":"getNotification"} frames.
type envelope struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// Client is one live connection. It satisfies ports.Channel: the presence
// registry holds it and the notification dispatcher pushes through it.
type Client struct {
	handle string
	conn   *websocket.Conn

	send      chan envelope
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		handle: uuid.NewString(),
		conn:   conn,
		send:   make(chan envelope, sendBuffer),
		done:   make(chan struct{}),
	}
}

func (c *Client) Handle() string { return c.handle }

// Send queues an event for the write pump. It never blocks a request
// goroutine: a closed or backed-up connection returns an error, which the
// dispatcher logs and swallows.
func (c *Client) Send(event string, data any) error {
	payload, ok := data.(map[string]any)
	if !ok {
		payload = map[string]any{"value": data}
	}

	select {
	case <-c.done:
		return errors.New("channel closed")
	default:
	}

	select {
	case c.send <- envelope{Event: event, Data: payload}:
		return nil
	default:
		return errors.New("channel send buffer full")
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// writePump owns all writes to the connection: queued events plus keepalive
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case env := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
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
