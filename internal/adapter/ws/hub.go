package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

// Hub upgrades websocket connections and ties their lifecycle to the
// presence registry: a connection becomes visible to the notification
// dispatcher once the client identifies itself, and disappears when the
// connection closes.
type Hub struct {
	presence *services.PresenceRegistry
	upgrader websocket.Upgrader
}

func NewHub(presence *services.PresenceRegistry) *Hub {
	return &Hub{
		presence: presence,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the SPA origin; auth happens
			// through the identify event, not the handshake.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve is the gin handler for GET /ws.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := newClient(conn)
	go client.writePump()
	go h.readPump(client)
}

type identifyData struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// readPump processes inbound frames. The only meaningful client event is
// "identify", sent on connect and again on reconnect; everything else is
// ignored. When the read loop ends the client is unregistered and closed.
func (h *Hub) readPump(client *Client) {
	defer func() {
		h.presence.Unregister(client)
		client.close()
	}()

	client.conn.SetReadLimit(1024)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env struct {
			Event string       `json:"event"`
			Data  identifyData `json:"data"`
		}
		if err := client.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}

		if env.Event != "identify" {
			continue
		}

		userID, err := uuid.Parse(env.Data.UserID)
		if err != nil {
			log.Printf("websocket identify with bad userId %q", env.Data.UserID)
			continue
		}

		h.presence.Register(userID, env.Data.Role, client)
	}
}
