package ws_room

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // ! Tighten on NGINX setup
	},
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event

	roomCode string
	slot     model.Slot
	joined   bool

	// closed is guarded by hub.mu; send is closed at most once.
	closed bool
}

func (c *Client) sendError(message string) {
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- Event{
		Type: EventError,
		Payload: map[string]interface{}{
			"message": message,
		},
	}:
	default:
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinRoomDTO struct {
	RoomCode string  `json:"roomCode"`
	UserSlot string  `json:"userSlot"`
	UserID   *string `json:"userId,omitempty"`
}

type swipeDTO struct {
	RoomCode string `json:"roomCode"`
	MovieID  string `json:"movieId"`
	Action   string `json:"action"`
	UserSlot string `json:"userSlot"`
}

type leaveRoomDTO struct {
	RoomCode string `json:"roomCode"`
	UserSlot string `json:"userSlot"`
}

type Controller struct {
	hub    *Hub
	logger *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_id/ws", c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		hub:      c.hub,
		conn:     conn,
		send:     make(chan Event, 16),
		roomCode: ctx.Param("room_id"),
	}

	go client.writePump()
	client.readPump()
}

// readPump serializes one connection's events: a slot's swipes are always
// processed in arrival order. Transport errors and malformed payloads only
// ever affect the offending client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}

		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg inboundMessage) {
	switch msg.Type {
	case "join_room":
		var dto joinRoomDTO
		if err := json.Unmarshal(msg.Payload, &dto); err != nil || dto.RoomCode != c.roomCode {
			c.sendError("malformed join_room payload")
			return
		}
		slot := model.Slot(dto.UserSlot)
		if !slot.Valid() {
			c.sendError("bad slot")
			return
		}
		c.slot = slot

		var userID *uuid.UUID
		if dto.UserID != nil {
			parsed, err := uuid.Parse(*dto.UserID)
			if err != nil {
				c.sendError("bad user id")
				return
			}
			userID = &parsed
		}

		// Register synchronously so room_ready cannot outrun membership.
		c.hub.handleRegister(c)
		c.hub.JoinRoom(c, userID)

	case "swipe":
		var dto swipeDTO
		if err := json.Unmarshal(msg.Payload, &dto); err != nil || dto.RoomCode != c.roomCode {
			c.sendError("malformed swipe payload")
			return
		}
		if !c.joined {
			c.sendError("join the room first")
			return
		}
		c.hub.Swipe(c, dto.MovieID, dto.Action)

	case "leave_room":
		var dto leaveRoomDTO
		if err := json.Unmarshal(msg.Payload, &dto); err != nil || dto.RoomCode != c.roomCode {
			c.sendError("malformed leave_room payload")
			return
		}
		c.hub.LeaveRoom(c)

	default:
		c.sendError("unknown event type")
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			break
		}
	}
}
