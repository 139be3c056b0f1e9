package ws_room

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
)

const (
	EventUserJoined         = "user_joined"
	EventUserLeft           = "user_left"
	EventPartnerAuthChanged = "partner_auth_changed"
	EventRoomReady          = "room_ready"
	EventSwipeProgress      = "swipe_progress"
	EventPartnerLiked       = "partner_liked"
	EventMatchFound         = "match_found"
	EventRoomExpired        = "room_expired"
	EventError              = "error"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type Hub struct {
	roomUC  *usecase_room.Usecase
	swipeUC *usecase_swipe.Usecase
	logger  *slog.Logger

	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	unregister chan *Client
	mu         sync.Mutex

	// One deferred expiry timer per matched room.
	timers   map[string]*time.Timer
	timersMu sync.Mutex
}

func NewHub(roomUC *usecase_room.Usecase, swipeUC *usecase_swipe.Usecase) *Hub {
	return &Hub{
		roomUC:     roomUC,
		swipeUC:    swipeUC,
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		unregister: make(chan *Client),
		timers:     make(map[string]*time.Timer),
	}
}

// Run drains disconnects so readPump teardown never blocks on hub state.
func (h *Hub) Run() {
	for client := range h.unregister {
		h.handleUnregister(client)
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}
	h.rooms[client.roomCode][client] = true

	h.logger.Info("client registered",
		"room", client.roomCode,
		"slot", client.slot)
}

// handleUnregister runs for every connection teardown, including clients
// the hub already dropped as slow consumers and clients that never joined.
// It guarantees the send channel ends up closed so writePump exits.
func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	if roomClients, exists := h.rooms[client.roomCode]; exists {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, client.roomCode)
		}
	}
	h.closeSendLocked(client)
	h.mu.Unlock()

	h.logger.Info("client unregistered",
		"room", client.roomCode,
		"slot", client.slot)

	// A joined client owes the peer a user_left even when the hub already
	// evicted it from the room map.
	if client.joined {
		h.leaveRoom(client)
	}
}

// leaveRoom clears the slot's connection flag and tells the peer. Room
// status is untouched: once active a room never regresses.
func (h *Hub) leaveRoom(client *Client) {
	if err := h.roomUC.Disconnect(context.Background(), client.roomCode, client.slot); err != nil {
		h.logger.Error("failed to disconnect slot",
			"error", err, "room", client.roomCode, "slot", client.slot)
	}

	h.sendToPartner(client.roomCode, client.slot, Event{
		Type: EventUserLeft,
		Payload: map[string]interface{}{
			"userSlot": client.slot,
		},
	})
}

// JoinRoom registers a slot's presence: flips the connection flag, notifies
// the peer, announces room activation, and tells the partner when priority
// content may now exist so they refetch the queue.
func (h *Hub) JoinRoom(client *Client, userID *uuid.UUID) {
	room, activated, hasWantList, err := h.roomUC.Connect(context.Background(), client.roomCode, client.slot, userID)
	if err != nil {
		client.sendError("invalid/expired session")
		return
	}
	client.joined = true

	h.sendToPartner(client.roomCode, client.slot, Event{
		Type: EventUserJoined,
		Payload: map[string]interface{}{
			"userSlot": client.slot,
		},
	})

	if userID != nil {
		h.sendToPartner(client.roomCode, client.slot, Event{
			Type: EventPartnerAuthChanged,
			Payload: map[string]interface{}{
				"isAuthenticated":    true,
				"hasWantToWatchList": hasWantList,
			},
		})
	}

	if activated {
		h.broadcastToRoom(client.roomCode, Event{
			Type: EventRoomReady,
			Payload: map[string]interface{}{
				"roomCode": client.roomCode,
			},
		})
	}

	// Re-arm the deferred expiry after instance restarts.
	if room.Status == model.StatusMatched && room.ExpiresAt != nil {
		h.armExpiry(client.roomCode, time.Until(*room.ExpiresAt))
	}
}

// Swipe persists the swipe, relays progress and pushes partner_liked /
// match_found. Stale-room swipes are ignored without any broadcast.
func (h *Hub) Swipe(client *Client, movieID string, action model.SwipeAction) {
	outcome, err := h.swipeUC.Record(context.Background(), client.roomCode, movieID, action, client.slot)
	if err != nil {
		h.logger.Error("failed to record swipe",
			"error", err, "room", client.roomCode, "slot", client.slot)
		client.sendError("failed to record swipe")
		return
	}

	if outcome.Stale {
		return
	}

	if outcome.Recorded {
		h.broadcastToRoom(client.roomCode, Event{
			Type: EventSwipeProgress,
			Payload: map[string]interface{}{
				"userSlot":    client.slot,
				"totalSwiped": outcome.TotalSwiped,
			},
		})
	}

	if outcome.PartnerLiked != nil {
		h.sendToPartner(client.roomCode, client.slot, Event{
			Type: EventPartnerLiked,
			Payload: map[string]interface{}{
				"movieId": movieID,
				"movie":   movieDTO(*outcome.PartnerLiked),
			},
		})
	}

	if outcome.Matched {
		h.broadcastToRoom(client.roomCode, Event{
			Type: EventMatchFound,
			Payload: map[string]interface{}{
				"movieId": outcome.MatchedMovieID,
			},
		})
		h.armExpiry(client.roomCode, time.Until(outcome.ExpiresAt))
	}
}

// LeaveRoom handles an explicit leave_room event.
func (h *Hub) LeaveRoom(client *Client) {
	if !client.joined {
		return
	}
	client.joined = false
	h.leaveRoom(client)
}

// armExpiry schedules the matched -> expired transition. The persisted
// expires_at stays authoritative; cleanup catches rooms whose timer never
// fired.
func (h *Hub) armExpiry(roomCode string, in time.Duration) {
	if in < 0 {
		in = 0
	}

	h.timersMu.Lock()
	defer h.timersMu.Unlock()

	if _, armed := h.timers[roomCode]; armed {
		return
	}
	h.timers[roomCode] = time.AfterFunc(in, func() {
		h.expireRoom(roomCode)
	})
}

func (h *Hub) expireRoom(roomCode string) {
	h.timersMu.Lock()
	delete(h.timers, roomCode)
	h.timersMu.Unlock()

	expired, err := h.roomUC.Expire(context.Background(), roomCode)
	if err != nil {
		h.logger.Error("failed to expire room", "error", err, "room", roomCode)
		return
	}
	if !expired {
		return
	}

	h.broadcastToRoom(roomCode, Event{
		Type: EventRoomExpired,
	})

	h.logger.Info("room expired", "room", roomCode)
}

// Slow consumers are dropped instead of blocking the room.
func (h *Hub) broadcastToRoom(roomCode string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			select {
			case client.send <- event:
			default:
				h.dropLocked(client)
			}
		}
	}
}

func (h *Hub) sendToPartner(roomCode string, from model.Slot, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			if client.slot == from {
				continue
			}
			select {
			case client.send <- event:
			default:
				h.dropLocked(client)
			}
		}
	}
}

// dropLocked evicts a client under h.mu. Only event delivery stops here;
// connection-flag bookkeeping still happens in handleUnregister once the
// connection itself dies.
func (h *Hub) dropLocked(client *Client) {
	h.closeSendLocked(client)
	delete(h.clients, client)
	if roomClients, exists := h.rooms[client.roomCode]; exists {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, client.roomCode)
		}
	}
}

func (h *Hub) closeSendLocked(client *Client) {
	if client.closed {
		return
	}
	client.closed = true
	close(client.send)
}

func movieDTO(meta model.MovieMeta) map[string]interface{} {
	return map[string]interface{}{
		"id":          meta.ID,
		"title":       meta.Title,
		"poster_link": meta.PosterLink,
		"genres":      meta.Genres,
		"year":        meta.Year,
		"rating":      meta.Rating,
		"overview":    meta.Overview,
	}
}
