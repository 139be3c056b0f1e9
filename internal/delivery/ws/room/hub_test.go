package ws_room

import (
	"testing"

	"github.com/humanbelnik/kinomatch/core/internal/model"
	room_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/room/mocks"
	swipe_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe/mocks"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHub(t *testing.T) (*Hub, *room_mocks.RoomRepository) {
	t.Helper()

	roomRepo := room_mocks.NewRoomRepository(t)
	roomUC := usecase_room.New(roomRepo, room_mocks.NewWatchListReader(t), 20)

	swipeUC := usecase_swipe.New(
		swipe_mocks.NewSwipeRepository(t),
		swipe_mocks.NewRoomRepository(t),
		swipe_mocks.NewWatchListReader(t),
		swipe_mocks.NewCatalogResolver(t),
		0,
	)

	return NewHub(roomUC, swipeUC), roomRepo
}

func drain(c *Client) []Event {
	events := make([]Event, 0, len(c.send))
	for {
		select {
		case ev := <-c.send:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestSlowConsumerTeardown(t *testing.T) {
	h, roomRepo := newTestHub(t)
	code := "123456"

	slow := &Client{hub: h, send: make(chan Event, 1), roomCode: code, slot: model.SlotA, joined: true}
	partner := &Client{hub: h, send: make(chan Event, 8), roomCode: code, slot: model.SlotB, joined: true}
	h.handleRegister(slow)
	h.handleRegister(partner)

	// Saturate the buffer so the next broadcast evicts the slow client.
	slow.send <- Event{Type: EventSwipeProgress}
	h.broadcastToRoom(code, Event{Type: EventSwipeProgress})

	roomRepo.On("SetConnected", mock.Anything, code, model.SlotA, false).Return(nil)

	h.handleUnregister(slow)

	roomRepo.AssertCalled(t, "SetConnected", mock.Anything, code, model.SlotA, false)

	var sawUserLeft bool
	for _, ev := range drain(partner) {
		if ev.Type == EventUserLeft {
			sawUserLeft = true
		}
	}
	assert.True(t, sawUserLeft, "partner never learned the evicted slot left")
}

func TestUnregisterBeforeJoin(t *testing.T) {
	h, _ := newTestHub(t)

	client := &Client{hub: h, send: make(chan Event, 16), roomCode: "123456", slot: model.SlotA}

	h.handleUnregister(client)

	select {
	case _, open := <-client.send:
		assert.False(t, open)
	default:
		t.Fatal("send channel still open after unregister; writePump would never exit")
	}
}

func TestSendErrorAfterEviction(t *testing.T) {
	h, _ := newTestHub(t)

	client := &Client{hub: h, send: make(chan Event, 1), roomCode: "123456", slot: model.SlotA}
	h.handleRegister(client)

	client.send <- Event{Type: EventSwipeProgress}
	h.broadcastToRoom("123456", Event{Type: EventSwipeProgress})

	// Eviction closed the channel; a late error must be a silent no-op.
	client.sendError("malformed message")
}
