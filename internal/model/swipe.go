package model

import (
	"time"

	"github.com/google/uuid"
)

type SwipeAction = string

const (
	ActionLike SwipeAction = "like"
	ActionSkip SwipeAction = "skip"
)

// Swipe is the immutable fact "slot S did action on movie M in room R".
// Unique per (room, movie, slot) at the storage level; re-swiping is a no-op.
type Swipe struct {
	RoomID    uuid.UUID
	MovieID   string
	Slot      Slot
	Action    SwipeAction
	CreatedAt time.Time
}
