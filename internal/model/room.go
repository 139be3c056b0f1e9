package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus = string

const (
	StatusWaiting RoomStatus = "waiting"
	StatusActive  RoomStatus = "active"
	StatusMatched RoomStatus = "matched"
	StatusExpired RoomStatus = "expired"
)

// Slot is one of the two fixed participant positions in a room.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

func (s Slot) Valid() bool {
	return s == SlotA || s == SlotB
}

func (s Slot) Partner() Slot {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

// Room is an ephemeral two-party pairing session.
// Status transitions are monotonic: waiting -> active -> matched -> expired,
// with waiting|active -> expired on cleanup. No transition ever regresses.
type Room struct {
	ID             uuid.UUID
	Code           string
	Pin            string
	Status         RoomStatus
	Seed           int64
	AConnected     bool
	BConnected     bool
	AUserID        *uuid.UUID
	BUserID        *uuid.UUID
	MatchedMovieID *string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
}

func (r Room) Connected(slot Slot) bool {
	if slot == SlotA {
		return r.AConnected
	}
	return r.BConnected
}

func (r Room) UserID(slot Slot) *uuid.UUID {
	if slot == SlotA {
		return r.AUserID
	}
	return r.BUserID
}

// Terminal reports whether the room accepts no further swipes or matches.
func (r Room) Terminal() bool {
	return r.Status == StatusMatched || r.Status == StatusExpired
}
