package model

import "github.com/google/uuid"

// DeckSettings is per-user durable deck configuration, upserted lazily.
type DeckSettings struct {
	UserID          uuid.UUID
	ExcludeWatched  bool
	MinRatingFilter *float64
}

func DefaultDeckSettings(userID uuid.UUID) DeckSettings {
	return DeckSettings{
		UserID:         userID,
		ExcludeWatched: true,
	}
}

type WatchStatus = string

const (
	WatchStatusWant     WatchStatus = "want_to_watch"
	WatchStatusWatching WatchStatus = "watching"
	WatchStatusWatched  WatchStatus = "watched"
)

// WatchEntry is owned by the user; the matching core only reads it.
type WatchEntry struct {
	UserID  uuid.UUID
	MovieID string
	Status  WatchStatus
	Rating  *float64
}
