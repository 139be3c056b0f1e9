package model

type MovieMeta struct {
	ID         string
	PosterLink string
	Title      string
	Genres     []string
	Year       int
	Rating     float64

	Overview string
}

type ItemKind = string

const (
	KindMovie  ItemKind = "movie"
	KindSeries ItemKind = "tv"
)

// PoolItem is a catalog identifier eligible for a room's base deck.
// Pool items are cached with a short TTL and never persisted.
type PoolItem struct {
	ID   string   `json:"id"`
	Kind ItemKind `json:"kind"`
}
