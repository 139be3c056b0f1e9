package usecase_queue

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_pool "github.com/humanbelnik/kinomatch/core/internal/usecase/pool"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrBadSlot      = errors.New("bad slot")
	ErrBadWindow    = errors.New("bad pagination window")
	ErrInternal     = errors.New("internal error")
)

// Resolve a bit past the window in the same batch; the catalog warms up
// for the next page at no extra call.
const resolveLookahead = 8

//go:generate mockery --name=RoomProvider --output=./mocks --outpkg=mocks
type RoomProvider interface {
	ByCode(ctx context.Context, code string) (model.Room, error)
}

//go:generate mockery --name=SwipeReader --output=./mocks --outpkg=mocks
type SwipeReader interface {
	MovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]string, error)
	LikedMovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]string, error)
}

//go:generate mockery --name=PrefsReader --output=./mocks --outpkg=mocks
type PrefsReader interface {
	DeckSettings(ctx context.Context, userID uuid.UUID) (model.DeckSettings, error)
	WatchList(ctx context.Context, userID uuid.UUID, statuses []model.WatchStatus) ([]model.WatchEntry, error)
	WatchedMovieIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

//go:generate mockery --name=CatalogResolver --output=./mocks --outpkg=mocks
type CatalogResolver interface {
	ResolveMany(ctx context.Context, ids []string) (map[string]model.MovieMeta, error)
}

//go:generate mockery --name=PoolProvider --output=./mocks --outpkg=mocks
type PoolProvider interface {
	BuildPool(ctx context.Context) ([]model.PoolItem, error)
}

type Usecase struct {
	rooms   RoomProvider
	swipes  SwipeReader
	prefs   PrefsReader
	catalog CatalogResolver
	pool    PoolProvider
}

func New(
	rooms RoomProvider,
	swipes SwipeReader,
	prefs PrefsReader,
	catalog CatalogResolver,
	pool PoolProvider,
) *Usecase {
	return &Usecase{
		rooms:   rooms,
		swipes:  swipes,
		prefs:   prefs,
		catalog: catalog,
		pool:    pool,
	}
}

// sourcedID is a candidate before resolution: a catalog id tagged with the
// section it came from. Sections rank partner_like > priority > base.
type sourcedID struct {
	id     string
	source model.QueueSource
}

// BuildQueue returns one page of the effective per-slot viewing queue.
//
// Ordering is a pure function of (room, slot, swipe state, pool snapshot):
// two identical requests before any new swipe return identical pages.
// Exclusions are applied before pagination so offsets index a stable
// sequence; only the requested window (plus a bounded look-ahead) is ever
// resolved against the catalog.
func (u *Usecase) BuildQueue(ctx context.Context, roomCode string, slot model.Slot, userID *uuid.UUID, limit, offset int) ([]model.QueueItem, model.QueueMeta, error) {
	if !slot.Valid() {
		return nil, model.QueueMeta{}, ErrBadSlot
	}
	if limit <= 0 || offset < 0 {
		return nil, model.QueueMeta{}, ErrBadWindow
	}

	room, err := u.rooms.ByCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return nil, model.QueueMeta{}, ErrRoomNotFound
		}
		return nil, model.QueueMeta{}, errors.Join(ErrInternal, err)
	}

	settings := u.resolveSettings(ctx, userID)

	excluded, err := u.buildExclusions(ctx, room, slot, userID, settings)
	if err != nil {
		return nil, model.QueueMeta{}, err
	}

	priority, err := u.buildPriority(ctx, room, slot, settings, excluded)
	if err != nil {
		return nil, model.QueueMeta{}, err
	}

	base, err := u.buildBase(ctx, room, slot, excluded, priority)
	if err != nil {
		return nil, model.QueueMeta{}, err
	}

	sequence := append(priority, base...)
	items := u.resolveWindow(ctx, sequence, limit, offset)

	meta := buildMeta(len(priority), len(base), limit, offset)
	return items, meta, nil
}

func (u *Usecase) resolveSettings(ctx context.Context, userID *uuid.UUID) model.DeckSettings {
	if userID == nil {
		return model.DefaultDeckSettings(uuid.Nil)
	}
	settings, err := u.prefs.DeckSettings(ctx, *userID)
	if err != nil {
		return model.DefaultDeckSettings(*userID)
	}
	return settings
}

// buildExclusions collects everything this slot must never see again:
// own swipes in this room and, per settings, own watched titles.
func (u *Usecase) buildExclusions(ctx context.Context, room model.Room, slot model.Slot, userID *uuid.UUID, settings model.DeckSettings) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})

	swiped, err := u.swipes.MovieIDs(ctx, room.ID, slot)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	for _, id := range swiped {
		excluded[id] = struct{}{}
	}

	if userID != nil && settings.ExcludeWatched {
		watched, err := u.prefs.WatchedMovieIDs(ctx, *userID)
		if err != nil {
			return nil, errors.Join(ErrInternal, err)
		}
		for _, id := range watched {
			excluded[id] = struct{}{}
		}
	}

	return excluded, nil
}

// buildPriority composes the two partner-driven sections: in-room likes
// strictly outrank durable want-to-watch entries. Both exist only when the
// partner slot is bound to a real user.
func (u *Usecase) buildPriority(ctx context.Context, room model.Room, slot model.Slot, settings model.DeckSettings, excluded map[string]struct{}) ([]sourcedID, error) {
	partnerUser := room.UserID(slot.Partner())
	if partnerUser == nil {
		return nil, nil
	}

	out := make([]sourcedID, 0)
	seen := make(map[string]struct{})

	liked, err := u.swipes.LikedMovieIDs(ctx, room.ID, slot.Partner())
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	for _, id := range liked {
		if _, skip := excluded[id]; skip {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, sourcedID{id: id, source: model.SourcePartnerLike})
	}

	entries, err := u.prefs.WatchList(ctx, *partnerUser, []model.WatchStatus{model.WatchStatusWant, model.WatchStatusWatching})
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	for _, entry := range entries {
		if !passesRating(entry, settings.MinRatingFilter) {
			continue
		}
		if _, skip := excluded[entry.MovieID]; skip {
			continue
		}
		if _, dup := seen[entry.MovieID]; dup {
			continue
		}
		seen[entry.MovieID] = struct{}{}
		out = append(out, sourcedID{id: entry.MovieID, source: model.SourcePriority})
	}

	return out, nil
}

func passesRating(entry model.WatchEntry, minRating *float64) bool {
	if minRating == nil {
		return true
	}
	return entry.Rating != nil && *entry.Rating >= *minRating
}

// buildBase walks the seeded permutation slot-directionally: A ascends from
// index 0, B descends from the end. Early coverage diverges while both
// slots still eventually traverse the whole pool.
func (u *Usecase) buildBase(ctx context.Context, room model.Room, slot model.Slot, excluded map[string]struct{}, priority []sourcedID) ([]sourcedID, error) {
	pool, err := u.pool.BuildPool(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	inPriority := make(map[string]struct{}, len(priority))
	for _, p := range priority {
		inPriority[p.id] = struct{}{}
	}

	deck := usecase_pool.Shuffle(pool, room.Seed)

	// The pool is unique by (kind, id), but swipes, exclusions and catalog
	// resolution all key on the bare id. A movie and a series sharing an id
	// therefore collapse to one deck entry: the first hit in walk order wins.
	seen := make(map[string]struct{}, len(deck))

	out := make([]sourcedID, 0, len(deck))
	for i := range deck {
		item := deck[i]
		if slot == model.SlotB {
			item = deck[len(deck)-1-i]
		}
		if _, skip := excluded[item.ID]; skip {
			continue
		}
		if _, dup := inPriority[item.ID]; dup {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, sourcedID{id: item.ID, source: model.SourceBase})
	}

	return out, nil
}

// resolveWindow resolves the requested window in one batched catalog call.
// Unresolvable ids are dropped silently; a catalog failure degrades to
// whatever subset resolved instead of failing the page.
func (u *Usecase) resolveWindow(ctx context.Context, sequence []sourcedID, limit, offset int) []model.QueueItem {
	if offset >= len(sequence) {
		return []model.QueueItem{}
	}

	fetchEnd := min(offset+limit+resolveLookahead, len(sequence))
	window := sequence[offset:fetchEnd]

	ids := make([]string, len(window))
	for i, s := range window {
		ids[i] = s.id
	}

	resolved, err := u.catalog.ResolveMany(ctx, ids)
	if err != nil && resolved == nil {
		return []model.QueueItem{}
	}

	pageEnd := min(offset+limit, len(sequence))
	items := make([]model.QueueItem, 0, pageEnd-offset)
	for _, s := range sequence[offset:pageEnd] {
		meta, ok := resolved[s.id]
		if !ok {
			continue
		}
		items = append(items, model.QueueItem{Movie: meta, Source: s.source})
	}
	return items
}

func buildMeta(priorityTotal, baseTotal, limit, offset int) model.QueueMeta {
	total := priorityTotal + baseTotal
	consumed := min(offset+limit, total)

	priorityRemaining := max(0, priorityTotal-consumed)
	totalRemaining := total - consumed

	return model.QueueMeta{
		PriorityQueueRemaining: priorityRemaining,
		BasePoolRemaining:      totalRemaining - priorityRemaining,
		TotalRemaining:         totalRemaining,
		HasMore:                totalRemaining > 0,
	}
}
