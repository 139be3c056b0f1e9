package usecase_swipe

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrBadSlot      = errors.New("bad slot")
	ErrBadAction    = errors.New("bad action")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=SwipeRepository --output=./mocks --outpkg=mocks
type SwipeRepository interface {
	// Insert records the swipe unless (room, movie, slot) already exists.
	// Reports whether a new row was written.
	Insert(ctx context.Context, swipe model.Swipe) (bool, error)
	CountBySlot(ctx context.Context, roomID uuid.UUID, slot model.Slot) (int, error)
	HasLike(ctx context.Context, roomID uuid.UUID, movieID string, slot model.Slot) (bool, error)
}

//go:generate mockery --name=RoomRepository --output=./mocks --outpkg=mocks
type RoomRepository interface {
	ByCode(ctx context.Context, code string) (model.Room, error)
	// Match is a conditional update: it succeeds at most once per room,
	// regardless of which instance races it.
	Match(ctx context.Context, code string, movieID string, expiresAt time.Time) (bool, error)
}

//go:generate mockery --name=WatchListReader --output=./mocks --outpkg=mocks
type WatchListReader interface {
	HasEntry(ctx context.Context, userID uuid.UUID, movieID string, statuses []model.WatchStatus) (bool, error)
}

//go:generate mockery --name=CatalogResolver --output=./mocks --outpkg=mocks
type CatalogResolver interface {
	ResolveMany(ctx context.Context, ids []string) (map[string]model.MovieMeta, error)
}

// Outcome tells the coordinator what to broadcast after one swipe.
type Outcome struct {
	// Stale is set when the room is already matched or expired; the swipe
	// was ignored entirely.
	Stale bool
	// Recorded is false for idempotent re-swipes.
	Recorded    bool
	TotalSwiped int

	// PartnerLiked carries resolved metadata for a recorded non-matching
	// like, pushed to the partner for client-side splicing.
	PartnerLiked *model.MovieMeta

	Matched        bool
	MatchedMovieID string
	ExpiresAt      time.Time
}

type Usecase struct {
	swipes    SwipeRepository
	rooms     RoomRepository
	watchList WatchListReader
	catalog   CatalogResolver

	matchTTL time.Duration
	now      func() time.Time
}

type Option func(*Usecase)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	swipes SwipeRepository,
	rooms RoomRepository,
	watchList WatchListReader,
	catalog CatalogResolver,
	matchTTL time.Duration,
	opts ...Option,
) *Usecase {
	if matchTTL <= 0 {
		matchTTL = 30 * time.Minute /* default */
	}
	u := &Usecase{
		swipes:    swipes,
		rooms:     rooms,
		watchList: watchList,
		catalog:   catalog,
		matchTTL:  matchTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Record persists one swipe and runs match detection for likes.
//
// Mutual interest is either the partner's recorded like on the same item,
// or, for a partner bound to a real user, a pre-existing want-to-watch or
// watching entry on their durable list. The room transition to matched is
// a single conditional update, so concurrent "first like" checks on both
// slots still produce at most one match.
func (u *Usecase) Record(ctx context.Context, roomCode string, movieID string, action model.SwipeAction, slot model.Slot) (Outcome, error) {
	if !slot.Valid() {
		return Outcome{}, ErrBadSlot
	}
	if action != model.ActionLike && action != model.ActionSkip {
		return Outcome{}, ErrBadAction
	}

	room, err := u.rooms.ByCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return Outcome{}, ErrRoomNotFound
		}
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	// Stale room: no row, no broadcast.
	if room.Terminal() {
		return Outcome{Stale: true}, nil
	}

	recorded, err := u.swipes.Insert(ctx, model.Swipe{
		RoomID:    room.ID,
		MovieID:   movieID,
		Slot:      slot,
		Action:    action,
		CreatedAt: u.now(),
	})
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	total, err := u.swipes.CountBySlot(ctx, room.ID, slot)
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	outcome := Outcome{Recorded: recorded, TotalSwiped: total}
	if !recorded || action != model.ActionLike {
		return outcome, nil
	}

	mutual, err := u.partnerInterested(ctx, room, movieID, slot.Partner())
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	if mutual {
		expiresAt := u.now().Add(u.matchTTL)
		won, err := u.rooms.Match(ctx, roomCode, movieID, expiresAt)
		if err != nil {
			return Outcome{}, errors.Join(ErrInternal, err)
		}
		// Losing the conditional update means another event already
		// matched the room; that event owns the broadcast.
		if won {
			outcome.Matched = true
			outcome.MatchedMovieID = movieID
			outcome.ExpiresAt = expiresAt
		}
		return outcome, nil
	}

	outcome.PartnerLiked = u.resolveForPartner(ctx, movieID)
	return outcome, nil
}

func (u *Usecase) partnerInterested(ctx context.Context, room model.Room, movieID string, partner model.Slot) (bool, error) {
	liked, err := u.swipes.HasLike(ctx, room.ID, movieID, partner)
	if err != nil {
		return false, err
	}
	if liked {
		return true, nil
	}

	partnerUser := room.UserID(partner)
	if partnerUser == nil {
		return false, nil
	}

	// A durable want-to-watch/watching entry counts as a pre-existing like.
	return u.watchList.HasEntry(ctx, *partnerUser, movieID, []model.WatchStatus{
		model.WatchStatusWant,
		model.WatchStatusWatching,
	})
}

// resolveForPartner fetches display metadata for the partner_liked push.
// Unresolvable items are dropped, never raised.
func (u *Usecase) resolveForPartner(ctx context.Context, movieID string) *model.MovieMeta {
	resolved, err := u.catalog.ResolveMany(ctx, []string{movieID})
	if err != nil {
		return nil
	}
	meta, ok := resolved[movieID]
	if !ok {
		return nil
	}
	return &meta
}
