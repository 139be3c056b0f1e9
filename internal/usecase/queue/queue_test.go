package usecase_queue

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/humanbelnik/kinomatch/core/internal/usecase/queue/mocks"
	usecase_pool "github.com/humanbelnik/kinomatch/core/internal/usecase/pool"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseQueueUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	rooms   *mocks.RoomProvider
	swipes  *mocks.SwipeReader
	prefs   *mocks.PrefsReader
	catalog *mocks.CatalogResolver
	pool    *mocks.PoolProvider
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	rooms := mocks.NewRoomProvider(t)
	swipes := mocks.NewSwipeReader(t)
	prefs := mocks.NewPrefsReader(t)
	catalog := mocks.NewCatalogResolver(t)
	pool := mocks.NewPoolProvider(t)

	return &resources{
		usecase: New(rooms, swipes, prefs, catalog, pool),
		rooms:   rooms,
		swipes:  swipes,
		prefs:   prefs,
		catalog: catalog,
		pool:    pool,
		ctx:     context.Background(),
	}
}

func tenItemPool() []model.PoolItem {
	items := make([]model.PoolItem, 10)
	for i := range items {
		items[i] = model.PoolItem{ID: "m" + strconv.Itoa(i), Kind: model.KindMovie}
	}
	return items
}

func validRoom(seed int64) model.Room {
	return model.Room{
		ID:     uuid.New(),
		Code:   "123456",
		Pin:    "1111",
		Status: model.StatusActive,
		Seed:   seed,
	}
}

// resolveEverything answers any batch with minimal metadata so pages carry
// every surfaced id.
func resolveEverything(r *resources) {
	r.catalog.On("ResolveMany", r.ctx, mock.AnythingOfType("[]string")).
		Return(func(_ context.Context, ids []string) map[string]model.MovieMeta {
			out := make(map[string]model.MovieMeta, len(ids))
			for _, id := range ids {
				out[id] = model.MovieMeta{ID: id, Title: "t-" + id}
			}
			return out
		}, nil)
}

func noSwipes(r *resources, room model.Room) {
	r.swipes.On("MovieIDs", r.ctx, room.ID, mock.AnythingOfType("model.Slot")).Return(nil, nil)
}

func pageIDs(items []model.QueueItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Movie.ID)
	}
	return ids
}

func (s *UsecaseQueueUnitSuite) TestDeterministicPages(t provider.T) {
	t.Parallel()

	t.Run("Should return identical pages for identical requests", func(t provider.T) {
		r := initResources(t)
		room := validRoom(7)

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		first, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 4, 0)
		assert.NoError(t, err)
		second, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 4, 0)
		assert.NoError(t, err)

		assert.Equal(t, pageIDs(first), pageIDs(second))
	})
}

func (s *UsecaseQueueUnitSuite) TestBidirectionalTraversal(t provider.T) {
	t.Parallel()

	t.Run("Should serve permutation head to slot A and tail to slot B", func(t provider.T) {
		r := initResources(t)
		room := validRoom(42)
		pool := tenItemPool()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(pool, nil)
		noSwipes(r, room)
		resolveEverything(r)

		perm := usecase_pool.Shuffle(pool, room.Seed)

		itemsA, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 3, 0)
		assert.NoError(t, err)
		itemsB, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotB, nil, 3, 0)
		assert.NoError(t, err)

		assert.Equal(t, []string{perm[0].ID, perm[1].ID, perm[2].ID}, pageIDs(itemsA))
		assert.Equal(t, []string{perm[9].ID, perm[8].ID, perm[7].ID}, pageIDs(itemsB))
	})

	t.Run("Should keep early coverage of the two slots disjoint", func(t provider.T) {
		r := initResources(t)
		room := validRoom(99)

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		itemsA, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 5, 0)
		assert.NoError(t, err)
		itemsB, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotB, nil, 5, 0)
		assert.NoError(t, err)

		seen := make(map[string]bool)
		for _, id := range pageIDs(itemsA) {
			seen[id] = true
		}
		for _, id := range pageIDs(itemsB) {
			assert.False(t, seen[id], "slot B early page leaked into slot A coverage: %s", id)
		}
	})
}

func (s *UsecaseQueueUnitSuite) TestPriorityComposition(t provider.T) {
	t.Run("Should rank partner likes above watch-list above base", func(t provider.T) {
		r := initResources(t)
		room := validRoom(5)
		partnerID := uuid.New()
		room.BUserID = &partnerID

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		r.swipes.On("LikedMovieIDs", r.ctx, room.ID, model.SlotB).Return([]string{"m9"}, nil)
		r.prefs.On("WatchList", r.ctx, partnerID, mock.AnythingOfType("[]string")).
			Return([]model.WatchEntry{
				{UserID: partnerID, MovieID: "m4", Status: model.WatchStatusWant},
			}, nil)

		items, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 4, 0)
		assert.NoError(t, err)

		assert.Equal(t, "m9", items[0].Movie.ID)
		assert.Equal(t, model.SourcePartnerLike, items[0].Source)
		assert.Equal(t, "m4", items[1].Movie.ID)
		assert.Equal(t, model.SourcePriority, items[1].Source)
		assert.Equal(t, model.SourceBase, items[2].Source)
		assert.Equal(t, model.SourceBase, items[3].Source)
	})

	t.Run("Should apply the requester's minimum-rating threshold to watch-list items", func(t provider.T) {
		r := initResources(t)
		room := validRoom(5)
		partnerID := uuid.New()
		requesterID := uuid.New()
		room.AUserID = &requesterID
		room.BUserID = &partnerID

		minRating := 2.0
		lowRating := 1.0

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		r.prefs.On("DeckSettings", r.ctx, requesterID).
			Return(model.DeckSettings{UserID: requesterID, ExcludeWatched: true, MinRatingFilter: &minRating}, nil)
		r.prefs.On("WatchedMovieIDs", r.ctx, requesterID).Return(nil, nil)
		r.swipes.On("LikedMovieIDs", r.ctx, room.ID, model.SlotB).Return(nil, nil)
		r.prefs.On("WatchList", r.ctx, partnerID, mock.AnythingOfType("[]string")).
			Return([]model.WatchEntry{
				{UserID: partnerID, MovieID: "m3", Status: model.WatchStatusWant, Rating: &minRating},
				{UserID: partnerID, MovieID: "m9", Status: model.WatchStatusWant, Rating: &lowRating},
			}, nil)

		items, meta, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, &requesterID, 1, 0)
		assert.NoError(t, err)

		assert.Equal(t, "m3", items[0].Movie.ID)
		assert.Equal(t, model.SourcePriority, items[0].Source)
		// m9 must not re-enter via the priority section.
		assert.Equal(t, 0, meta.PriorityQueueRemaining)
	})
}

func (s *UsecaseQueueUnitSuite) TestExclusions(t provider.T) {
	t.Run("Should exclude own swipes and watched titles from the deck", func(t provider.T) {
		r := initResources(t)
		room := validRoom(11)
		requesterID := uuid.New()
		room.AUserID = &requesterID

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		resolveEverything(r)

		r.prefs.On("DeckSettings", r.ctx, requesterID).
			Return(model.DefaultDeckSettings(requesterID), nil)
		r.swipes.On("MovieIDs", r.ctx, room.ID, model.SlotA).Return([]string{"m0", "m1"}, nil)
		r.prefs.On("WatchedMovieIDs", r.ctx, requesterID).Return([]string{"m2"}, nil)

		items, meta, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, &requesterID, 10, 0)
		assert.NoError(t, err)

		assert.Len(t, items, 7)
		for _, id := range pageIDs(items) {
			assert.NotContains(t, []string{"m0", "m1", "m2"}, id)
		}
		assert.False(t, meta.HasMore)
	})
}

func (s *UsecaseQueueUnitSuite) TestCrossKindCollision(t provider.T) {
	t.Parallel()

	t.Run("Should surface an id shared by a movie and a series once per slot", func(t provider.T) {
		r := initResources(t)
		room := validRoom(5)

		pool := []model.PoolItem{
			{ID: "x1", Kind: model.KindMovie},
			{ID: "x1", Kind: model.KindSeries},
			{ID: "x2", Kind: model.KindMovie},
			{ID: "x3", Kind: model.KindSeries},
		}

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(pool, nil)
		noSwipes(r, room)
		resolveEverything(r)

		for _, slot := range []model.Slot{model.SlotA, model.SlotB} {
			items, meta, err := r.usecase.BuildQueue(r.ctx, room.Code, slot, nil, 10, 0)
			assert.NoError(t, err)

			counts := make(map[string]int)
			for _, id := range pageIDs(items) {
				counts[id]++
			}
			assert.Equal(t, 1, counts["x1"])
			assert.Len(t, items, 3)
			assert.Equal(t, 3, meta.TotalRemaining)
		}
	})
}

func (s *UsecaseQueueUnitSuite) TestPagination(t provider.T) {
	t.Run("Should cover the same set via pages as via one large window", func(t provider.T) {
		r := initResources(t)
		room := validRoom(17)

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		all, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 10, 0)
		assert.NoError(t, err)

		var paged []string
		for offset := 0; offset < 10; offset += 3 {
			page, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 3, offset)
			assert.NoError(t, err)
			paged = append(paged, pageIDs(page)...)
		}

		assert.Equal(t, pageIDs(all), paged)
	})

	t.Run("Should compute meta from totals rather than the page", func(t provider.T) {
		r := initResources(t)
		room := validRoom(17)

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(tenItemPool(), nil)
		noSwipes(r, room)
		resolveEverything(r)

		_, meta, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 3, 0)
		assert.NoError(t, err)

		assert.Equal(t, 7, meta.TotalRemaining)
		assert.Equal(t, 7, meta.BasePoolRemaining)
		assert.Equal(t, 0, meta.PriorityQueueRemaining)
		assert.True(t, meta.HasMore)
	})
}

func (s *UsecaseQueueUnitSuite) TestDegradation(t provider.T) {
	t.Run("Should drop unresolved ids silently", func(t provider.T) {
		r := initResources(t)
		room := validRoom(23)
		pool := tenItemPool()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.pool.On("BuildPool", r.ctx).Return(pool, nil)
		noSwipes(r, room)

		perm := usecase_pool.Shuffle(pool, room.Seed)
		missing := perm[1].ID

		r.catalog.On("ResolveMany", r.ctx, mock.AnythingOfType("[]string")).
			Return(func(_ context.Context, ids []string) map[string]model.MovieMeta {
				out := make(map[string]model.MovieMeta, len(ids))
				for _, id := range ids {
					if id == missing {
						continue
					}
					out[id] = model.MovieMeta{ID: id}
				}
				return out
			}, nil)

		items, _, err := r.usecase.BuildQueue(r.ctx, room.Code, model.SlotA, nil, 3, 0)
		assert.NoError(t, err)

		assert.Equal(t, []string{perm[0].ID, perm[2].ID}, pageIDs(items))
	})

	t.Run("Should report NotFound for unknown rooms", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("ByCode", r.ctx, "000000").
			Return(model.Room{}, usecase_room.ErrResourceNotFound)

		_, _, err := r.usecase.BuildQueue(r.ctx, "000000", model.SlotA, nil, 3, 0)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseQueueUnitSuite))
}
