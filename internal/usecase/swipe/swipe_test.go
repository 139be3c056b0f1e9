package usecase_swipe

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/humanbelnik/kinomatch/core/internal/usecase/swipe/mocks"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	swipes    *mocks.SwipeRepository
	rooms     *mocks.RoomRepository
	watchList *mocks.WatchListReader
	catalog   *mocks.CatalogResolver
	ctx       context.Context
	now       time.Time
}

func initResources(t provider.T) *resources {
	swipes := mocks.NewSwipeRepository(t)
	rooms := mocks.NewRoomRepository(t)
	watchList := mocks.NewWatchListReader(t)
	catalog := mocks.NewCatalogResolver(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &resources{
		usecase: New(swipes, rooms, watchList, catalog, 30*time.Minute,
			WithClock(func() time.Time { return now })),
		swipes:    swipes,
		rooms:     rooms,
		watchList: watchList,
		catalog:   catalog,
		ctx:       context.Background(),
		now:       now,
	}
}

func activeRoom() model.Room {
	return model.Room{
		ID:     uuid.New(),
		Code:   "654321",
		Pin:    "2222",
		Status: model.StatusActive,
		Seed:   13,
	}
}

func (s *UsecaseSwipeUnitSuite) TestIdempotency(t provider.T) {
	t.Run("Should not re-run match detection for a duplicate swipe", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(false, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(4, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m1", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.False(t, outcome.Recorded)
		assert.False(t, outcome.Matched)
		assert.Nil(t, outcome.PartnerLiked)
		assert.Equal(t, 4, outcome.TotalSwiped)
		r.swipes.AssertNotCalled(t, "HasLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *UsecaseSwipeUnitSuite) TestStaleRooms(t provider.T) {
	t.Run("Should ignore swipes on matched and expired rooms", func(t provider.T) {
		for _, status := range []model.RoomStatus{model.StatusMatched, model.StatusExpired} {
			r := initResources(t)
			room := activeRoom()
			room.Status = status

			r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)

			outcome, err := r.usecase.Record(r.ctx, room.Code, "m1", model.ActionLike, model.SlotA)

			assert.NoError(t, err)
			assert.True(t, outcome.Stale)
			r.swipes.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		}
	})
}

func (s *UsecaseSwipeUnitSuite) TestMatchDetection(t provider.T) {
	t.Parallel()

	t.Run("Should match when the partner already liked the same title", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(1, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m1", model.SlotB).Return(true, nil)
		r.rooms.On("Match", r.ctx, room.Code, "m1", r.now.Add(30*time.Minute)).Return(true, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m1", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.True(t, outcome.Matched)
		assert.Equal(t, "m1", outcome.MatchedMovieID)
		assert.Equal(t, r.now.Add(30*time.Minute), outcome.ExpiresAt)
	})

	t.Run("Should match on the partner's durable want-to-watch entry", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()
		partnerID := uuid.New()
		room.BUserID = &partnerID

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(2, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m7", model.SlotB).Return(false, nil)
		r.watchList.On("HasEntry", r.ctx, partnerID, "m7",
			[]model.WatchStatus{model.WatchStatusWant, model.WatchStatusWatching}).
			Return(true, nil)
		r.rooms.On("Match", r.ctx, room.Code, "m7", r.now.Add(30*time.Minute)).Return(true, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m7", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.True(t, outcome.Matched)
		assert.Equal(t, "m7", outcome.MatchedMovieID)
	})

	t.Run("Should stay silent after losing the match race", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(1, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m1", model.SlotB).Return(true, nil)
		r.rooms.On("Match", r.ctx, room.Code, "m1", mock.AnythingOfType("time.Time")).Return(false, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m1", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.False(t, outcome.Matched)
		assert.True(t, outcome.Recorded)
	})

	t.Run("Should not consult the watch list for an unbound partner", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(1, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m1", model.SlotB).Return(false, nil)
		r.catalog.On("ResolveMany", r.ctx, []string{"m1"}).
			Return(map[string]model.MovieMeta{"m1": {ID: "m1", Title: "t"}}, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m1", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.False(t, outcome.Matched)
		r.watchList.AssertNotCalled(t, "HasEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *UsecaseSwipeUnitSuite) TestPartnerNotification(t provider.T) {
	t.Run("Should resolve metadata for a non-matching like", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotB).Return(3, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m2", model.SlotA).Return(false, nil)
		r.catalog.On("ResolveMany", r.ctx, []string{"m2"}).
			Return(map[string]model.MovieMeta{"m2": {ID: "m2", Title: "Solaris"}}, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m2", model.ActionLike, model.SlotB)

		assert.NoError(t, err)
		assert.NotNil(t, outcome.PartnerLiked)
		assert.Equal(t, "Solaris", outcome.PartnerLiked.Title)
	})

	t.Run("Should drop the push when the catalog cannot resolve", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(1, nil)
		r.swipes.On("HasLike", r.ctx, room.ID, "m2", model.SlotB).Return(false, nil)
		r.catalog.On("ResolveMany", r.ctx, []string{"m2"}).
			Return(map[string]model.MovieMeta{}, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m2", model.ActionLike, model.SlotA)

		assert.NoError(t, err)
		assert.True(t, outcome.Recorded)
		assert.Nil(t, outcome.PartnerLiked)
	})

	t.Run("Should not notify the partner about skips", func(t provider.T) {
		r := initResources(t)
		room := activeRoom()

		r.rooms.On("ByCode", r.ctx, room.Code).Return(room, nil)
		r.swipes.On("Insert", r.ctx, mock.AnythingOfType("model.Swipe")).Return(true, nil)
		r.swipes.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(5, nil)

		outcome, err := r.usecase.Record(r.ctx, room.Code, "m3", model.ActionSkip, model.SlotA)

		assert.NoError(t, err)
		assert.True(t, outcome.Recorded)
		assert.Nil(t, outcome.PartnerLiked)
		r.swipes.AssertNotCalled(t, "HasLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *UsecaseSwipeUnitSuite) TestValidation(t provider.T) {
	t.Run("Should reject unknown rooms, slots and actions", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.Record(r.ctx, "111111", "m1", model.ActionLike, model.Slot("c"))
		assert.ErrorIs(t, err, ErrBadSlot)

		_, err = r.usecase.Record(r.ctx, "111111", "m1", model.SwipeAction("superlike"), model.SlotA)
		assert.ErrorIs(t, err, ErrBadAction)

		r.rooms.On("ByCode", r.ctx, "111111").
			Return(model.Room{}, usecase_room.ErrResourceNotFound)
		_, err = r.usecase.Record(r.ctx, "111111", "m1", model.ActionLike, model.SlotA)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
