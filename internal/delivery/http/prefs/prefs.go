package http_prefs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

type PrefsRepository interface {
	DeckSettings(ctx context.Context, userID uuid.UUID) (model.DeckSettings, error)
	UpsertDeckSettings(ctx context.Context, settings model.DeckSettings) error
	UpsertWatchEntry(ctx context.Context, entry model.WatchEntry) error
}

type Controller struct {
	prefs  PrefsRepository
	logger *slog.Logger
}

func New(prefs PrefsRepository) *Controller {
	return &Controller{
		prefs:  prefs,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users/:user_id")
	{
		users.GET("/deck-settings", c.deckSettings)
		users.PUT("/deck-settings", c.upsertDeckSettings)
		users.PUT("/watch-list/:movie_id", c.upsertWatchEntry)
	}
}

type DeckSettingsDTO struct {
	ExcludeWatched  bool     `json:"exclude_watched"`
	MinRatingFilter *float64 `json:"min_rating_filter,omitempty"`
}

func (c *Controller) deckSettings(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	settings, err := c.prefs.DeckSettings(ctx, userID)
	if err != nil {
		c.logger.Error("failed to load deck settings", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, DeckSettingsDTO{
		ExcludeWatched:  settings.ExcludeWatched,
		MinRatingFilter: settings.MinRatingFilter,
	})
}

func (c *Controller) upsertDeckSettings(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req DeckSettingsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "bad request",
		})
		return
	}

	err := c.prefs.UpsertDeckSettings(ctx, model.DeckSettings{
		UserID:          userID,
		ExcludeWatched:  req.ExcludeWatched,
		MinRatingFilter: req.MinRatingFilter,
	})
	if err != nil {
		c.logger.Error("failed to upsert deck settings", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

type WatchEntryDTO struct {
	Status string   `json:"status" binding:"oneof=want_to_watch watching watched"`
	Rating *float64 `json:"rating,omitempty"`
}

func (c *Controller) upsertWatchEntry(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req WatchEntryDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "bad request",
		})
		return
	}

	err := c.prefs.UpsertWatchEntry(ctx, model.WatchEntry{
		UserID:  userID,
		MovieID: ctx.Param("movie_id"),
		Status:  req.Status,
		Rating:  req.Rating,
	})
	if err != nil {
		c.logger.Error("failed to upsert watch entry", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "bad user id",
		})
		return uuid.Nil, false
	}
	return userID, true
}
