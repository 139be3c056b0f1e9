package http_queue

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_queue "github.com/humanbelnik/kinomatch/core/internal/usecase/queue"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Controller struct {
	usecase *usecase_queue.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_queue.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_id/queue", c.queue)
}

type MovieDTO struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	PosterLink string   `json:"poster_link"`
	Genres     []string `json:"genres"`
	Year       int      `json:"year"`
	Rating     float64  `json:"rating"`
	Overview   string   `json:"overview"`
}

type QueueItemDTO struct {
	Movie  MovieDTO `json:"movie"`
	Source string   `json:"source"`
}

type QueueMetaDTO struct {
	PriorityQueueRemaining int  `json:"priorityQueueRemaining"`
	BasePoolRemaining      int  `json:"basePoolRemaining"`
	TotalRemaining         int  `json:"totalRemaining"`
	HasMore                bool `json:"hasMore"`
}

type QueueResponseDTO struct {
	Items []QueueItemDTO `json:"items"`
	Meta  QueueMetaDTO   `json:"meta"`
}

func (c *Controller) queue(ctx *gin.Context) {
	code := ctx.Param("room_id")
	slot := model.Slot(ctx.Query("slot"))

	limit := intQuery(ctx, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := intQuery(ctx, "offset", 0)

	var userID *uuid.UUID
	if raw := ctx.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "bad user id",
			})
			return
		}
		userID = &parsed
	}

	items, meta, err := c.usecase.BuildQueue(ctx, code, slot, userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, usecase_queue.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "invalid/expired session",
			})
		case errors.Is(err, usecase_queue.ErrBadSlot), errors.Is(err, usecase_queue.ErrBadWindow):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "bad request",
			})
		default:
			c.logger.Error("failed to build queue",
				slog.String("error", err.Error()),
				slog.String("room", code))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	resp := QueueResponseDTO{
		Items: make([]QueueItemDTO, 0, len(items)),
		Meta: QueueMetaDTO{
			PriorityQueueRemaining: meta.PriorityQueueRemaining,
			BasePoolRemaining:      meta.BasePoolRemaining,
			TotalRemaining:         meta.TotalRemaining,
			HasMore:                meta.HasMore,
		},
	}
	for _, item := range items {
		resp.Items = append(resp.Items, QueueItemDTO{
			Movie: MovieDTO{
				ID:         item.Movie.ID,
				Title:      item.Movie.Title,
				PosterLink: item.Movie.PosterLink,
				Genres:     item.Movie.Genres,
				Year:       item.Movie.Year,
				Rating:     item.Movie.Rating,
				Overview:   item.Movie.Overview,
			},
			Source: item.Source,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}

func intQuery(ctx *gin.Context, key string, defaultValue int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}
