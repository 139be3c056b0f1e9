package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/core/internal/delivery/http/common"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_room.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.create)
		rooms.GET("/:room_id/status", c.status)
		rooms.POST("/:room_id/access", c.access)
	}
}

type CreateResponseDTO struct {
	RoomCode string `json:"room_code"`
	Pin      string `json:"pin"`
}

// create books a new waiting room and hands out its code and access pin.
func (c *Controller) create(ctx *gin.Context) {
	roomCode, pin, err := c.usecase.Create(ctx)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrRoomsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		RoomCode: roomCode,
		Pin:      pin,
	})
}

type StatusResponseDTO struct {
	Status string `json:"status"`
}

func (c *Controller) status(ctx *gin.Context) {
	code := ctx.Param("room_id")

	status, err := c.usecase.Status(ctx, code)
	if err != nil {
		c.logger.Error("failed to get status", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "invalid/expired session",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status: status,
	})
}

type AccessRequestDTO struct {
	Pin string `json:"pin"`
}

// access validates the room's pin before the client opens the real-time
// channel.
func (c *Controller) access(ctx *gin.Context) {
	code := ctx.Param("room_id")

	var req AccessRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "bad request",
		})
		return
	}

	if err := c.usecase.ValidateAccess(ctx, code, req.Pin); err != nil {
		switch {
		case errors.Is(err, usecase_room.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "invalid/expired session",
			})
		case errors.Is(err, usecase_room.ErrWrongPin):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "wrong pin",
			})
		default:
			c.logger.Error("failed to validate access", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
