package infra_postgres_room

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID             uuid.UUID  `db:"id"`
	Code           string     `db:"code"`
	Pin            string     `db:"pin"`
	Status         string     `db:"status"`
	Seed           int64      `db:"seed"`
	AConnected     bool       `db:"a_connected"`
	BConnected     bool       `db:"b_connected"`
	AUserID        *uuid.UUID `db:"a_user_id"`
	BUserID        *uuid.UUID `db:"b_user_id"`
	MatchedMovieID *string    `db:"matched_movie_id"`
	CreatedAt      time.Time  `db:"created_at"`
	ExpiresAt      *time.Time `db:"expires_at"`
}

func (dto roomDTO) toModel() model.Room {
	return model.Room{
		ID:             dto.ID,
		Code:           dto.Code,
		Pin:            dto.Pin,
		Status:         dto.Status,
		Seed:           dto.Seed,
		AConnected:     dto.AConnected,
		BConnected:     dto.BConnected,
		AUserID:        dto.AUserID,
		BUserID:        dto.BUserID,
		MatchedMovieID: dto.MatchedMovieID,
		CreatedAt:      dto.CreatedAt,
		ExpiresAt:      dto.ExpiresAt,
	}
}

func (d *Driver) Create(ctx context.Context, room model.Room) error {
	dto := roomDTO{
		ID:     room.ID,
		Code:   room.Code,
		Pin:    room.Pin,
		Status: room.Status,
		Seed:   room.Seed,
	}

	query := `
		INSERT INTO rooms (id, code, pin, status, seed)
		VALUES (:id, :code, :pin, :status, :seed)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_room.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var dto roomDTO

	query := `
		SELECT id, code, pin, status, seed,
		       a_connected, b_connected, a_user_id, b_user_id,
		       matched_movie_id, created_at, expires_at
		FROM rooms
		WHERE code = $1
	`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) BindUser(ctx context.Context, code string, slot model.Slot, userID uuid.UUID) error {
	column := "a_user_id"
	if slot == model.SlotB {
		column = "b_user_id"
	}

	query := `
		UPDATE rooms
		SET ` + column + ` = $1
		WHERE code = $2
	`

	result, err := d.db.ExecContext(ctx, query, userID, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) SetConnected(ctx context.Context, code string, slot model.Slot, connected bool) error {
	column := "a_connected"
	if slot == model.SlotB {
		column = "b_connected"
	}

	query := `
		UPDATE rooms
		SET ` + column + ` = $1
		WHERE code = $2
	`

	result, err := d.db.ExecContext(ctx, query, connected, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

// Activate is conditional so the waiting -> active edge fires once and the
// status never regresses, no matter how many connects race.
func (d *Driver) Activate(ctx context.Context, code string) (bool, error) {
	query := `
		UPDATE rooms
		SET status = $1
		WHERE code = $2 AND status = $3 AND a_connected AND b_connected
	`

	result, err := d.db.ExecContext(ctx, query, model.StatusActive, code, model.StatusWaiting)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Match sets status, matched movie and expiry in one conditional update.
// At most one caller per room ever gets rowsAffected > 0.
func (d *Driver) Match(ctx context.Context, code string, movieID string, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE rooms
		SET status = $1, matched_movie_id = $2, expires_at = $3
		WHERE code = $4 AND status IN ($5, $6)
	`

	result, err := d.db.ExecContext(ctx, query,
		model.StatusMatched, movieID, expiresAt,
		code, model.StatusWaiting, model.StatusActive,
	)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) Expire(ctx context.Context, code string) (bool, error) {
	query := `
		UPDATE rooms
		SET status = $1
		WHERE code = $2 AND status != $1
	`

	result, err := d.db.ExecContext(ctx, query, model.StatusExpired, code)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if rowsAffected == 0 {
		// Either unknown or already expired; tell those apart.
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM rooms WHERE code = $1)`
		if err := d.db.GetContext(ctx, &exists, checkQuery, code); err != nil {
			return false, err
		}
		if !exists {
			return false, usecase_room.ErrResourceNotFound
		}
		return false, nil
	}

	return true, nil
}

// CleanupOrphanRooms expires rooms that never went active within the
// waiting deadline, plus matched rooms whose expiry timestamp has passed
// without the deferred timer firing (instance restarts).
func (d *Driver) CleanupOrphanRooms(ctx context.Context, waitingDeadline, matchedGrace time.Duration) error {
	query := `
		UPDATE rooms
		SET status = $1
		WHERE (status = $2 AND created_at < NOW() - $3::interval)
		   OR (status = $4 AND expires_at < NOW() - $5::interval)
	`

	_, err := d.db.ExecContext(ctx, query,
		model.StatusExpired,
		model.StatusWaiting, waitingDeadline.String(),
		model.StatusMatched, matchedGrace.String(),
	)
	return err
}
