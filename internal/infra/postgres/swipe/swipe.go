package infra_postgres_swipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type swipeDTO struct {
	RoomID  uuid.UUID `db:"room_id"`
	MovieID string    `db:"movie_id"`
	Slot    string    `db:"slot"`
	Action  string    `db:"action"`
}

// Insert relies on the (room_id, movie_id, slot) uniqueness constraint:
// a re-swipe hits ON CONFLICT DO NOTHING and reports recorded = false.
func (d *Driver) Insert(ctx context.Context, swipe model.Swipe) (bool, error) {
	dto := swipeDTO{
		RoomID:  swipe.RoomID,
		MovieID: swipe.MovieID,
		Slot:    string(swipe.Slot),
		Action:  swipe.Action,
	}

	query := `
		INSERT INTO swipes (room_id, movie_id, slot, action)
		VALUES (:room_id, :movie_id, :slot, :action)
		ON CONFLICT (room_id, movie_id, slot) DO NOTHING
	`

	result, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) CountBySlot(ctx context.Context, roomID uuid.UUID, slot model.Slot) (int, error) {
	var count int

	query := `
		SELECT COUNT(*)
		FROM swipes
		WHERE room_id = $1 AND slot = $2
	`

	err := d.db.GetContext(ctx, &count, query, roomID, string(slot))
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Driver) HasLike(ctx context.Context, roomID uuid.UUID, movieID string, slot model.Slot) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM swipes
			WHERE room_id = $1 AND movie_id = $2 AND slot = $3 AND action = $4
		)
	`

	err := d.db.GetContext(ctx, &exists, query, roomID, movieID, string(slot), model.ActionLike)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) MovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]string, error) {
	var ids []string

	query := `
		SELECT movie_id
		FROM swipes
		WHERE room_id = $1 AND slot = $2
	`

	err := d.db.SelectContext(ctx, &ids, query, roomID, string(slot))
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (d *Driver) LikedMovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]string, error) {
	var ids []string

	query := `
		SELECT movie_id
		FROM swipes
		WHERE room_id = $1 AND slot = $2 AND action = $3
		ORDER BY created_at, movie_id
	`

	err := d.db.SelectContext(ctx, &ids, query, roomID, string(slot), model.ActionLike)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
