package infra_postgres_prefs

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type deckSettingsDTO struct {
	UserID          uuid.UUID `db:"user_id"`
	ExcludeWatched  bool      `db:"exclude_watched"`
	MinRatingFilter *float64  `db:"min_rating_filter"`
}

type watchEntryDTO struct {
	UserID  uuid.UUID `db:"user_id"`
	MovieID string    `db:"movie_id"`
	Status  string    `db:"status"`
	Rating  *float64  `db:"rating"`
}

// DeckSettings falls back to defaults for users who never saved any;
// settings rows are created lazily on first upsert.
func (d *Driver) DeckSettings(ctx context.Context, userID uuid.UUID) (model.DeckSettings, error) {
	var dto deckSettingsDTO

	query := `
		SELECT user_id, exclude_watched, min_rating_filter
		FROM deck_settings
		WHERE user_id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.DefaultDeckSettings(userID), nil
		}
		return model.DeckSettings{}, err
	}

	return model.DeckSettings{
		UserID:          dto.UserID,
		ExcludeWatched:  dto.ExcludeWatched,
		MinRatingFilter: dto.MinRatingFilter,
	}, nil
}

func (d *Driver) UpsertDeckSettings(ctx context.Context, settings model.DeckSettings) error {
	dto := deckSettingsDTO{
		UserID:          settings.UserID,
		ExcludeWatched:  settings.ExcludeWatched,
		MinRatingFilter: settings.MinRatingFilter,
	}

	query := `
		INSERT INTO deck_settings (user_id, exclude_watched, min_rating_filter)
		VALUES (:user_id, :exclude_watched, :min_rating_filter)
		ON CONFLICT (user_id)
		DO UPDATE SET exclude_watched = EXCLUDED.exclude_watched,
		              min_rating_filter = EXCLUDED.min_rating_filter
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) WatchList(ctx context.Context, userID uuid.UUID, statuses []model.WatchStatus) ([]model.WatchEntry, error) {
	var dtos []watchEntryDTO

	query := `
		SELECT user_id, movie_id, status, rating
		FROM watch_list
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY movie_id
	`

	err := d.db.SelectContext(ctx, &dtos, query, userID, pq.Array(statuses))
	if err != nil {
		return nil, err
	}

	entries := make([]model.WatchEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, model.WatchEntry{
			UserID:  dto.UserID,
			MovieID: dto.MovieID,
			Status:  dto.Status,
			Rating:  dto.Rating,
		})
	}

	return entries, nil
}

func (d *Driver) UpsertWatchEntry(ctx context.Context, entry model.WatchEntry) error {
	dto := watchEntryDTO{
		UserID:  entry.UserID,
		MovieID: entry.MovieID,
		Status:  entry.Status,
		Rating:  entry.Rating,
	}

	query := `
		INSERT INTO watch_list (user_id, movie_id, status, rating)
		VALUES (:user_id, :movie_id, :status, :rating)
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET status = EXCLUDED.status, rating = EXCLUDED.rating
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) WatchedMovieIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var ids []string

	query := `
		SELECT movie_id
		FROM watch_list
		WHERE user_id = $1 AND status = $2
	`

	err := d.db.SelectContext(ctx, &ids, query, userID, model.WatchStatusWatched)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (d *Driver) HasWantToWatch(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM watch_list
			WHERE user_id = $1 AND status IN ($2, $3)
		)
	`

	err := d.db.GetContext(ctx, &exists, query, userID, model.WatchStatusWant, model.WatchStatusWatching)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) HasEntry(ctx context.Context, userID uuid.UUID, movieID string, statuses []model.WatchStatus) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM watch_list
			WHERE user_id = $1 AND movie_id = $2 AND status = ANY($3)
		)
	`

	err := d.db.GetContext(ctx, &exists, query, userID, movieID, pq.Array(statuses))
	if err != nil {
		return false, err
	}

	return exists, nil
}
