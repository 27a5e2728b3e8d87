package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Movie struct {
	ID          uuid.UUID
	Title       string
	ReleaseDate pgtype.Date
	DurationMin int32
	Status      string
}

const listMovies = `SELECT id, title, release_date, duration_min, status FROM movies ORDER BY id`

func (q *Queries) ListMovies(ctx context.Context, db DBTX) ([]Movie, error) {
	rows, err := db.Query(ctx, listMovies)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Movie, error) {
		var m Movie
		err := row.Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.DurationMin, &m.Status)
		return m, err
	})
}

const updateMovieStatus = `UPDATE movies SET status = $2, updated_at = now() WHERE id = $1`

type UpdateMovieStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateMovieStatus(ctx context.Context, db DBTX, arg UpdateMovieStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateMovieStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
