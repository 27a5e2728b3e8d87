package repository

import (
	"context"

	"cinemaplus/internal/domain/movie"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/repository/converter"

	"github.com/google/uuid"
)

//go:generate mockgen -source=movie.go -destination=../../../tests/mock/repository/movie.go -package=repositorymock

type MovieWriteQueries interface {
	ListMovies(ctx context.Context, db query.DBTX) ([]query.Movie, error)
	UpdateMovieStatus(ctx context.Context, db query.DBTX, arg query.UpdateMovieStatusParams) (int64, error)
}

type MovieRepository struct {
	queries MovieWriteQueries
}

func NewMovieRepository(queries MovieWriteQueries) *MovieRepository {
	return &MovieRepository{queries: queries}
}

func (r *MovieRepository) ListAll(ctx context.Context, db query.DBTX) ([]*movie.Movie, error) {
	rows, err := r.queries.ListMovies(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list movies", err)
	}

	result := make([]*movie.Movie, len(rows))
	for i, row := range rows {
		result[i] = converter.MovieToDomain(row)
	}
	return result, nil
}

func (r *MovieRepository) UpdateStatus(ctx context.Context, db query.DBTX, id uuid.UUID, status movie.Status) error {
	affected, err := r.queries.UpdateMovieStatus(ctx, db, query.UpdateMovieStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update movie status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("movie not found", nil, infra.KindNotFound)
	}
	return nil
}
