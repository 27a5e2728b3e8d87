package commands

import (
	"context"
	"log/slog"

	"cinemaplus/internal/domain/movie"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"
)

//go:generate mockgen -source=movie_status.go -destination=../../../tests/mock/commands/movie_status.go -package=commandsmock

type MovieStatusCommands interface {
	// UpdateMovieStatuses persists only the movies whose status changed.
	UpdateMovieStatuses(ctx context.Context) (int, error)
	// ForceUpdateMovieStatuses rewrites every movie's status.
	ForceUpdateMovieStatuses(ctx context.Context) (int, error)
}

type movieStatusUseCaseImpl struct {
	uow    shared.UnitOfWork
	movies shared.MovieRepository
	clock  clock.Clock
	policy shared.Policy
	logger *slog.Logger
}

func NewMovieStatusUseCase(
	uow shared.UnitOfWork,
	movies shared.MovieRepository,
	clk clock.Clock,
	policy shared.Policy,
	logger *slog.Logger,
) MovieStatusCommands {
	return &movieStatusUseCaseImpl{
		uow:    uow,
		movies: movies,
		clock:  clk,
		policy: policy,
		logger: logger,
	}
}

func (uc *movieStatusUseCaseImpl) UpdateMovieStatuses(ctx context.Context) (int, error) {
	return uc.refresh(ctx, false)
}

func (uc *movieStatusUseCaseImpl) ForceUpdateMovieStatuses(ctx context.Context) (int, error) {
	return uc.refresh(ctx, true)
}

func (uc *movieStatusUseCaseImpl) refresh(ctx context.Context, force bool) (int, error) {
	var movies []*movie.Movie
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		movies, err = uc.movies.ListAll(ctx, db)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to load movies")
	}

	today := clock.Today(uc.clock, uc.policy.Location)
	updated := 0
	for _, m := range movies {
		if !m.Refresh(today) && !force {
			continue
		}

		err := uc.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
			return uc.movies.UpdateStatus(ctx, db, m.ID(), m.Status())
		})
		if err != nil {
			uc.logger.Warn("failed to update movie status",
				slog.String("movie_id", m.ID().String()),
				slog.String("status", m.Status().String()),
				slog.String("error", err.Error()))
			continue
		}
		updated++
	}

	uc.logger.Info("movie statuses refreshed",
		slog.Bool("force", force),
		slog.Int("movies", len(movies)),
		slog.Int("updated", updated),
		slog.String("today", today.Format("2006-01-02")))
	return updated, nil
}
