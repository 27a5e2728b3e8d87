package components

import (
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/readstore"
	"cinemaplus/internal/infra/repository"
	"cinemaplus/internal/infra/uow"
	"cinemaplus/internal/usecase/queries"
	"cinemaplus/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Seat
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.SeatReadQueries)),
		),
		fx.Annotate(
			readstore.NewSeatReadStore,
			fx.As(new(queries.SeatReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Booking, used outside transactions by the expiration sweeper
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.BookingWriteQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		// Movie
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.MovieWriteQueries)),
		),
		fx.Annotate(
			repository.NewMovieRepository,
			fx.As(new(shared.MovieRepository)),
		),
		// Promotion
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.PromotionWriteQueries)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(shared.PromotionRepository)),
		),
		// Notification, used outside transactions by the outbox relay
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
