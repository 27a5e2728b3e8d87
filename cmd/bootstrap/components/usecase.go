package components

import (
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/usecase/commands"
	"cinemaplus/internal/usecase/queries"
	"cinemaplus/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewBookingExpirationSweeper,
		commands.NewMovieStatusUseCase,
		commands.NewPromotionExpiryUseCase,
		commands.NewOutboxRelay,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSeatQueries,
	),
)

func NewPolicy(cfg config.Config) (shared.Policy, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return shared.Policy{}, err
	}
	return shared.Policy{
		HoldTTL:  cfg.Jobs.BookingHoldTTL,
		Location: loc,
	}, nil
}
