package components

import (
	"context"
	"log/slog"

	"cinemaplus/internal/handler/api"
	"cinemaplus/internal/job"
	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/usecase/commands"
	"cinemaplus/internal/usecase/shared"

	"go.uber.org/fx"
)

var JobModule = fx.Module("job",
	fx.Provide(
		fx.Annotate(
			NewScheduler,
			fx.As(fx.Self()),
			fx.As(new(api.JobRunner)),
		),
	),
)

type schedulerParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     config.Config
	Policy     shared.Policy
	Locker     job.Locker
	Logger     *slog.Logger
	Sweeper    *commands.BookingExpirationSweeper
	Movies     commands.MovieStatusCommands
	Promotions commands.PromotionExpiryCommands
	Relay      *commands.OutboxRelay
}

// NewScheduler registers the builtin jobs. With JOBS_ENABLED=false the cron loop
// never starts, but jobs can still be run through the admin endpoint.
func NewScheduler(p schedulerParams) (*job.Scheduler, error) {
	s := job.NewScheduler(p.Policy.Location, p.Locker, p.Config.Jobs.LockTTL, p.Logger)
	for _, j := range job.Builtin(p.Config.Jobs, p.Sweeper, p.Movies, p.Promotions, p.Relay) {
		if err := s.Register(j); err != nil {
			return nil, err
		}
	}

	if !p.Config.Jobs.Enabled {
		p.Logger.Info("scheduled jobs disabled")
		return s, nil
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: s.Start,
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s, nil
}
