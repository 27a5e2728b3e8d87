package bootstrap

import (
	"context"
	"log/slog"

	"cinemaplus/internal/infra/broker"
	"cinemaplus/internal/infra/lock"
	"cinemaplus/internal/job"
	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewJobLocker,
		NewPublisher,
	),
)

// NewJobLocker falls back to a process-local lock when REDIS_ADDR is empty.
func NewJobLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (job.Locker, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, job lock is process-local")
		return lock.LocalLocker{}, nil
	}

	client, err := lock.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(client), nil
}

// NewPublisher returns a nil Publisher when RABBITMQ_URL is empty; the relay then leaves jobs queued.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.Publisher {
	if cfg.Broker.URL == "" {
		logger.Info("RABBITMQ_URL not set, outbox relay disabled")
		return nil
	}

	p := broker.NewRabbitPublisher(cfg.Broker.URL)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
