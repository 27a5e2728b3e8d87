package commands

import (
	"context"
	"log/slog"
	"time"

	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"
)

const (
	outboxBatchSize   = 100
	outboxMaxAttempts = 5
	// outboxLease bounds how long a claimed batch stays invisible to other relays.
	outboxLease      = 2 * time.Minute
	outboxRetryBase  = 30 * time.Second
	outboxRetryLimit = 30 * time.Minute
)

//go:generate mockgen -source=outbox_relay.go -destination=../../../tests/mock/commands/outbox_relay.go -package=commandsmock

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// OutboxRelay forwards queued notification jobs to the message broker.
type OutboxRelay struct {
	uow           shared.UnitOfWork
	notifications shared.NotificationRepository
	publisher     Publisher
	clock         clock.Clock
	logger        *slog.Logger
}

// NewOutboxRelay accepts a nil publisher; jobs then stay queued until a broker is configured.
func NewOutboxRelay(
	uow shared.UnitOfWork,
	notifications shared.NotificationRepository,
	publisher Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		uow:           uow,
		notifications: notifications,
		publisher:     publisher,
		clock:         clk,
		logger:        logger,
	}
}

// Relay leases one batch of due jobs, publishes them outside any transaction and
// returns how many were sent. Jobs left unmarked come back when their lease ends.
func (r *OutboxRelay) Relay(ctx context.Context) (int, error) {
	if r.publisher == nil {
		r.logger.Debug("no broker configured, notification jobs stay queued")
		return 0, nil
	}

	now := r.clock.Now()
	var jobs []shared.NotificationJob
	err := r.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		jobs, err = r.notifications.ClaimQueued(ctx, db, now, now.Add(outboxLease), outboxBatchSize)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "outbox relay failed")
	}

	sent := 0
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return sent, errs.Wrap(err, "outbox relay interrupted")
		}

		perr := r.publisher.Publish(ctx, job.Topic, job.Payload)
		err := r.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
			if perr != nil {
				return r.notifications.MarkFailed(ctx, db, job.ID, perr.Error(),
					r.clock.Now().Add(RetryDelay(job.Attempts+1)), outboxMaxAttempts)
			}
			return r.notifications.MarkSent(ctx, db, job.ID)
		})
		if err != nil {
			return sent, errs.Wrap(err, "outbox relay failed")
		}

		if perr != nil {
			r.logger.Warn("failed to publish notification job",
				slog.String("job_id", job.ID.String()),
				slog.String("kind", job.Kind),
				slog.Int("attempt", job.Attempts+1),
				slog.String("error", perr.Error()))
			continue
		}
		sent++
	}
	return sent, nil
}

// RetryDelay is the backoff before the next delivery of a job that failed its
// attempt-th publish: 30s doubling per attempt, capped at 30m.
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := outboxRetryBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= outboxRetryLimit {
			return outboxRetryLimit
		}
	}
	return d
}
