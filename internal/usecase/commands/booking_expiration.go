package commands

import (
	"context"
	"log/slog"
	"time"

	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingExpirationSweeper releases seats held by pending bookings that were never paid.
type BookingExpirationSweeper struct {
	uow      shared.UnitOfWork
	bookings shared.BookingRepository
	commands BookingCommands
	clock    clock.Clock
	policy   shared.Policy
	logger   *slog.Logger
}

func NewBookingExpirationSweeper(
	uow shared.UnitOfWork,
	bookings shared.BookingRepository,
	commands BookingCommands,
	clk clock.Clock,
	policy shared.Policy,
	logger *slog.Logger,
) *BookingExpirationSweeper {
	return &BookingExpirationSweeper{
		uow:      uow,
		bookings: bookings,
		commands: commands,
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

// Sweep expires every pending booking created before now - HoldTTL, one transaction
// per booking, and returns how many it expired. A failing booking is logged and
// skipped; only a failing candidate query fails the sweep.
func (s *BookingExpirationSweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.policy.HoldTTL)

	var ids []uuid.UUID
	err := s.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		ids, err = s.bookings.ListOverduePendingIDs(ctx, db, cutoff)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to select overdue bookings")
	}

	expired, failed := 0, 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		ok, err := s.commands.ExpireBooking(ctx, id)
		if err != nil {
			failed++
			s.logger.Warn("failed to expire booking",
				slog.String("booking_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			expired++
		}
	}

	if len(ids) > 0 {
		s.logger.Info("booking expiration sweep finished",
			slog.Int("candidates", len(ids)),
			slog.Int("expired", expired),
			slog.Int("failed", failed),
			slog.Time("cutoff", cutoff.Truncate(time.Second)))
	}
	return expired, nil
}
