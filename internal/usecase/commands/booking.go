package commands

import (
	"context"
	"encoding/json"
	"time"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingResult struct {
	ID            uuid.UUID
	Status        booking.Status
	SeatsReleased int64
}

type BookingCommands interface {
	// ConfirmBooking is the payment completion callback.
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*BookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingResult, error)
	// ExpireBooking expires one overdue pending booking. It reports false without error
	// when the booking no longer qualifies, which makes repeated sweeps harmless.
	ExpireBooking(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingEvent struct {
	BookingID      uuid.UUID `json:"booking_id"`
	Code           string    `json:"code"`
	UserID         uuid.UUID `json:"user_id"`
	ShowtimeID     uuid.UUID `json:"showtime_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	SeatsReleased  int64     `json:"seats_released"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy shared.Policy
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, policy shared.Policy) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) (*BookingResult, error) {
	var result *BookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		from := b.Status()
		now := uc.clock.Now()
		if err := b.Confirm(now, uc.policy.HoldTTL); err != nil {
			return translateTransitionErr(err)
		}

		result, err = uc.persist(ctx, tx, b, from, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingResult, error) {
	var result *BookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if !actor.CanAccess(b.UserID()) {
			return errs.ErrBookingForbidden
		}

		from := b.Status()
		now := uc.clock.Now()
		if err := b.Cancel(now); err != nil {
			return translateTransitionErr(err)
		}

		result, err = uc.persist(ctx, tx, b, from, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) ExpireBooking(ctx context.Context, id uuid.UUID) (bool, error) {
	expired := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = false

		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		// Re-check under the row lock: a payment or a parallel sweep may have won.
		now := uc.clock.Now()
		if b.Status() != booking.StatusPending || !b.IsOverdue(now, uc.policy.HoldTTL) {
			return nil
		}

		from := b.Status()
		if err := b.Expire(now, uc.policy.HoldTTL); err != nil {
			return translateTransitionErr(err)
		}
		if _, err := uc.persist(ctx, tx, b, from, now); err != nil {
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return expired, nil
}

// persist writes the status, releases seats the new status no longer holds and
// enqueues the outbox event, all on the caller's transaction.
func (uc *bookingUseCaseImpl) persist(ctx context.Context, tx shared.Tx, b *booking.Booking, from booking.Status, now time.Time) (*BookingResult, error) {
	if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingStateChanged)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var released int64
	if !b.Status().HoldsSeats() {
		n, err := tx.Bookings().ReleaseSeats(ctx, tx.DB(), b.ID(), now)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		released = n
	}

	payload, err := json.Marshal(bookingEvent{
		BookingID:      b.ID(),
		Code:           b.Code().String(),
		UserID:         b.UserID(),
		ShowtimeID:     b.ShowtimeID(),
		Status:         b.Status().String(),
		PreviousStatus: from.String(),
		SeatsReleased:  released,
		OccurredAt:     now,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking event")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), booking.EventFor(b.Status()), shared.TopicBookingEvents, payload, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &BookingResult{ID: b.ID(), Status: b.Status(), SeatsReleased: released}, nil
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func translateTransitionErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrHoldExpired):
		return errs.Mark(err, errs.ErrBookingHoldExpired)
	case errs.Is(err, booking.ErrInvalidTransition), errs.Is(err, booking.ErrHoldNotExpired):
		return errs.Mark(err, errs.ErrBookingStateChanged)
	default:
		return err
	}
}
