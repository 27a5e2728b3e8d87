package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultHoldTTL is how long a pending booking keeps its seats without payment.
const DefaultHoldTTL = 15 * time.Minute

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidCode       = errors.New("invalid booking code")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrHoldNotExpired    = errors.New("booking hold has not expired yet")
	ErrHoldExpired       = errors.New("booking hold has expired")
)

type Booking struct {
	id         uuid.UUID
	code       Code
	userID     uuid.UUID
	showtimeID uuid.UUID
	seatCount  int
	amounts    Amounts
	final      Money
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	code Code,
	userID, showtimeID uuid.UUID,
	seatCount int,
	amounts Amounts,
	final Money,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		code:       code,
		userID:     userID,
		showtimeID: showtimeID,
		seatCount:  seatCount,
		amounts:    amounts,
		final:      final,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// IsOverdue is true once the hold window has fully elapsed: created_at < now - ttl.
func (b *Booking) IsOverdue(now time.Time, ttl time.Duration) bool {
	return b.createdAt.Before(now.Add(-ttl))
}

// HoldsSeatsAt reports whether the booking's seats count as occupied at now.
func (b *Booking) HoldsSeatsAt(now time.Time, ttl time.Duration) bool {
	switch b.status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return !b.IsOverdue(now, ttl)
	default:
		return false
	}
}

func (b *Booking) Expire(now time.Time, ttl time.Duration) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if !b.IsOverdue(now, ttl) {
		return ErrHoldNotExpired
	}
	b.transition(StatusExpired, now)
	return nil
}

func (b *Booking) Confirm(now time.Time, ttl time.Duration) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if b.IsOverdue(now, ttl) {
		return ErrHoldExpired
	}
	b.transition(StatusConfirmed, now)
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.transition(StatusCancelled, now)
	return nil
}

func (b *Booking) transition(to Status, now time.Time) {
	b.status = to
	b.updatedAt = now
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Code() Code            { return b.code }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) ShowtimeID() uuid.UUID { return b.showtimeID }
func (b *Booking) SeatCount() int        { return b.seatCount }
func (b *Booking) Amounts() Amounts      { return b.amounts }
func (b *Booking) FinalAmount() Money    { return b.final }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Notes() string         { return b.notes }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
