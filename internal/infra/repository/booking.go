package repository

import (
	"context"
	"time"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/repository/converter"
	"cinemaplus/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	GetBookingForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	ListOverduePendingBookingIDs(ctx context.Context, db query.DBTX, cutoff time.Time) ([]uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
	ReleaseBookingSeats(ctx context.Context, db query.DBTX, arg query.ReleaseBookingSeatsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) ListOverduePendingIDs(ctx context.Context, db query.DBTX, cutoff time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListOverduePendingBookingIDs(ctx, db, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue pending bookings", err)
	}
	return ids, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toDomain(row)
}

// UpdateStatus writes b's current status, guarded by the status it was read with.
func (r *BookingRepository) UpdateStatus(ctx context.Context, db query.DBTX, b *booking.Booking, from booking.Status) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, db, query.UpdateBookingStatusParams{
		ID:         b.ID(),
		Status:     b.Status().String(),
		UpdatedAt:  b.UpdatedAt(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) ReleaseSeats(ctx context.Context, db query.DBTX, bookingID uuid.UUID, at time.Time) (int64, error) {
	released, err := r.queries.ReleaseBookingSeats(ctx, db, query.ReleaseBookingSeatsParams{
		BookingID:  bookingID,
		ReleasedAt: at,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release booking seats", err)
	}
	return released, nil
}

func toDomain(row query.Booking) (*booking.Booking, error) {
	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
	}
	return b, nil
}
