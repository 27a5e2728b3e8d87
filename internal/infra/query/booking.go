package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID             uuid.UUID
	Code           string
	UserID         uuid.UUID
	ShowtimeID     uuid.UUID
	SeatCount      int32
	SeatAmount     int64
	FoodAmount     int64
	DiscountAmount int64
	FinalAmount    int64
	Status         string
	Notes          pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const bookingColumns = `id, code, user_id, showtime_id, seat_count, seat_amount, food_amount,
	discount_amount, final_amount, status, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.Code,
		&b.UserID,
		&b.ShowtimeID,
		&b.SeatCount,
		&b.SeatAmount,
		&b.FoodAmount,
		&b.DiscountAmount,
		&b.FinalAmount,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

const getBookingForUpdate = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

// GetBookingForUpdate locks the row until the surrounding transaction ends.
func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const listOverduePendingBookingIDs = `SELECT id FROM bookings
WHERE status = 'PENDING' AND created_at < $1
ORDER BY created_at, id`

func (q *Queries) ListOverduePendingBookingIDs(ctx context.Context, db DBTX, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listOverduePendingBookingIDs, cutoff)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const updateBookingStatus = `UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1 AND status = $4`

type UpdateBookingStatusParams struct {
	ID         uuid.UUID
	Status     string
	UpdatedAt  time.Time
	FromStatus string
}

// UpdateBookingStatus only touches the row while it is still in FromStatus.
func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt, arg.FromStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseBookingSeats = `UPDATE booking_seats
SET released_at = $2
WHERE booking_id = $1 AND released_at IS NULL`

type ReleaseBookingSeatsParams struct {
	BookingID  uuid.UUID
	ReleasedAt time.Time
}

func (q *Queries) ReleaseBookingSeats(ctx context.Context, db DBTX, arg ReleaseBookingSeatsParams) (int64, error) {
	tag, err := db.Exec(ctx, releaseBookingSeats, arg.BookingID, arg.ReleasedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
