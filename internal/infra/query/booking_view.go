package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GetBookingViewRow struct {
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
	ShowDate       pgtype.Date
	StartTime      pgtype.Timestamptz
	EndTime        pgtype.Timestamptz
	MovieID        uuid.UUID
	MovieTitle     string
	RoomName       string
	TheaterName    string
}

const getBookingView = `SELECT
    b.id, b.code, b.user_id, b.showtime_id, b.seat_count, b.seat_amount, b.food_amount,
    b.discount_amount, b.final_amount, b.status, b.notes, b.created_at, b.updated_at,
    s.show_date, s.start_time, s.end_time,
    m.id, m.title,
    r.name, t.name
FROM bookings b
JOIN showtimes s ON s.id = b.showtime_id
JOIN movies m ON m.id = s.movie_id
JOIN rooms r ON r.id = s.room_id
JOIN theaters t ON t.id = r.theater_id
WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewRow, error) {
	var v GetBookingViewRow
	err := db.QueryRow(ctx, getBookingView, id).Scan(
		&v.ID,
		&v.Code,
		&v.UserID,
		&v.ShowtimeID,
		&v.SeatCount,
		&v.SeatAmount,
		&v.FoodAmount,
		&v.DiscountAmount,
		&v.FinalAmount,
		&v.Status,
		&v.Notes,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.ShowDate,
		&v.StartTime,
		&v.EndTime,
		&v.MovieID,
		&v.MovieTitle,
		&v.RoomName,
		&v.TheaterName,
	)
	return v, err
}

type BookingSeatLabelRow struct {
	SeatID   uuid.UUID
	RowLabel string
	Number   int32
	SeatType string
	Price    int64
}

const listBookingSeatLabels = `SELECT se.id, se.row_label, se.number, se.seat_type, bs.price
FROM booking_seats bs
JOIN seats se ON se.id = bs.seat_id
WHERE bs.booking_id = $1
ORDER BY se.row_label, se.number`

func (q *Queries) ListBookingSeatLabels(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingSeatLabelRow, error) {
	rows, err := db.Query(ctx, listBookingSeatLabels, bookingID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookingSeatLabelRow, error) {
		var s BookingSeatLabelRow
		err := row.Scan(&s.SeatID, &s.RowLabel, &s.Number, &s.SeatType, &s.Price)
		return s, err
	})
}

type ListBookingsByUserRow struct {
	ID          uuid.UUID
	Code        string
	ShowtimeID  uuid.UUID
	MovieTitle  string
	StartTime   pgtype.Timestamptz
	SeatCount   int32
	FinalAmount int64
	Status      string
	CreatedAt   pgtype.Timestamptz
}

const bookingListSelect = `SELECT b.id, b.code, b.showtime_id, m.title, s.start_time, b.seat_count,
    b.final_amount, b.status, b.created_at
FROM bookings b
JOIN showtimes s ON s.id = b.showtime_id
JOIN movies m ON m.id = s.movie_id
`

const listBookingsByUserFirstPage = bookingListSelect + `WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

type ListBookingsByUserFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListBookingsByUserFirstPage(ctx context.Context, db DBTX, arg ListBookingsByUserFirstPageParams) ([]ListBookingsByUserRow, error) {
	rows, err := db.Query(ctx, listBookingsByUserFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBookingListRow)
}

const listBookingsByUserKeyset = bookingListSelect + `WHERE b.user_id = $1
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

type ListBookingsByUserKeysetParams struct {
	UserID    uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListBookingsByUserKeyset(ctx context.Context, db DBTX, arg ListBookingsByUserKeysetParams) ([]ListBookingsByUserRow, error) {
	rows, err := db.Query(ctx, listBookingsByUserKeyset, arg.UserID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBookingListRow)
}

func scanBookingListRow(row pgx.CollectableRow) (ListBookingsByUserRow, error) {
	var r ListBookingsByUserRow
	err := row.Scan(
		&r.ID,
		&r.Code,
		&r.ShowtimeID,
		&r.MovieTitle,
		&r.StartTime,
		&r.SeatCount,
		&r.FinalAmount,
		&r.Status,
		&r.CreatedAt,
	)
	return r, err
}
