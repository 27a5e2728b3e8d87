package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const showtimeExists = `SELECT EXISTS (SELECT 1 FROM showtimes WHERE id = $1)`

func (q *Queries) ShowtimeExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, showtimeExists, id).Scan(&exists)
	return exists, err
}

const listOccupiedSeatIDs = `SELECT DISTINCT bs.seat_id
FROM booking_seats bs
JOIN bookings b ON b.id = bs.booking_id
WHERE bs.showtime_id = $1
  AND bs.released_at IS NULL
  AND (b.status = 'CONFIRMED' OR (b.status = 'PENDING' AND b.created_at >= $2))
ORDER BY bs.seat_id`

type ListOccupiedSeatIDsParams struct {
	ShowtimeID uuid.UUID
	HoldCutoff time.Time
}

// ListOccupiedSeatIDs treats pending holds created before HoldCutoff as lapsed
// even when the sweeper has not released them yet.
func (q *Queries) ListOccupiedSeatIDs(ctx context.Context, db DBTX, arg ListOccupiedSeatIDsParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listOccupiedSeatIDs, arg.ShowtimeID, arg.HoldCutoff)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}
