//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Venue is one theater with a single room of seats A1..An.
type Venue struct {
	TheaterID uuid.UUID
	RoomID    uuid.UUID
	SeatIDs   []uuid.UUID
}

func CreateVenue(t *testing.T, db DBLike, seats int) Venue {
	t.Helper()
	ctx := context.Background()

	v := Venue{TheaterID: uuid.New(), RoomID: uuid.New()}
	_, err := db.Exec(ctx, "INSERT INTO theaters (id, name) VALUES ($1, $2)", v.TheaterID, "CinemaPlus Downtown")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO rooms (id, theater_id, name) VALUES ($1, $2, $3)", v.RoomID, v.TheaterID, "Room 1")
	require.NoError(t, err)

	for i := 1; i <= seats; i++ {
		id := uuid.New()
		_, err = db.Exec(ctx, "INSERT INTO seats (id, room_id, row_label, number, seat_type) VALUES ($1, $2, 'A', $3, 'STANDARD')",
			id, v.RoomID, i)
		require.NoError(t, err)
		v.SeatIDs = append(v.SeatIDs, id)
	}
	return v
}

func CreateMovie(t *testing.T, db DBLike, title string, releaseDate time.Time, durationMin int, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO movies (id, title, release_date, duration_min, status) VALUES ($1, $2, $3, $4, $5)",
		id, title, releaseDate, durationMin, status)
	require.NoError(t, err)
	return id
}

func CreateShowtime(t *testing.T, db DBLike, movieID, roomID uuid.UUID, start time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO showtimes (id, movie_id, room_id, show_date, start_time, end_time, base_price) VALUES ($1, $2, $3, $4, $5, $6, 50000)",
		id, movieID, roomID, start, start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return id
}

// CreateBooking inserts a booking holding seatIDs at 50,000 each.
func CreateBooking(t *testing.T, db DBLike, userID, showtimeID uuid.UUID, status string, createdAt time.Time, seatIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	const price = int64(50_000)
	id := uuid.New()
	amount := price * int64(len(seatIDs))
	code := "BK" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])

	_, err := db.Exec(ctx, `INSERT INTO bookings
		(id, code, user_id, showtime_id, seat_count, seat_amount, food_amount, discount_amount, final_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $6, $7, $8, $8)`,
		id, code, userID, showtimeID, len(seatIDs), amount, status, createdAt)
	require.NoError(t, err)

	for _, seatID := range seatIDs {
		_, err = db.Exec(ctx, "INSERT INTO booking_seats (booking_id, showtime_id, seat_id, price) VALUES ($1, $2, $3, $4)",
			id, showtimeID, seatID, price)
		require.NoError(t, err)
	}
	return id
}

func CreateVoucher(t *testing.T, db DBLike, code string, expiryDate time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vouchers (id, code, value, expiry_date, status) VALUES ($1, $2, 100000, $3, $4)",
		id, code, expiryDate, status)
	require.NoError(t, err)
	return id
}

func CreateCoupon(t *testing.T, db DBLike, code string, expiresAt time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, amount_off, expires_at, status) VALUES ($1, $2, 20000, $3, $4)",
		id, code, expiresAt, status)
	require.NoError(t, err)
	return id
}

func QueryString(t *testing.T, db DBLike, sql string, args ...any) string {
	t.Helper()
	var s string
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&s))
	return s
}

func QueryInt(t *testing.T, db DBLike, sql string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
