package queries

import (
	"context"
	"time"

	"cinemaplus/internal/infra"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	Code           string            `json:"code"`
	UserID         uuid.UUID         `json:"user_id"`
	ShowtimeID     uuid.UUID         `json:"showtime_id"`
	Status         string            `json:"status"`
	SeatCount      int32             `json:"seat_count"`
	SeatAmount     int64             `json:"seat_amount"`
	FoodAmount     int64             `json:"food_amount"`
	DiscountAmount int64             `json:"discount_amount"`
	FinalAmount    int64             `json:"final_amount"`
	Notes          *string           `json:"notes,omitempty"`
	MovieID        uuid.UUID         `json:"movie_id"`
	MovieTitle     string            `json:"movie_title"`
	RoomName       string            `json:"room_name"`
	TheaterName    string            `json:"theater_name"`
	ShowDate       time.Time         `json:"show_date"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	Seats          []BookingSeatView `json:"seats"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type BookingSeatView struct {
	SeatID   uuid.UUID `json:"seat_id"`
	Label    string    `json:"label"`
	SeatType string    `json:"seat_type"`
	Price    int64     `json:"price"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	ShowtimeID  uuid.UUID `json:"showtime_id"`
	MovieTitle  string    `json:"movie_title"`
	StartTime   time.Time `json:"start_time"`
	SeatCount   int32     `json:"seat_count"`
	FinalAmount int64     `json:"final_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		return nil, errs.ErrBookingForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
