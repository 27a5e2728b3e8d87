//go:build unit || e2e

package builder

import (
	"time"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID             uuid.UUID
	Code           string
	UserID         uuid.UUID
	ShowtimeID     uuid.UUID
	SeatCount      int
	SeatAmount     int64
	FoodAmount     int64
	DiscountAmount int64
	Status         string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:             uuid.New(),
		Code:           "BK-TEST0001",
		UserID:         uuid.New(),
		ShowtimeID:     uuid.New(),
		SeatCount:      2,
		SeatAmount:     180000,
		FoodAmount:     45000,
		DiscountAmount: 25000,
		Status:         booking.StatusPending.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) FinalAmount() int64 {
	final := b.SeatAmount + b.FoodAmount - b.DiscountAmount
	if final < 0 {
		return 0
	}
	return final
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	seat, _ := booking.NewMoney(b.SeatAmount)
	food, _ := booking.NewMoney(b.FoodAmount)
	discount, _ := booking.NewMoney(b.DiscountAmount)
	final, _ := booking.NewMoney(b.FinalAmount())

	return booking.ReconstructBooking(
		b.ID,
		booking.Code(b.Code),
		b.UserID,
		b.ShowtimeID,
		b.SeatCount,
		booking.Amounts{Seat: seat, Food: food, Discount: discount},
		final,
		booking.Status(b.Status),
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildRow() query.Booking {
	var notes pgtype.Text
	if b.Notes != "" {
		notes = pgtype.Text{String: b.Notes, Valid: true}
	}
	return query.Booking{
		ID:             b.ID,
		Code:           b.Code,
		UserID:         b.UserID,
		ShowtimeID:     b.ShowtimeID,
		SeatCount:      int32(b.SeatCount),
		SeatAmount:     b.SeatAmount,
		FoodAmount:     b.FoodAmount,
		DiscountAmount: b.DiscountAmount,
		FinalAmount:    b.FinalAmount(),
		Status:         b.Status,
		Notes:          notes,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	start := b.CreatedAt.Add(24 * time.Hour)
	return &queries.BookingView{
		ID:             b.ID,
		Code:           b.Code,
		UserID:         b.UserID,
		ShowtimeID:     b.ShowtimeID,
		Status:         b.Status,
		SeatCount:      int32(b.SeatCount),
		SeatAmount:     b.SeatAmount,
		FoodAmount:     b.FoodAmount,
		DiscountAmount: b.DiscountAmount,
		FinalAmount:    b.FinalAmount(),
		MovieID:        uuid.New(),
		MovieTitle:     "Test Movie",
		RoomName:       "Room 1",
		TheaterName:    "CinemaPlus Downtown",
		ShowDate:       time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		Seats: []queries.BookingSeatView{
			{SeatID: uuid.New(), Label: "A1", SeatType: "STANDARD", Price: b.SeatAmount / 2},
			{SeatID: uuid.New(), Label: "A2", SeatType: "STANDARD", Price: b.SeatAmount / 2},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		Code:        b.Code,
		ShowtimeID:  b.ShowtimeID,
		MovieTitle:  "Test Movie",
		StartTime:   b.CreatedAt.Add(24 * time.Hour),
		SeatCount:   int32(b.SeatCount),
		FinalAmount: b.FinalAmount(),
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status.String()
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithShowtimeID(showtimeID uuid.UUID) *BookingBuilder {
	b.ShowtimeID = showtimeID
	return b
}

// CreatedBefore sets the booking age relative to now.
func (b *BookingBuilder) CreatedBefore(now time.Time, age time.Duration) *BookingBuilder {
	b.CreatedAt = now.Add(-age)
	b.UpdatedAt = b.CreatedAt
	return b
}

func (b *BookingBuilder) WithAmounts(seat, food, discount int64) *BookingBuilder {
	b.SeatAmount = seat
	b.FoodAmount = food
	b.DiscountAmount = discount
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}
