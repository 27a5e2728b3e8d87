package response

import (
	"time"

	"cinemaplus/internal/usecase/commands"
	"cinemaplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingSeatResponse struct {
	SeatID   uuid.UUID `json:"seat_id"`
	Label    string    `json:"label"`
	SeatType string    `json:"seat_type"`
	Price    int64     `json:"price"`
}

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	Code           string                `json:"code"`
	UserID         uuid.UUID             `json:"user_id"`
	ShowtimeID     uuid.UUID             `json:"showtime_id"`
	Status         string                `json:"status"`
	SeatCount      int32                 `json:"seat_count"`
	SeatAmount     int64                 `json:"seat_amount"`
	FoodAmount     int64                 `json:"food_amount"`
	DiscountAmount int64                 `json:"discount_amount"`
	FinalAmount    int64                 `json:"final_amount"`
	Notes          *string               `json:"notes,omitempty"`
	MovieID        uuid.UUID             `json:"movie_id"`
	MovieTitle     string                `json:"movie_title"`
	RoomName       string                `json:"room_name"`
	TheaterName    string                `json:"theater_name"`
	ShowDate       string                `json:"show_date" copier:"-"`
	StartTime      time.Time             `json:"start_time"`
	EndTime        time.Time             `json:"end_time"`
	Seats          []BookingSeatResponse `json:"seats"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type BookingListItemResponse struct {
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

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

type BookingTransitionResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	SeatsReleased int64     `json:"seats_released"`
}

// FromBookingView renders ShowDate as a plain calendar date.
func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	res.ShowDate = v.ShowDate.Format(time.DateOnly)
	if res.Seats == nil {
		res.Seats = []BookingSeatResponse{}
	}
	return res, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, 0, len(items))}
	if err := copier.Copy(&res.Items, items); err != nil {
		return nil, err
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res, nil
}

func FromBookingResult(r *commands.BookingResult) *BookingTransitionResponse {
	return &BookingTransitionResponse{
		ID:            r.ID,
		Status:        r.Status.String(),
		SeatsReleased: r.SeatsReleased,
	}
}
