package readstore

import (
	"context"
	"strconv"
	"time"

	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/pgconv"
	"cinemaplus/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.GetBookingViewRow, error)
	ListBookingSeatLabels(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.BookingSeatLabelRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserFirstPageParams) ([]query.ListBookingsByUserRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserKeysetParams) ([]query.ListBookingsByUserRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	seats, err := r.queries.ListBookingSeatLabels(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking seats", err)
	}

	view := rowToBookingView(row)
	view.Seats = make([]queries.BookingSeatView, len(seats))
	for i, s := range seats {
		view.Seats[i] = queries.BookingSeatView{
			SeatID:   s.SeatID,
			Label:    s.RowLabel + strconv.Itoa(int(s.Number)),
			SeatType: s.SeatType,
			Price:    s.Price,
		}
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, query.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}
	return toBookingListItems(rows), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, query.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}
	return toBookingListItems(rows), nil
}

func rowToBookingView(row query.GetBookingViewRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:             row.ID,
		Code:           row.Code,
		UserID:         row.UserID,
		ShowtimeID:     row.ShowtimeID,
		Status:         row.Status,
		SeatCount:      row.SeatCount,
		SeatAmount:     row.SeatAmount,
		FoodAmount:     row.FoodAmount,
		DiscountAmount: row.DiscountAmount,
		FinalAmount:    row.FinalAmount,
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		MovieID:        row.MovieID,
		MovieTitle:     row.MovieTitle,
		RoomName:       row.RoomName,
		TheaterName:    row.TheaterName,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if d := pgconv.DatePtrFromPgtype(row.ShowDate); d != nil {
		view.ShowDate = *d
	}
	return view
}

func toBookingListItems(rows []query.ListBookingsByUserRow) []*queries.BookingListItem {
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:          row.ID,
			Code:        row.Code,
			ShowtimeID:  row.ShowtimeID,
			MovieTitle:  row.MovieTitle,
			StartTime:   pgconv.TimeFromPgtype(row.StartTime),
			SeatCount:   row.SeatCount,
			FinalAmount: row.FinalAmount,
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
