//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/readstore"
	readstoremock "cinemaplus/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingViewRow(id uuid.UUID, created time.Time) query.GetBookingViewRow {
	start := time.Date(2025, 3, 15, 19, 30, 0, 0, time.UTC)
	return query.GetBookingViewRow{
		ID:             id,
		Code:           "BK-20250314",
		UserID:         uuid.New(),
		ShowtimeID:     uuid.New(),
		SeatCount:      2,
		SeatAmount:     180000,
		FoodAmount:     45000,
		DiscountAmount: 25000,
		FinalAmount:    200000,
		Status:         "CONFIRMED",
		CreatedAt:      pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: created, Valid: true},
		ShowDate:       pgtype.Date{Time: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true},
		StartTime:      pgtype.Timestamptz{Time: start, Valid: true},
		EndTime:        pgtype.Timestamptz{Time: start.Add(2 * time.Hour), Valid: true},
		MovieID:        uuid.New(),
		MovieTitle:     "Test Movie",
		RoomName:       "Room 1",
		TheaterName:    "CinemaPlus Downtown",
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	created := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("success: view joined with seat labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		seatA, seatB := uuid.New(), uuid.New()

		mockQueries.EXPECT().GetBookingView(ctx, mockDB, id).Return(bookingViewRow(id, created), nil)
		mockQueries.EXPECT().ListBookingSeatLabels(ctx, mockDB, id).Return([]query.BookingSeatLabelRow{
			{SeatID: seatA, RowLabel: "F", Number: 7, SeatType: "STANDARD", Price: 90000},
			{SeatID: seatB, RowLabel: "F", Number: 8, SeatType: "VIP", Price: 90000},
		}, nil)

		view, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "CONFIRMED", view.Status)
		assert.Nil(t, view.Notes)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), view.ShowDate)
		require.Len(t, view.Seats, 2)
		assert.Equal(t, "F7", view.Seats[0].Label)
		assert.Equal(t, "F8", view.Seats[1].Label)
		assert.Equal(t, "VIP", view.Seats[1].SeatType)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingView(ctx, mockDB, id).Return(query.GetBookingViewRow{}, pgx.ErrNoRows)

		view, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})

	t.Run("error: seat labels fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingView(ctx, mockDB, id).Return(bookingViewRow(id, created), nil)
		mockQueries.EXPECT().ListBookingSeatLabels(ctx, mockDB, id).Return(nil, errors.New("timeout"))

		_, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// List Tests
// =============================================================================

func TestBookingReadStore_FindByUserKeyset(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	lastID := uuid.New()
	lastCreated := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}

	rowID := uuid.New()
	mockQueries.EXPECT().ListBookingsByUserKeyset(ctx, mockDB, query.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgtype.Timestamptz{Time: lastCreated, Valid: true},
		ID:        lastID,
		Limit:     21,
	}).Return([]query.ListBookingsByUserRow{{
		ID:          rowID,
		Code:        "BK-1",
		MovieTitle:  "Test Movie",
		SeatCount:   1,
		FinalAmount: 90000,
		Status:      "PENDING",
		CreatedAt:   pgtype.Timestamptz{Time: lastCreated.Add(-time.Minute), Valid: true},
	}}, nil)

	items, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByUserKeyset(ctx, userID, lastCreated, lastID, 21)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, rowID, items[0].ID)
	assert.Equal(t, lastCreated.Add(-time.Minute), items[0].CreatedAt)
}

func TestBookingReadStore_FindByUserFirstPage_Error(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListBookingsByUserFirstPage(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

	items, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByUserFirstPage(ctx, uuid.New(), 21)

	require.Error(t, err)
	assert.Nil(t, items)
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
