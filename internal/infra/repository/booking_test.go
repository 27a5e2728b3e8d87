//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/repository"
	"cinemaplus/tests/common/builder"
	repositorymock "cinemaplus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Find Booking Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder().WithNotes("aisle please")

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted to domain",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, db, bb.ID).Return(bb.BuildRow(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, db, bb.ID).Return(query.Booking{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: stored status is corrupt",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				row := bb.BuildRow()
				row.Status = "REFUNDED"
				mock.EXPECT().GetBookingForUpdate(ctx, db, bb.ID).Return(row, nil)
			},
			expectedError: true,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, db, bb.ID).Return(query.Booking{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			got, err := repo.FindForUpdate(ctx, mockDB, bb.ID)

			if tc.expectedError {
				require.Error(t, err)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				}
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, got.ID())
			assert.Equal(t, booking.StatusPending, got.Status())
			assert.Equal(t, "aisle please", got.Notes())
			assert.Equal(t, bb.FinalAmount(), got.FinalAmount().Amount())
		})
	}
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: status updated with from-guard",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db query.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, db, query.UpdateBookingStatusParams{
					ID:         b.ID(),
					Status:     "EXPIRED",
					UpdatedAt:  now,
					FromStatus: "PENDING",
				}).Return(int64(1), nil)
			},
		},
		{
			name: "error: status changed concurrently",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db query.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db query.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, db, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "40P01"})
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b := builder.NewBookingBuilder().CreatedBefore(now, time.Hour).BuildDomain()
			require.NoError(t, b.Expire(now, booking.DefaultHoldTTL))

			tc.setupMock(mockQueries, b, mockDB)

			err := repo.UpdateStatus(ctx, mockDB, b, booking.StatusPending)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_ReleaseSeats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	bookingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ReleaseBookingSeats(ctx, mockDB, query.ReleaseBookingSeatsParams{
		BookingID:  bookingID,
		ReleasedAt: now,
	}).Return(int64(3), nil)

	n, err := repository.NewBookingRepository(mockQueries).ReleaseSeats(ctx, mockDB, bookingID, now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestBookingRepository_ListOverduePendingIDs(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 3, 14, 9, 45, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListOverduePendingBookingIDs(ctx, mockDB, cutoff).Return(nil, errors.New("timeout"))

	ids, err := repository.NewBookingRepository(mockQueries).ListOverduePendingIDs(ctx, mockDB, cutoff)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, ids)
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mock instead.")
}
