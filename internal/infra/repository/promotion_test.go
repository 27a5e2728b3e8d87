//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinemaplus/internal/domain/coupon"
	"cinemaplus/internal/domain/voucher"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/infra/repository"
	repositorymock "cinemaplus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPromotionRepository_ExpireVouchers(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockPromotionWriteQueries(ctrl)
	mockDB := &mockDBTX{}

	id := uuid.New()
	cutoff := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ExpireVouchers(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, today pgtype.Date) ([]query.ExpiredVoucher, error) {
			assert.True(t, today.Valid)
			assert.Equal(t, 2025, today.Time.Year())
			assert.Equal(t, time.March, today.Time.Month())
			assert.Equal(t, 14, today.Time.Day())
			return []query.ExpiredVoucher{{
				ID:         id,
				Code:       "SPRING10",
				ExpiryDate: pgtype.Date{Time: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), Valid: true},
			}}, nil
		})

	got, err := repository.NewPromotionRepository(mockQueries).ExpireVouchers(ctx, mockDB, cutoff)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID())
	assert.Equal(t, "SPRING10", got[0].Code())
	assert.Equal(t, voucher.StatusExpired, got[0].Status())
	assert.True(t, got[0].ExpiryDate().Before(cutoff))
}

func TestPromotionRepository_ExpireCoupons(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("success: expired rows converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPromotionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		expiresAt := now.Add(-time.Minute)
		mockQueries.EXPECT().ExpireCoupons(ctx, mockDB, pgtype.Timestamptz{Time: now, Valid: true}).
			Return([]query.ExpiredCoupon{{ID: uuid.New(), Code: "FLASH", ExpiresAt: pgtype.Timestamptz{Time: expiresAt, Valid: true}}}, nil)

		got, err := repository.NewPromotionRepository(mockQueries).ExpireCoupons(ctx, mockDB, now)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "FLASH", got[0].Code())
		assert.Equal(t, expiresAt, got[0].ExpiresAt())
		assert.Equal(t, coupon.StatusExpired, got[0].Status())
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPromotionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ExpireCoupons(ctx, mockDB, pgtype.Timestamptz{Time: now, Valid: true}).
			Return(nil, errors.New("database connection error"))

		got, err := repository.NewPromotionRepository(mockQueries).ExpireCoupons(ctx, mockDB, now)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}
