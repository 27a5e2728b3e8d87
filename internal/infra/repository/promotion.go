package repository

import (
	"context"
	"time"

	"cinemaplus/internal/domain/coupon"
	"cinemaplus/internal/domain/voucher"
	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/repository/promotion.go -package=repositorymock

type PromotionWriteQueries interface {
	ExpireVouchers(ctx context.Context, db query.DBTX, today pgtype.Date) ([]query.ExpiredVoucher, error)
	ExpireCoupons(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) ([]query.ExpiredCoupon, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{queries: queries}
}

// ExpireVouchers expires active vouchers whose expiry date is before cutoff's calendar
// date and returns them in their new state.
func (r *PromotionRepository) ExpireVouchers(ctx context.Context, db query.DBTX, cutoff time.Time) ([]*voucher.Voucher, error) {
	rows, err := r.queries.ExpireVouchers(ctx, db, pgconv.DateToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire vouchers", err)
	}

	vouchers := make([]*voucher.Voucher, len(rows))
	for i, row := range rows {
		vouchers[i] = voucher.ReconstructVoucher(row.ID, row.Code, pgconv.DateFromPgtype(row.ExpiryDate), voucher.StatusExpired)
	}
	return vouchers, nil
}

func (r *PromotionRepository) ExpireCoupons(ctx context.Context, db query.DBTX, cutoff time.Time) ([]*coupon.Coupon, error) {
	rows, err := r.queries.ExpireCoupons(ctx, db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire coupons", err)
	}

	coupons := make([]*coupon.Coupon, len(rows))
	for i, row := range rows {
		coupons[i] = coupon.ReconstructCoupon(row.ID, row.Code, pgconv.TimeFromPgtype(row.ExpiresAt), coupon.StatusExpired)
	}
	return coupons, nil
}
