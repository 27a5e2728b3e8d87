package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExpiredVoucher struct {
	ID         uuid.UUID
	Code       string
	ExpiryDate pgtype.Date
}

const expireVouchers = `UPDATE vouchers
SET status = 'EXPIRED', updated_at = now()
WHERE status = 'ACTIVE' AND expiry_date < $1
RETURNING id, code, expiry_date`

// ExpireVouchers takes the first calendar date on which vouchers are no longer usable.
func (q *Queries) ExpireVouchers(ctx context.Context, db DBTX, today pgtype.Date) ([]ExpiredVoucher, error) {
	rows, err := db.Query(ctx, expireVouchers, today)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ExpiredVoucher, error) {
		var v ExpiredVoucher
		err := row.Scan(&v.ID, &v.Code, &v.ExpiryDate)
		return v, err
	})
}

type ExpiredCoupon struct {
	ID        uuid.UUID
	Code      string
	ExpiresAt pgtype.Timestamptz
}

const expireCoupons = `UPDATE coupons
SET status = 'EXPIRED', updated_at = now()
WHERE status = 'ACTIVE' AND expires_at < $1
RETURNING id, code, expires_at`

func (q *Queries) ExpireCoupons(ctx context.Context, db DBTX, now pgtype.Timestamptz) ([]ExpiredCoupon, error) {
	rows, err := db.Query(ctx, expireCoupons, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ExpiredCoupon, error) {
		var c ExpiredCoupon
		err := row.Scan(&c.ID, &c.Code, &c.ExpiresAt)
		return c, err
	})
}
