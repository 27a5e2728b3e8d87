package commands

import (
	"context"
	"log/slog"
	"time"

	"cinemaplus/internal/domain/coupon"
	"cinemaplus/internal/domain/voucher"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"
)

//go:generate mockgen -source=promotion_expiry.go -destination=../../../tests/mock/commands/promotion_expiry.go -package=commandsmock

type PromotionExpiryCommands interface {
	ExpireVouchers(ctx context.Context) (int, error)
	ExpireCoupons(ctx context.Context) (int, error)
}

type promotionExpiryUseCaseImpl struct {
	uow        shared.UnitOfWork
	promotions shared.PromotionRepository
	clock      clock.Clock
	policy     shared.Policy
	logger     *slog.Logger
}

func NewPromotionExpiryUseCase(
	uow shared.UnitOfWork,
	promotions shared.PromotionRepository,
	clk clock.Clock,
	policy shared.Policy,
	logger *slog.Logger,
) PromotionExpiryCommands {
	return &promotionExpiryUseCaseImpl{
		uow:        uow,
		promotions: promotions,
		clock:      clk,
		policy:     policy,
		logger:     logger,
	}
}

// ExpireVouchers expires active vouchers whose expiry date is before today in the business timezone.
func (uc *promotionExpiryUseCaseImpl) ExpireVouchers(ctx context.Context) (int, error) {
	cutoff := voucher.ExpiryCutoff(clock.Today(uc.clock, uc.policy.Location))

	var expired []*voucher.Voucher
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		expired, err = uc.promotions.ExpireVouchers(ctx, db, cutoff)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "voucher expiry sweep failed")
	}

	for _, v := range expired {
		uc.logger.Debug("voucher expired",
			slog.String("voucher_id", v.ID().String()),
			slog.String("code", v.Code()),
			slog.String("expiry_date", v.ExpiryDate().Format(time.DateOnly)))
	}
	if len(expired) > 0 {
		uc.logger.Info("vouchers expired", slog.Int("count", len(expired)), slog.String("cutoff", cutoff.Format(time.DateOnly)))
	}
	return len(expired), nil
}

// ExpireCoupons expires active coupons whose expires-at has passed.
func (uc *promotionExpiryUseCaseImpl) ExpireCoupons(ctx context.Context) (int, error) {
	cutoff := coupon.ExpiryCutoff(uc.clock.Now())

	var expired []*coupon.Coupon
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		expired, err = uc.promotions.ExpireCoupons(ctx, db, cutoff)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "coupon expiry sweep failed")
	}

	for _, c := range expired {
		uc.logger.Debug("coupon expired",
			slog.String("coupon_id", c.ID().String()),
			slog.String("code", c.Code()),
			slog.Time("expires_at", c.ExpiresAt()))
	}
	if len(expired) > 0 {
		uc.logger.Info("coupons expired", slog.Int("count", len(expired)))
	}
	return len(expired), nil
}
