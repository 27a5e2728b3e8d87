package job

import (
	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/usecase/commands"
)

// Builtin returns the sweeps of the service with their configured schedules.
func Builtin(
	cfg config.JobsConfig,
	sweeper *commands.BookingExpirationSweeper,
	movies commands.MovieStatusCommands,
	promotions commands.PromotionExpiryCommands,
	relay *commands.OutboxRelay,
) []Job {
	return []Job{
		New(NameBookingExpiry, cfg.BookingExpirySpec, sweeper.Sweep),
		New(NameMovieStatus, cfg.MovieStatusSpec, movies.UpdateMovieStatuses),
		New(NameVoucherExpiry, cfg.VoucherExpirySpec, promotions.ExpireVouchers),
		New(NameCouponExpiry, cfg.CouponExpirySpec, promotions.ExpireCoupons),
		New(NameOutboxRelay, cfg.OutboxRelaySpec, relay.Relay),
	}
}
