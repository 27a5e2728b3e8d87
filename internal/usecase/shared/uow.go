package shared

import (
	"context"
	"time"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/domain/coupon"
	"cinemaplus/internal/domain/movie"
	"cinemaplus/internal/domain/voucher"
	"cinemaplus/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Movies() MovieRepository
	Promotions() PromotionRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type BookingRepository interface {
	ListOverduePendingIDs(ctx context.Context, db query.DBTX, cutoff time.Time) ([]uuid.UUID, error)
	// FindForUpdate locks the booking row for the rest of the transaction.
	FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, db query.DBTX, b *booking.Booking, from booking.Status) error
	ReleaseSeats(ctx context.Context, db query.DBTX, bookingID uuid.UUID, at time.Time) (int64, error)
}

type MovieRepository interface {
	ListAll(ctx context.Context, db query.DBTX) ([]*movie.Movie, error)
	UpdateStatus(ctx context.Context, db query.DBTX, id uuid.UUID, status movie.Status) error
}

type PromotionRepository interface {
	ExpireVouchers(ctx context.Context, db query.DBTX, cutoff time.Time) ([]*voucher.Voucher, error)
	ExpireCoupons(ctx context.Context, db query.DBTX, cutoff time.Time) ([]*coupon.Coupon, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimQueued leases due jobs by moving their run-at to leaseUntil, so a relay that
	// dies mid-batch hands them back once the lease passes.
	ClaimQueued(ctx context.Context, db query.DBTX, now, leaseUntil time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, db query.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, db query.DBTX, id uuid.UUID, lastError string, retryAt time.Time, maxAttempts int) error
}
