// Package job runs the periodic sweeps on a cron schedule and on demand.
package job

import (
	"context"
	"time"
)

// Names of the registered jobs, also used by POST /api/admin/jobs/:name/run.
const (
	NameBookingExpiry = "booking-expiry"
	NameMovieStatus   = "movie-status"
	NameVoucherExpiry = "voucher-expiry"
	NameCouponExpiry  = "coupon-expiry"
	NameOutboxRelay   = "outbox-relay"
)

// Job is one unit of scheduled work. Run returns how many records it affected.
type Job interface {
	Name() string
	Spec() string
	Run(ctx context.Context) (int, error)
}

// Locker guards a job across replicas.
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (release func(context.Context), ok bool, err error)
}

type RunFunc func(ctx context.Context) (int, error)

type funcJob struct {
	name string
	spec string
	run  RunFunc
}

func New(name, spec string, run RunFunc) Job {
	return &funcJob{name: name, spec: spec, run: run}
}

func (j *funcJob) Name() string { return j.name }
func (j *funcJob) Spec() string { return j.spec }

func (j *funcJob) Run(ctx context.Context) (int, error) {
	return j.run(ctx)
}
