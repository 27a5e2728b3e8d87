package coupon

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

type Coupon struct {
	id        uuid.UUID
	code      string
	expiresAt time.Time
	status    Status
}

func ReconstructCoupon(id uuid.UUID, code string, expiresAt time.Time, status Status) *Coupon {
	return &Coupon{id: id, code: code, expiresAt: expiresAt, status: status}
}

// ExpiryCutoff is the instant bound for the coupon sweep: active coupons whose
// expires-at lies strictly before it are expired. Postgres keeps microseconds.
func ExpiryCutoff(now time.Time) time.Time {
	return now.UTC().Truncate(time.Microsecond)
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() string         { return c.code }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) Status() Status       { return c.status }
