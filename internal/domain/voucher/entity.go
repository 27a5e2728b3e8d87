package voucher

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

type Voucher struct {
	id         uuid.UUID
	code       string
	expiryDate time.Time
	status     Status
}

func ReconstructVoucher(id uuid.UUID, code string, expiryDate time.Time, status Status) *Voucher {
	return &Voucher{id: id, code: code, expiryDate: dateOf(expiryDate), status: status}
}

// ExpiryCutoff is the date bound for the set-based sweep: vouchers whose expiry
// date is strictly before it are expired, so the expiry date itself is still usable.
func ExpiryCutoff(today time.Time) time.Time {
	return dateOf(today)
}

func (v *Voucher) ID() uuid.UUID         { return v.id }
func (v *Voucher) Code() string          { return v.code }
func (v *Voucher) ExpiryDate() time.Time { return v.expiryDate }
func (v *Voucher) Status() Status        { return v.status }

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
