package shared

import (
	"time"

	"cinemaplus/internal/domain/user"

	"github.com/google/uuid"
)

// NotificationJob is a claimed outbox row.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// TopicBookingEvents is the broker queue booking lifecycle events are published to.
const TopicBookingEvents = "booking.events"

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// CanAccess allows owners and admins.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.Role.AtLeast(user.RoleAdmin)
}

// Policy carries the business settings use cases share.
type Policy struct {
	// HoldTTL is how long a pending booking keeps its seats.
	HoldTTL time.Duration
	// Location defines "today" for date-based rules.
	Location *time.Location
}
