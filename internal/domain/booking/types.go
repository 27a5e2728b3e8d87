package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsSeats reports whether seats booked under this status stay reserved.
// A pending booking additionally needs to be within its hold window.
func (s Status) HoldsSeats() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Event names carried by the outbox when a booking changes state.
const (
	EventConfirmed = "booking.confirmed"
	EventExpired   = "booking.expired"
	EventCancelled = "booking.cancelled"
)

func EventFor(s Status) string {
	switch s {
	case StatusConfirmed:
		return EventConfirmed
	case StatusExpired:
		return EventExpired
	case StatusCancelled:
		return EventCancelled
	default:
		return ""
	}
}
