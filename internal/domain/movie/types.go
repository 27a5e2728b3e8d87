package movie

import "errors"

var ErrInvalidStatus = errors.New("invalid movie status")

type Status string

const (
	StatusComingSoon Status = "COMING_SOON"
	StatusNowShowing Status = "NOW_SHOWING"
	StatusEnded      Status = "ENDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusComingSoon, StatusNowShowing, StatusEnded:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
