package response

import (
	"time"

	"github.com/google/uuid"
)

type OccupiedSeatsResponse struct {
	ShowtimeID uuid.UUID   `json:"showtime_id"`
	SeatIDs    []uuid.UUID `json:"seat_ids"`
	AsOf       time.Time   `json:"as_of"`
}

type MovieRefreshResponse struct {
	Updated int `json:"updated"`
}

type JobRunResponse struct {
	Job      string `json:"job"`
	Affected int    `json:"affected"`
}
