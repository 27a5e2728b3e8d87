package queries

import (
	"context"
	"time"

	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/queries/seat.go -package=queriesmock

type OccupiedSeatsView struct {
	ShowtimeID uuid.UUID   `json:"showtime_id"`
	SeatIDs    []uuid.UUID `json:"seat_ids"`
	AsOf       time.Time   `json:"as_of"`
}

type SeatReadStore interface {
	ShowtimeExists(ctx context.Context, showtimeID uuid.UUID) (bool, error)
	OccupiedSeatIDs(ctx context.Context, showtimeID uuid.UUID, holdCutoff time.Time) ([]uuid.UUID, error)
}

type SeatQueries interface {
	OccupiedSeats(ctx context.Context, showtimeID uuid.UUID) (*OccupiedSeatsView, error)
}

type seatQueriesImpl struct {
	store  SeatReadStore
	clock  clock.Clock
	policy shared.Policy
}

func NewSeatQueries(store SeatReadStore, clk clock.Clock, policy shared.Policy) SeatQueries {
	return &seatQueriesImpl{store: store, clock: clk, policy: policy}
}

// OccupiedSeats lists seats held by confirmed bookings or by pending bookings still inside their hold.
func (q *seatQueriesImpl) OccupiedSeats(ctx context.Context, showtimeID uuid.UUID) (*OccupiedSeatsView, error) {
	exists, err := q.store.ShowtimeExists(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrShowtimeNotFound
	}

	now := q.clock.Now()
	ids, err := q.store.OccupiedSeatIDs(ctx, showtimeID, now.Add(-q.policy.HoldTTL))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return &OccupiedSeatsView{ShowtimeID: showtimeID, SeatIDs: ids, AsOf: now}, nil
}
