package readstore

import (
	"context"
	"time"

	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/readstore/seat.go -package=readstoremock

type SeatReadQueries interface {
	ShowtimeExists(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
	ListOccupiedSeatIDs(ctx context.Context, db query.DBTX, arg query.ListOccupiedSeatIDsParams) ([]uuid.UUID, error)
}

type SeatReadStore struct {
	queries SeatReadQueries
	db      query.DBTX
}

func NewSeatReadStore(queries SeatReadQueries, db query.DBTX) *SeatReadStore {
	return &SeatReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SeatReadStore) ShowtimeExists(ctx context.Context, showtimeID uuid.UUID) (bool, error) {
	exists, err := r.queries.ShowtimeExists(ctx, r.db, showtimeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up showtime", err)
	}
	return exists, nil
}

func (r *SeatReadStore) OccupiedSeatIDs(ctx context.Context, showtimeID uuid.UUID, holdCutoff time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListOccupiedSeatIDs(ctx, r.db, query.ListOccupiedSeatIDsParams{
		ShowtimeID: showtimeID,
		HoldCutoff: holdCutoff,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied seats", err)
	}
	return ids, nil
}
