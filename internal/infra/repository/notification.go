package repository

import (
	"context"
	"time"

	"cinemaplus/internal/infra"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/pgconv"
	"cinemaplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification.go -package=repositorymock

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimQueuedNotificationJobs(ctx context.Context, db query.DBTX, arg query.ClaimQueuedNotificationJobsParams) ([]query.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db query.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db query.DBTX, arg query.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, db query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.NotificationStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimQueued(ctx context.Context, db query.DBTX, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimQueuedNotificationJobs(ctx, db, query.ClaimQueuedNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, db query.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed records the error and reschedules the job at retryAt, or parks it as
// failed once maxAttempts is reached.
func (r *NotificationRepository) MarkFailed(ctx context.Context, db query.DBTX, id uuid.UUID, lastError string, retryAt time.Time, maxAttempts int) error {
	err := r.queries.MarkNotificationJobFailed(ctx, db, query.MarkNotificationJobFailedParams{
		ID:          id,
		LastError:   pgconv.StringToPgtype(lastError),
		MaxAttempts: int32(maxAttempts),
		RetryAt:     pgconv.TimeToPgtype(retryAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
