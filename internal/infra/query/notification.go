package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
}

const createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

const claimQueuedNotificationJobs = `WITH due AS (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at, id
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
UPDATE notification_jobs j
SET run_at = $2, updated_at = now()
FROM due
WHERE j.id = due.id
RETURNING j.id, j.kind, j.topic, j.payload, j.run_at, j.attempts, j.status, j.last_error`

type ClaimQueuedNotificationJobsParams struct {
	Now        pgtype.Timestamptz
	LeaseUntil pgtype.Timestamptz
	Limit      int32
}

// ClaimQueuedNotificationJobs leases due jobs by pushing run_at to LeaseUntil, skipping
// rows another relay is claiming at the same moment.
func (q *Queries) ClaimQueuedNotificationJobs(ctx context.Context, db DBTX, arg ClaimQueuedNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimQueuedNotificationJobs, arg.Now, arg.LeaseUntil, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationJob, error) {
		var j NotificationJob
		err := row.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts, &j.Status, &j.LastError)
		return j, err
	})
}

const markNotificationJobSent = `UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id)
	return err
}

const markNotificationJobFailed = `UPDATE notification_jobs
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'queued' END,
    run_at = $4,
    updated_at = now()
WHERE id = $1`

type MarkNotificationJobFailedParams struct {
	ID          uuid.UUID
	LastError   pgtype.Text
	MaxAttempts int32
	RetryAt     pgtype.Timestamptz
}

func (q *Queries) MarkNotificationJobFailed(ctx context.Context, db DBTX, arg MarkNotificationJobFailedParams) error {
	_, err := db.Exec(ctx, markNotificationJobFailed, arg.ID, arg.LastError, arg.MaxAttempts, arg.RetryAt)
	return err
}
