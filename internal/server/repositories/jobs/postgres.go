package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/benfordapp/internal/common"
	"github.com/avolkovs/benfordapp/internal/dbx"
	"github.com/avolkovs/benfordapp/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {

	query :=
		`INSERT INTO jobs (userid, status, original_filename, document_key, result_key)
         VALUES ($1, 'pending', $2, $3, '')
		 RETURNING jobid
		 `

	err := r.db.QueryRowContext(ctx, query,
		job.UserID, job.OriginalFileName, job.DocumentKey).Scan(&job.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	job.Status = models.JobStatusPending
	job.ResultKey = ""
	return job, nil
}

// CompleteOrFail matches on document key because the triggering event only
// carries the document's key, not the job id. The status predicate keeps the
// update idempotent-safe: once a row is terminal it no longer matches.
func (r *PostgresRepository) CompleteOrFail(ctx context.Context, documentKey string, status models.JobStatus, resultKey string) (int64, error) {

	if !status.Terminal() {
		return 0, fmt.Errorf("%w: non-terminal status %q", common.ErrInvalidInput, status)
	}

	query :=
		`UPDATE jobs SET status = $2, result_key = $3
		 WHERE document_key = $1 AND status = 'pending'
		 `

	res, err := r.db.ExecContext(ctx, query, documentKey, string(status), resultKey)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	modified, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return modified, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query :=
		`SELECT jobid, userid, status, original_filename, document_key, result_key FROM jobs
		 WHERE jobid = $1
		 `

	job := &models.Job{}
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.UserID, &status, &job.OriginalFileName, &job.DocumentKey, &job.ResultKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	job.Status = models.JobStatus(status)
	return job, nil
}

func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Job, error) {
	query :=
		`SELECT jobid, userid, status, original_filename, document_key, result_key FROM jobs
		 WHERE userid = $1
		 ORDER BY jobid
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Job
	for rows.Next() {
		job := &models.Job{}
		var status string
		if err := rows.Scan(&job.ID, &job.UserID, &status, &job.OriginalFileName, &job.DocumentKey, &job.ResultKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		job.Status = models.JobStatus(status)
		result = append(result, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
