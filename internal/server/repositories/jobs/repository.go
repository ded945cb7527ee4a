// Package jobs persists job records and owns the job lifecycle transition.
package jobs

import (
	"context"

	"github.com/avolkovs/benfordapp/internal/server/models"
)

type Repository interface {
	// Create inserts a pending job and returns it with the store-assigned
	// id filled in. Id assignment is atomic with the insert.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// CompleteOrFail performs the single atomic update that sets status and
	// result key together, matched by document key. Only a pending row
	// matches, so re-applying a terminal transition affects 0 rows. The
	// affected-row count is returned; callers must treat 0 as a hard
	// failure when a transition was expected.
	CompleteOrFail(ctx context.Context, documentKey string, status models.JobStatus, resultKey string) (int64, error)

	GetByID(ctx context.Context, id string) (*models.Job, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Job, error)
}
