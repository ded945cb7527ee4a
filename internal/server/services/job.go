package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"

	"github.com/avolkovs/benfordapp/internal/benford"
	"github.com/avolkovs/benfordapp/internal/common"
	"github.com/avolkovs/benfordapp/internal/logging"
	"github.com/avolkovs/benfordapp/internal/pdfx"
	"github.com/avolkovs/benfordapp/internal/server/blob"
	"github.com/avolkovs/benfordapp/internal/server/models"
	"github.com/avolkovs/benfordapp/internal/server/repositories/repomanager"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeText = "text/plain"
)

// BlobStore is the object-store surface JobService depends on.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// JobFailure carries the diagnostic recorded for a job that ended in the
// error state, surfaced to the owner on retrieval.
type JobFailure struct {
	Detail string
}

func (e *JobFailure) Error() string {
	return "ERROR: " + e.Detail
}

// JobService orchestrates the job lifecycle: Submit creates a pending job
// and uploads the document, Process analyzes a stored document and performs
// the terminal transition, Retrieve authorizes and returns the outcome.
//
// The three operations never share in-process state; all coordination goes
// through the job row and the blob store.
type JobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	extractor   pdfx.Extractor
	logger      logging.Logger
}

func NewJobService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, extractor pdfx.Extractor, logger logging.Logger) *JobService {
	return &JobService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		extractor:   extractor,
		logger:      logger,
	}
}

// Submit validates the filename, creates the pending job row, and uploads
// the document bytes. The row is inserted BEFORE the upload: the object's
// appearance in storage is what triggers Process, so the row must exist by
// the time the object becomes visible.
func (s *JobService) Submit(ctx context.Context, userID, fileName string, data []byte) (string, error) {
	if path.Ext(fileName) != ".pdf" {
		return "", fmt.Errorf("%w: expecting filename to have .pdf extension", common.ErrInvalidInput)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("%w: no such user", common.ErrNotFound)
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	documentKey := blob.DocumentKey(user.UserName, fileName)

	job, err := s.repomanager.Jobs(s.db).Create(ctx, &models.Job{
		UserID:           user.ID,
		OriginalFileName: fileName,
		DocumentKey:      documentKey,
	})
	if err != nil {
		return "", fmt.Errorf("creating job: %w", err)
	}

	if err := s.blobs.Put(ctx, documentKey, data, contentTypePDF); err != nil {
		return "", fmt.Errorf("%w: uploading document: %v", common.ErrInfrastructure, err)
	}

	s.logger.Info(ctx, "job submitted", "job_id", job.ID, "document_key", documentKey)
	return job.ID, nil
}

// Process analyzes the document stored under documentKey and performs the
// job's terminal transition. Any failure between download and result upload
// is converted into a one-line diagnostic artifact plus the error status;
// a job is never left pending after Process returns, unless the database
// update itself is unreachable (which is surfaced to the caller).
func (s *JobService) Process(ctx context.Context, documentKey string) error {
	resultKey, derivable := blob.ResultKey(documentKey)

	report, procErr := s.analyze(ctx, documentKey)
	if procErr == nil {
		if err := s.blobs.Put(ctx, resultKey, report, contentTypeText); err != nil {
			procErr = fmt.Errorf("uploading results: %w", err)
		}
	}

	if procErr == nil {
		s.logger.Info(ctx, "job completed", "document_key", documentKey, "result_key", resultKey)
		return s.finish(ctx, documentKey, models.JobStatusCompleted, resultKey)
	}

	s.logger.Error(ctx, "job processing failed", "document_key", documentKey, "error", procErr.Error())

	// Best-effort error artifact so the owner can see the diagnostic.
	artifactKey := ""
	if derivable {
		diag := []byte(procErr.Error() + "\n")
		if err := s.blobs.Put(ctx, resultKey, diag, contentTypeText); err != nil {
			s.logger.Error(ctx, "uploading error artifact failed", "result_key", resultKey, "error", err.Error())
		} else {
			artifactKey = resultKey
		}
	}

	return s.finish(ctx, documentKey, models.JobStatusError, artifactKey)
}

// analyze downloads the document, extracts per-page text, and serializes
// the digit histogram report.
func (s *JobService) analyze(ctx context.Context, documentKey string) ([]byte, error) {
	if !blob.IsDocumentKey(documentKey) {
		return nil, errors.New("expecting document to have .pdf extension")
	}

	data, err := s.blobs.Get(ctx, documentKey)
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}

	pages, err := s.extractor.Pages(data)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	counts := benford.CountFirstDigits(pages)
	return benford.FormatReport(len(pages), counts), nil
}

// finish applies the atomic terminal transition. Zero modified rows means
// the expected pending row was missing or already terminal; that is fatal
// for this invocation and is surfaced, never retried — the artifact is
// already uploaded for manual recovery.
func (s *JobService) finish(ctx context.Context, documentKey string, status models.JobStatus, resultKey string) error {
	modified, err := s.repomanager.Jobs(s.db).CompleteOrFail(ctx, documentKey, status, resultKey)
	if err != nil {
		return fmt.Errorf("%w: updating job record: %v", common.ErrInfrastructure, err)
	}
	if modified == 0 {
		return fmt.Errorf("%w: job record for %s missing or already terminal", common.ErrInfrastructure, documentKey)
	}
	return nil
}

// Retrieve authorizes the requester and returns the job's outcome. The
// ownership check runs before any status-based branching, so nothing about
// a foreign job is ever revealed.
func (s *JobService) Retrieve(ctx context.Context, requesterUserID, jobID string) ([]byte, error) {
	job, err := s.repomanager.Jobs(s.db).GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: no such job", common.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up job: %w", err)
	}

	if job.UserID != requesterUserID {
		return nil, fmt.Errorf("%w: job does not belong to user", common.ErrForbidden)
	}

	switch job.Status {
	case models.JobStatusPending:
		return nil, common.ErrJobNotReady

	case models.JobStatusError:
		if job.ResultKey == "" {
			return nil, common.ErrJobUnknownFailure
		}
		artifact, err := s.blobs.Get(ctx, job.ResultKey)
		if err != nil {
			return nil, fmt.Errorf("%w: downloading error artifact: %v", common.ErrInfrastructure, err)
		}
		if len(artifact) == 0 {
			return nil, common.ErrJobEmptyResult
		}
		return nil, &JobFailure{Detail: benford.FirstLine(artifact)}

	case models.JobStatusCompleted:
		result, err := s.blobs.Get(ctx, job.ResultKey)
		if err != nil {
			return nil, fmt.Errorf("%w: downloading results: %v", common.ErrInfrastructure, err)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("%w: %s", common.ErrJobUnexpectedState, job.Status)
	}
}

// List returns the caller's jobs, newest last.
func (s *JobService) List(ctx context.Context, userID string) ([]*models.Job, error) {
	result, err := s.repomanager.Jobs(s.db).SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return result, nil
}
