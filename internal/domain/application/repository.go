package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("already applied for this job posting")
)

type Repository interface {
	// Create persists the application. A unique-constraint violation on
	// (job_posting_id, applicant_id) is returned as ErrDuplicate.
	Create(ctx context.Context, a Application) (Application, error)
	ExistsForJobAndApplicant(ctx context.Context, jobPostingID, applicantID uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]Detail, error)
	ListByJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]Detail, error)
}
