package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job posting not found")

type Repository interface {
	Create(ctx context.Context, j JobPosting) (JobPosting, error)
	List(ctx context.Context, f Filter) ([]JobPosting, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobPosting, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, u Update) (JobPosting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Analytics(ctx context.Context) ([]Analytics, error)
}
