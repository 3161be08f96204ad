package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"talentgate/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobNotFound  = errors.New("job posting not found")
)

const (
	jobListCachePrefix  = "jobs:list:"
	jobListCachePattern = "jobs:list:*"
	jobListCacheTTL     = 5 * time.Minute
)

type JobCreateInput struct {
	Title          string
	Description    string
	RequiredSkills []string
	Department     string
	ClosingDate    time.Time
}

type JobUsecase interface {
	Create(ctx context.Context, in JobCreateInput) (job.JobPosting, error)
	List(ctx context.Context, f job.Filter) ([]job.JobPosting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.JobPosting, error)
	Update(ctx context.Context, id uuid.UUID, u job.Update) (job.JobPosting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Analytics(ctx context.Context) ([]job.Analytics, error)
}

type Job struct {
	jobs   job.Repository
	cache  Cache
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs job.Repository, cache Cache, logger *log.Logger) *Job {
	return &Job{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

func (u *Job) Create(ctx context.Context, in JobCreateInput) (job.JobPosting, error) {
	if err := u.validateCreate(in); err != nil {
		return job.JobPosting{}, err
	}

	created, err := u.jobs.Create(ctx, job.JobPosting{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		RequiredSkills: normalizeSkills(in.RequiredSkills),
		Department:     strings.TrimSpace(in.Department),
		ClosingDate:    in.ClosingDate,
	})
	if err != nil {
		return job.JobPosting{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	return created, nil
}

func (u *Job) List(ctx context.Context, f job.Filter) ([]job.JobPosting, error) {
	key := jobListCacheKey(f)

	if u.cache != nil {
		var cached []job.JobPosting
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, jobs, jobListCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("job list cache set failed | key=%s err=%v", key, err)
		}
	}

	return jobs, nil
}

func (u *Job) GetByID(ctx context.Context, id uuid.UUID) (job.JobPosting, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.JobPosting{}, ErrJobNotFound
		}
		return job.JobPosting{}, ErrInternal
	}
	return j, nil
}

func (u *Job) Update(ctx context.Context, id uuid.UUID, upd job.Update) (job.JobPosting, error) {
	if upd.Empty() {
		return job.JobPosting{}, ErrInvalidInput
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return job.JobPosting{}, ErrInvalidInput
	}
	if upd.Department != nil && strings.TrimSpace(*upd.Department) == "" {
		return job.JobPosting{}, ErrInvalidInput
	}
	if upd.ClosingDate != nil && !upd.ClosingDate.After(u.now()) {
		return job.JobPosting{}, ErrInvalidInput
	}
	if upd.RequiredSkills != nil {
		upd.RequiredSkills = normalizeSkills(upd.RequiredSkills)
	}

	updated, err := u.jobs.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.JobPosting{}, ErrJobNotFound
		}
		return job.JobPosting{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	return updated, nil
}

func (u *Job) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	u.invalidateListCache(ctx)
	return nil
}

func (u *Job) Analytics(ctx context.Context) ([]job.Analytics, error) {
	out, err := u.jobs.Analytics(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Job) validateCreate(in JobCreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Department) == "" {
		return ErrInvalidInput
	}
	if in.ClosingDate.IsZero() || !in.ClosingDate.After(u.now()) {
		return ErrInvalidInput
	}
	return nil
}

func (u *Job) invalidateListCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobListCachePattern); err != nil && u.logger != nil {
		u.logger.Printf("job list cache invalidation failed | err=%v", err)
	}
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func jobListCacheKey(f job.Filter) string {
	if f.Empty() {
		return jobListCachePrefix + "all"
	}
	skills := append([]string(nil), f.Skills...)
	for i := range skills {
		skills[i] = strings.ToLower(strings.TrimSpace(skills[i]))
	}
	sort.Strings(skills)

	var b strings.Builder
	b.WriteString(jobListCachePrefix)
	b.WriteString(strings.ToLower(strings.TrimSpace(f.Title)))
	b.WriteString("|")
	b.WriteString(strings.ToLower(strings.TrimSpace(f.Department)))
	b.WriteString("|")
	b.WriteString(strings.Join(skills, ","))
	return b.String()
}
