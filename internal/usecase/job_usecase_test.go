package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentgate/internal/domain/job"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	jobs      map[uuid.UUID]job.JobPosting
	listCalls int
	analytics []job.Analytics
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]job.JobPosting{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j job.JobPosting) (job.JobPosting, error) {
	j.CreatedAt = time.Now().UTC()
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobRepo) List(context.Context, job.Filter) ([]job.JobPosting, error) {
	f.listCalls++
	out := make([]job.JobPosting, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.JobPosting{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) Update(_ context.Context, id uuid.UUID, u job.Update) (job.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.JobPosting{}, job.ErrNotFound
	}
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Department != nil {
		j.Department = *u.Department
	}
	if u.ClosingDate != nil {
		j.ClosingDate = *u.ClosingDate
	}
	if u.RequiredSkills != nil {
		j.RequiredSkills = u.RequiredSkills
	}
	f.jobs[id] = j
	return j, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) Analytics(context.Context) ([]job.Analytics, error) {
	return f.analytics, nil
}

type fakeCache struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	f.entries[key] = []byte("x")
	f.sets++
	return nil
}

func (f *fakeCache) DeleteByPattern(context.Context, string) error {
	f.entries = map[string][]byte{}
	f.deletes++
	return nil
}

func validJobInput() JobCreateInput {
	return JobCreateInput{
		Title:          "Backend Engineer",
		Description:    "Build the hiring pipeline",
		RequiredSkills: []string{"Go", "PostgreSQL"},
		Department:     "Engineering",
		ClosingDate:    time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestJobUsecase_Create_PastClosingDate(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	in := validJobInput()
	in.ClosingDate = time.Now().Add(-time.Hour)
	_, err := uc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_MissingTitle(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	in := validJobInput()
	in.Title = "   "
	_, err := uc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_TrimsSkills(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)

	in := validJobInput()
	in.RequiredSkills = []string{" Go ", "", "SQL"}
	created, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(created.RequiredSkills) != 2 {
		t.Fatalf("expected 2 skills, got %v", created.RequiredSkills)
	}
	if created.RequiredSkills[0] != "Go" || created.RequiredSkills[1] != "SQL" {
		t.Fatalf("unexpected skills: %v", created.RequiredSkills)
	}
}

func TestJobUsecase_List_UsesCache(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeCache()
	uc := NewJobUsecase(repo, cache, nil)

	if _, err := uc.List(context.Background(), job.Filter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 1 || cache.sets != 1 {
		t.Fatalf("expected repo hit + cache fill, got calls=%d sets=%d", repo.listCalls, cache.sets)
	}

	if _, err := uc.List(context.Background(), job.Filter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cached second read, repo calls=%d", repo.listCalls)
	}
}

func TestJobUsecase_Create_InvalidatesListCache(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeCache()
	uc := NewJobUsecase(repo, cache, nil)

	if _, err := uc.List(context.Background(), job.Filter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), validJobInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.deletes != 1 {
		t.Fatalf("expected cache invalidation on create, deletes=%d", cache.deletes)
	}
}

func TestJobUsecase_Update_EmptyPatch(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	_, err := uc.Update(context.Background(), uuid.New(), job.Update{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Update_UnknownJob(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	title := "Retitled"
	_, err := uc.Update(context.Background(), uuid.New(), job.Update{Title: &title})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_Delete_UnknownJob(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	err := uc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_Analytics_Passthrough(t *testing.T) {
	repo := newFakeJobRepo()
	repo.analytics = []job.Analytics{
		{ID: uuid.New(), Title: "Backend Engineer", TotalApplicants: 3},
		{ID: uuid.New(), Title: "Data Analyst", TotalApplicants: 0},
	}
	uc := NewJobUsecase(repo, nil, nil)

	out, err := uc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].TotalApplicants != 3 || out[1].TotalApplicants != 0 {
		t.Fatalf("unexpected applicant counts: %+v", out)
	}
}
