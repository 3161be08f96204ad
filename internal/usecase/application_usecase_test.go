package usecase

import (
	"context"
	"errors"
	"testing"

	"talentgate/internal/domain/applicant"
	"talentgate/internal/domain/application"
	"talentgate/internal/domain/job"

	"github.com/google/uuid"
)

type mockApplicantRepo struct {
	upserts []applicant.Applicant
	byEmail map[string]uuid.UUID
	err     error
}

func (m *mockApplicantRepo) Upsert(_ context.Context, a applicant.Applicant) (applicant.Applicant, error) {
	if m.err != nil {
		return applicant.Applicant{}, m.err
	}
	if m.byEmail == nil {
		m.byEmail = map[string]uuid.UUID{}
	}
	if id, ok := m.byEmail[a.Email]; ok {
		a.ID = id
	} else {
		m.byEmail[a.Email] = a.ID
	}
	m.upserts = append(m.upserts, a)
	return a, nil
}

type mockJobRepo struct {
	existing map[uuid.UUID]bool
	err      error
}

func (m *mockJobRepo) Create(context.Context, job.JobPosting) (job.JobPosting, error) {
	return job.JobPosting{}, nil
}
func (m *mockJobRepo) List(context.Context, job.Filter) ([]job.JobPosting, error) { return nil, nil }
func (m *mockJobRepo) GetByID(context.Context, uuid.UUID) (job.JobPosting, error) {
	return job.JobPosting{}, job.ErrNotFound
}
func (m *mockJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}
func (m *mockJobRepo) Update(context.Context, uuid.UUID, job.Update) (job.JobPosting, error) {
	return job.JobPosting{}, job.ErrNotFound
}
func (m *mockJobRepo) Delete(context.Context, uuid.UUID) error { return job.ErrNotFound }
func (m *mockJobRepo) Analytics(context.Context) ([]job.Analytics, error) { return nil, nil }

type mockApplicationRepo struct {
	created   []application.Application
	applied   map[string]bool
	createErr error
}

func pairKey(jobID, applicantID uuid.UUID) string {
	return jobID.String() + "/" + applicantID.String()
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.createErr != nil {
		return application.Application{}, m.createErr
	}
	if m.applied == nil {
		m.applied = map[string]bool{}
	}
	key := pairKey(a.JobPostingID, a.ApplicantID)
	if m.applied[key] {
		return application.Application{}, application.ErrDuplicate
	}
	m.applied[key] = true
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockApplicationRepo) ExistsForJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	return m.applied[pairKey(jobID, applicantID)], nil
}

func (m *mockApplicationRepo) ListAll(context.Context) ([]application.Detail, error) {
	return nil, nil
}

func (m *mockApplicationRepo) ListByJobPosting(context.Context, uuid.UUID) ([]application.Detail, error) {
	return nil, nil
}

type recordingNotifier struct {
	events int
}

func (n *recordingNotifier) ApplicationReceived(application.Application, string) { n.events++ }

func validInput(jobID uuid.UUID) SubmitApplicationInput {
	return SubmitApplicationInput{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@x.com",
		YearsOfExperience: 3,
		HighestEducation:  "Bachelor's Degree",
		JobPostingID:      jobID,
		CVFileName:        "cvFile-1-abc.pdf",
	}
}

func TestApplicationUsecase_Submit_Success(t *testing.T) {
	jobID := uuid.New()
	applicants := &mockApplicantRepo{}
	apps := &mockApplicationRepo{}
	notifier := &recordingNotifier{}
	uc := NewApplicationUsecase(applicants, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, apps, notifier, nil)

	created, err := uc.Submit(context.Background(), validInput(jobID))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.JobPostingID != jobID {
		t.Fatalf("unexpected job posting id")
	}
	if len(applicants.upserts) != 1 {
		t.Fatalf("expected 1 applicant upsert, got %d", len(applicants.upserts))
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps.created))
	}
	if notifier.events != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.events)
	}
}

func TestApplicationUsecase_Submit_SameEmailTwoJobs_OneApplicant(t *testing.T) {
	jobA := uuid.New()
	jobB := uuid.New()
	applicants := &mockApplicantRepo{}
	apps := &mockApplicationRepo{}
	uc := NewApplicationUsecase(applicants, &mockJobRepo{existing: map[uuid.UUID]bool{jobA: true, jobB: true}}, apps, nil, nil)

	if _, err := uc.Submit(context.Background(), validInput(jobA)); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if _, err := uc.Submit(context.Background(), validInput(jobB)); err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	if len(applicants.byEmail) != 1 {
		t.Fatalf("expected 1 distinct applicant, got %d", len(applicants.byEmail))
	}
	if len(apps.created) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps.created))
	}
	if apps.created[0].ApplicantID != apps.created[1].ApplicantID {
		t.Fatalf("expected both applications to reference the same applicant")
	}
}

func TestApplicationUsecase_Submit_Duplicate_Conflict(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{}
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, apps, nil, nil)

	if _, err := uc.Submit(context.Background(), validInput(jobID)); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	_, err := uc.Submit(context.Background(), validInput(jobID))
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected exactly 1 application, got %d", len(apps.created))
	}
}

func TestApplicationUsecase_Submit_RaceLoser_MappedToConflict(t *testing.T) {
	// Pre-check passes but the insert loses to a concurrent submission;
	// the store's unique violation must surface as ErrAlreadyApplied.
	jobID := uuid.New()
	apps := &mockApplicationRepo{createErr: application.ErrDuplicate}
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, apps, nil, nil)

	_, err := uc.Submit(context.Background(), validInput(jobID))
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationUsecase_Submit_UnknownJob_NotFound_KeepsApplicant(t *testing.T) {
	applicants := &mockApplicantRepo{}
	apps := &mockApplicationRepo{}
	uc := NewApplicationUsecase(applicants, &mockJobRepo{}, apps, nil, nil)

	_, err := uc.Submit(context.Background(), validInput(uuid.New()))
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(applicants.upserts) != 1 {
		t.Fatalf("expected the applicant upsert to remain, got %d", len(applicants.upserts))
	}
	if len(apps.created) != 0 {
		t.Fatalf("expected no application rows, got %d", len(apps.created))
	}
}

func TestApplicationUsecase_Submit_MissingCV_Invalid(t *testing.T) {
	jobID := uuid.New()
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, &mockApplicationRepo{}, nil, nil)

	in := validInput(jobID)
	in.CVFileName = ""
	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationUsecase_Submit_UnknownEducation_Invalid(t *testing.T) {
	jobID := uuid.New()
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, &mockApplicationRepo{}, nil, nil)

	in := validInput(jobID)
	in.HighestEducation = "Street Smarts"
	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationUsecase_Submit_BadEmail_Invalid(t *testing.T) {
	jobID := uuid.New()
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, &mockApplicationRepo{}, nil, nil)

	in := validInput(jobID)
	in.Email = "not-an-email"
	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationUsecase_GetForJobPosting_UnknownJob(t *testing.T) {
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{}, &mockApplicationRepo{}, nil, nil)

	_, err := uc.GetForJobPosting(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationUsecase_GetForJobPosting_EmptyList_OK(t *testing.T) {
	jobID := uuid.New()
	uc := NewApplicationUsecase(&mockApplicantRepo{}, &mockJobRepo{existing: map[uuid.UUID]bool{jobID: true}}, &mockApplicationRepo{}, nil, nil)

	out, err := uc.GetForJobPosting(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}
