package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"talentgate/internal/domain/applicant"
	"talentgate/internal/domain/application"
	"talentgate/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied    = errors.New("already applied for this job posting")
	ErrApplicantConflict = errors.New("applicant with this email already exists")
)

// EducationLevels is the accepted highestEducation vocabulary, matching
// the options offered by the submission form.
var EducationLevels = []string{
	"High School",
	"Diploma",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctorate",
}

type SubmitApplicationInput struct {
	FirstName              string
	LastName               string
	Email                  string
	YearsOfExperience      int
	HighestEducation       string
	JobPostingID           uuid.UUID
	CoverLetter            string
	CVFileName             string
	ProfilePictureFileName string
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (application.Application, error)
	GetAll(ctx context.Context) ([]application.Detail, error)
	GetForJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]application.Detail, error)
}

type Application struct {
	applicants applicant.Repository
	jobs       job.Repository
	apps       application.Repository
	notifier   ApplicationNotifier
	logger     *log.Logger
}

func NewApplicationUsecase(
	applicants applicant.Repository,
	jobs job.Repository,
	apps application.Repository,
	notifier ApplicationNotifier,
	logger *log.Logger,
) *Application {
	return &Application{
		applicants: applicants,
		jobs:       jobs,
		apps:       apps,
		notifier:   notifier,
		logger:     logger,
	}
}

// Submit resolves the applicant by email, verifies the job posting, and
// creates the application. The applicant upsert is intentionally left in
// place when a later step fails: applicant identity is independent of any
// one job.
func (u *Application) Submit(ctx context.Context, in SubmitApplicationInput) (application.Application, error) {
	if err := validateSubmission(&in); err != nil {
		return application.Application{}, err
	}

	ap, err := u.applicants.Upsert(ctx, applicant.Applicant{
		ID:        uuid.New(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		if errors.Is(err, applicant.ErrEmailTaken) {
			return application.Application{}, ErrApplicantConflict
		}
		return application.Application{}, ErrInternal
	}

	exists, err := u.jobs.ExistsByID(ctx, in.JobPostingID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, ErrJobNotFound
	}

	// Friendlier-path check only; the compound unique constraint is the
	// correctness guarantee under concurrent submissions.
	applied, err := u.apps.ExistsForJobAndApplicant(ctx, in.JobPostingID, ap.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if applied {
		return application.Application{}, ErrAlreadyApplied
	}

	created, err := u.apps.Create(ctx, application.Application{
		ID:                     uuid.New(),
		JobPostingID:           in.JobPostingID,
		ApplicantID:            ap.ID,
		YearsOfExperience:      in.YearsOfExperience,
		HighestEducation:       in.HighestEducation,
		CoverLetter:            in.CoverLetter,
		CVFileName:             in.CVFileName,
		ProfilePictureFileName: in.ProfilePictureFileName,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationReceived(created, ap.FirstName+" "+ap.LastName)
	}

	return created, nil
}

func (u *Application) GetAll(ctx context.Context) ([]application.Detail, error) {
	out, err := u.apps.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// GetForJobPosting verifies the job exists before listing, so an empty
// result means "no applicants yet" rather than "no such job".
func (u *Application) GetForJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]application.Detail, error) {
	exists, err := u.jobs.ExistsByID(ctx, jobPostingID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	out, err := u.apps.ListByJobPosting(ctx, jobPostingID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func validateSubmission(in *SubmitApplicationInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.HighestEducation = strings.TrimSpace(in.HighestEducation)
	in.CoverLetter = strings.TrimSpace(in.CoverLetter)

	if in.FirstName == "" || in.LastName == "" {
		return ErrInvalidInput
	}
	if in.Email == "" {
		return ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ErrInvalidInput
	}
	if in.YearsOfExperience < 0 {
		return ErrInvalidInput
	}
	if !validEducation(in.HighestEducation) {
		return ErrInvalidInput
	}
	if in.JobPostingID == uuid.Nil {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.CVFileName) == "" {
		return ErrInvalidInput
	}
	return nil
}

func validEducation(level string) bool {
	for _, l := range EducationLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
