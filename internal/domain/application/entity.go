package application

import (
	"time"

	"github.com/google/uuid"

	"talentgate/internal/domain/applicant"
	"talentgate/internal/domain/job"
)

type Application struct {
	ID                     uuid.UUID `json:"id"`
	JobPostingID           uuid.UUID `json:"jobPostingId"`
	ApplicantID            uuid.UUID `json:"applicantId"`
	YearsOfExperience      int       `json:"yearsOfExperience"`
	HighestEducation       string    `json:"highestEducation"`
	CoverLetter            string    `json:"coverLetter,omitempty"`
	CVFileName             string    `json:"cvFileName"`
	ProfilePictureFileName string    `json:"profilePictureFileName,omitempty"`
	ApplicationDate        time.Time `json:"applicationDate"`
}

// Detail is the recruiter-facing projection: one application joined with
// its applicant and job posting.
type Detail struct {
	Application
	Applicant  applicant.Applicant `json:"applicant"`
	JobPosting job.JobPosting      `json:"jobPosting"`
}
