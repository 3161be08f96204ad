package dto

import (
	"time"

	"talentgate/internal/domain/application"
)

type ApplicantSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type JobPostingSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	ClosingDate time.Time `json:"closingDate"`
}

type ApplicationResponse struct {
	ID                     string            `json:"id"`
	JobPostingID           string            `json:"jobPostingId"`
	ApplicantID            string            `json:"applicantId"`
	YearsOfExperience      int               `json:"yearsOfExperience"`
	HighestEducation       string            `json:"highestEducation"`
	CoverLetter            string            `json:"coverLetter,omitempty"`
	CVFileName             string            `json:"cvFileName"`
	ProfilePictureFileName string            `json:"profilePictureFileName,omitempty"`
	ApplicationDate        time.Time         `json:"applicationDate"`
	Applicant              ApplicantSummary  `json:"applicant"`
	JobPosting             JobPostingSummary `json:"jobPosting"`
}

func FromApplicationDetail(d application.Detail) ApplicationResponse {
	return ApplicationResponse{
		ID:                     d.ID.String(),
		JobPostingID:           d.JobPostingID.String(),
		ApplicantID:            d.ApplicantID.String(),
		YearsOfExperience:      d.YearsOfExperience,
		HighestEducation:       d.HighestEducation,
		CoverLetter:            d.CoverLetter,
		CVFileName:             d.CVFileName,
		ProfilePictureFileName: d.ProfilePictureFileName,
		ApplicationDate:        d.ApplicationDate,
		Applicant: ApplicantSummary{
			ID:        d.Applicant.ID.String(),
			FirstName: d.Applicant.FirstName,
			LastName:  d.Applicant.LastName,
			Email:     d.Applicant.Email,
		},
		JobPosting: JobPostingSummary{
			ID:          d.JobPosting.ID.String(),
			Title:       d.JobPosting.Title,
			Department:  d.JobPosting.Department,
			ClosingDate: d.JobPosting.ClosingDate,
		},
	}
}

func FromApplicationDetails(details []application.Detail) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromApplicationDetail(d))
	}
	return out
}
