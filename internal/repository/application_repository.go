package repository

import (
	"context"

	"talentgate/internal/database"
	"talentgate/internal/database/postgres"
	"talentgate/internal/domain/application"

	"github.com/google/uuid"
)

const applicationDetailQuery = `
SELECT
	a.id, a.job_posting_id, a.applicant_id,
	a.years_of_experience, a.highest_education,
	COALESCE(a.cover_letter, ''), a.cv_file_name, COALESCE(a.profile_picture_file_name, ''),
	a.application_date,
	ap.id, ap.first_name, ap.last_name, ap.email, ap.created_at, ap.updated_at,
	j.id, j.title, COALESCE(j.description, ''), j.required_skills, j.department, j.closing_date, j.created_at, j.updated_at
FROM applications a
JOIN applicants ap ON ap.id = a.applicant_id
JOIN job_postings j ON j.id = a.job_posting_id`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications
			(id, job_posting_id, applicant_id, years_of_experience, highest_education, cover_letter, cv_file_name, profile_picture_file_name)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''))
		 RETURNING id, job_posting_id, applicant_id, years_of_experience, highest_education,
			COALESCE(cover_letter, ''), cv_file_name, COALESCE(profile_picture_file_name, ''), application_date`,
		a.ID, a.JobPostingID, a.ApplicantID, a.YearsOfExperience, a.HighestEducation,
		a.CoverLetter, a.CVFileName, a.ProfilePictureFileName,
	)

	var out application.Application
	err := row.Scan(
		&out.ID, &out.JobPostingID, &out.ApplicantID,
		&out.YearsOfExperience, &out.HighestEducation,
		&out.CoverLetter, &out.CVFileName, &out.ProfilePictureFileName,
		&out.ApplicationDate,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "applications_job_applicant_key") {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ExistsForJobAndApplicant(ctx context.Context, jobPostingID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_posting_id = $1 AND applicant_id = $2)`,
		jobPostingID, applicantID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListAll(ctx context.Context) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx, applicationDetailQuery+` ORDER BY a.application_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

func (r *PostgresApplicationRepository) ListByJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx,
		applicationDetailQuery+` WHERE a.job_posting_id = $1 ORDER BY a.application_date ASC`,
		jobPostingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

func collectDetails(rows database.Rows) ([]application.Detail, error) {
	out := make([]application.Detail, 0)
	for rows.Next() {
		var d application.Detail
		err := rows.Scan(
			&d.ID, &d.JobPostingID, &d.ApplicantID,
			&d.YearsOfExperience, &d.HighestEducation,
			&d.CoverLetter, &d.CVFileName, &d.ProfilePictureFileName,
			&d.ApplicationDate,
			&d.Applicant.ID, &d.Applicant.FirstName, &d.Applicant.LastName, &d.Applicant.Email,
			&d.Applicant.CreatedAt, &d.Applicant.UpdatedAt,
			&d.JobPosting.ID, &d.JobPosting.Title, &d.JobPosting.Description, &d.JobPosting.RequiredSkills,
			&d.JobPosting.Department, &d.JobPosting.ClosingDate, &d.JobPosting.CreatedAt, &d.JobPosting.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
