package repository

import (
	"context"

	"talentgate/internal/database"
	"talentgate/internal/database/postgres"
	"talentgate/internal/domain/applicant"
)

type PostgresApplicantRepository struct {
	db database.DB
}

func NewPostgresApplicantRepository(db database.DB) *PostgresApplicantRepository {
	return &PostgresApplicantRepository{db: db}
}

// Upsert is a single ON CONFLICT statement so two concurrent submissions
// under the same new email cannot race a read-then-write window.
func (r *PostgresApplicantRepository) Upsert(ctx context.Context, a applicant.Applicant) (applicant.Applicant, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applicants (id, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT ON CONSTRAINT applicants_email_key
		 DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, updated_at = now()
		 RETURNING id, first_name, last_name, email, created_at, updated_at`,
		a.ID, a.FirstName, a.LastName, a.Email,
	)

	var out applicant.Applicant
	err := row.Scan(&out.ID, &out.FirstName, &out.LastName, &out.Email, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, "applicants_email_key") {
			return applicant.Applicant{}, applicant.ErrEmailTaken
		}
		return applicant.Applicant{}, err
	}
	return out, nil
}
