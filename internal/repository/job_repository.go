package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talentgate/internal/database"
	"talentgate/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, COALESCE(description, ''), required_skills, department, closing_date, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.JobPosting) (job.JobPosting, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_postings (id, title, description, required_skills, department, closing_date)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Description, j.RequiredSkills, j.Department, j.ClosingDate,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.Filter) ([]job.JobPosting, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Title != "" {
		conds = append(conds, `title ILIKE `+arg("%"+f.Title+"%"))
	}
	if f.Department != "" {
		conds = append(conds, `department ILIKE `+arg("%"+f.Department+"%"))
	}
	if len(f.Skills) > 0 {
		conds = append(conds, `required_skills && `+arg(f.Skills))
	}

	q := `SELECT ` + jobColumns + ` FROM job_postings`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.JobPosting, 0)
	for rows.Next() {
		j, err := scanJobFromRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.JobPosting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_postings WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, u job.Update) (job.JobPosting, error) {
	var (
		sets []string
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if u.Title != nil {
		sets = append(sets, `title = `+arg(*u.Title))
	}
	if u.Description != nil {
		sets = append(sets, `description = NULLIF(`+arg(*u.Description)+`, '')`)
	}
	if u.RequiredSkills != nil {
		sets = append(sets, `required_skills = `+arg(u.RequiredSkills))
	}
	if u.Department != nil {
		sets = append(sets, `department = `+arg(*u.Department))
	}
	if u.ClosingDate != nil {
		sets = append(sets, `closing_date = `+arg(*u.ClosingDate))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, `updated_at = now()`)

	q := `UPDATE job_postings SET ` + strings.Join(sets, ", ") + ` WHERE id = ` + arg(id) + ` RETURNING ` + jobColumns
	return scanJob(r.db.QueryRow(ctx, q, args...))
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Analytics(ctx context.Context) ([]job.Analytics, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.department, j.closing_date, COUNT(a.id)
		 FROM job_postings j
		 LEFT JOIN applications a ON a.job_posting_id = j.id
		 GROUP BY j.id, j.title, j.department, j.closing_date, j.created_at
		 ORDER BY j.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Analytics, 0)
	for rows.Next() {
		var a job.Analytics
		if err := rows.Scan(&a.ID, &a.Title, &a.Department, &a.ClosingDate, &a.TotalApplicants); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.JobPosting, error) {
	var j job.JobPosting
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.RequiredSkills, &j.Department, &j.ClosingDate, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobPosting{}, job.ErrNotFound
		}
		return job.JobPosting{}, err
	}
	return j, nil
}

func scanJobFromRows(rows database.Rows) (job.JobPosting, error) {
	var j job.JobPosting
	err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.RequiredSkills, &j.Department, &j.ClosingDate, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return job.JobPosting{}, err
	}
	return j, nil
}
