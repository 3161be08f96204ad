package applicant

import (
	"context"
	"errors"
)

var ErrEmailTaken = errors.New("applicant email already exists")

type Repository interface {
	// Upsert creates the applicant or, when the email is already known,
	// refreshes first/last name. Atomic with respect to concurrent
	// submissions under the same email.
	Upsert(ctx context.Context, a Applicant) (Applicant, error)
}
