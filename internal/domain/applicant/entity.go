package applicant

import (
	"time"

	"github.com/google/uuid"
)

// Applicant is identified by email; names are mutable display attributes
// refreshed on every submission.
type Applicant struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
