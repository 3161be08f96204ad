package job

import (
	"time"

	"github.com/google/uuid"
)

type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	RequiredSkills []string  `json:"requiredSkills"`
	Department     string    `json:"department"`
	ClosingDate    time.Time `json:"closingDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Update carries a partial field merge; nil pointers leave the stored
// value untouched.
type Update struct {
	Title          *string
	Description    *string
	RequiredSkills []string
	Department     *string
	ClosingDate    *time.Time
}

func (u Update) Empty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.RequiredSkills == nil &&
		u.Department == nil &&
		u.ClosingDate == nil
}

// Filter narrows listings: case-insensitive substring match on title and
// department, any-of overlap on skills.
type Filter struct {
	Title      string
	Department string
	Skills     []string
}

func (f Filter) Empty() bool {
	return f.Title == "" && f.Department == "" && len(f.Skills) == 0
}

type Analytics struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Department      string    `json:"department"`
	ClosingDate     time.Time `json:"closingDate"`
	TotalApplicants int       `json:"totalApplicants"`
}
