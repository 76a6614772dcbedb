package models

import (
	"github.com/google/uuid"
)

// SubmissionStatus is the lifecycle state of a submission.
// Submissions are write-once; SUBMITTED is currently the only state.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "SUBMITTED"
)

// Submission is a team's one-time idea entry against a problem statement.
// The composite unique index closes the duplicate-submission race at the
// database level; a violation surfaces as a conflict to the caller.
type Submission struct {
	BaseModel
	TeamID             uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_team_ps" validate:"required"`
	ProblemStatementID uuid.UUID        `json:"ps_id" gorm:"column:ps_id;type:uuid;not null;uniqueIndex:idx_submissions_team_ps" validate:"required"`
	Title              string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Abstract           string           `json:"abstract" gorm:"not null;type:text" validate:"required"`
	Status             SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'SUBMITTED'"`

	Team             *Team             `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	ProblemStatement *ProblemStatement `json:"problem_statement,omitempty" gorm:"foreignKey:ProblemStatementID"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}
