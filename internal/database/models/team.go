package models

import (
	"github.com/google/uuid"
)

// Team represents a competing team registered by a SPOC under a college.
// A leader maps to exactly one team.
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	CollegeID uuid.UUID `json:"college_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeaderID  uuid.UUID `json:"leader_id" gorm:"type:uuid;uniqueIndex:idx_teams_leader;not null" validate:"required"`

	College *College `json:"college,omitempty" gorm:"foreignKey:CollegeID"`
	Leader  *User    `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
