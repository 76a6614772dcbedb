package models

import (
	"github.com/google/uuid"
)

// College represents an institution registered by exactly one SPOC.
// Name uniqueness across institutions is checked case-insensitively
// at registration time rather than by a DB constraint.
type College struct {
	BaseModel
	Name   string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	SpocID uuid.UUID `json:"spoc_id" gorm:"type:uuid;uniqueIndex:idx_colleges_spoc;not null" validate:"required"`

	Spoc *User `json:"spoc,omitempty" gorm:"foreignKey:SpocID"`
}

// TableName returns the table name for College
func (College) TableName() string {
	return "colleges"
}
