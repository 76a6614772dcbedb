package models

// ProblemStatement is an admin-authored challenge teams submit ideas against.
// Slug is derived from the title and used for the public detail route.
type ProblemStatement struct {
	BaseModel
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"not null;type:text" validate:"required"`
	Type        string `json:"type" gorm:"not null;size:50" validate:"required,max=50"`
	Category    string `json:"category" gorm:"not null;size:100" validate:"required,max=100"`
	Slug        string `json:"slug" gorm:"uniqueIndex:idx_problem_statements_slug;not null;size:220"`
}

// TableName returns the table name for ProblemStatement
func (ProblemStatement) TableName() string {
	return "problem_statements"
}
