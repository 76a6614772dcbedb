package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemStatementRepository handles database operations for problem statements
type ProblemStatementRepository struct {
	db *gorm.DB
}

// NewProblemStatementRepository creates a new problem statement repository
func NewProblemStatementRepository(db *gorm.DB) *ProblemStatementRepository {
	return &ProblemStatementRepository{db: db}
}

// Create creates a new problem statement
func (r *ProblemStatementRepository) Create(ps *models.ProblemStatement) error {
	return r.db.Create(ps).Error
}

// GetAll retrieves all problem statements, newest first
func (r *ProblemStatementRepository) GetAll() ([]models.ProblemStatement, error) {
	var statements []models.ProblemStatement
	err := r.db.Order("created_at DESC").Find(&statements).Error
	return statements, err
}

// GetByID retrieves a problem statement by ID
func (r *ProblemStatementRepository) GetByID(id uuid.UUID) (*models.ProblemStatement, error) {
	var ps models.ProblemStatement
	err := r.db.First(&ps, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// GetBySlug retrieves a problem statement by its public slug
func (r *ProblemStatementRepository) GetBySlug(slug string) (*models.ProblemStatement, error) {
	var ps models.ProblemStatement
	err := r.db.First(&ps, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// Update saves changes to a problem statement
func (r *ProblemStatementRepository) Update(ps *models.ProblemStatement) error {
	return r.db.Save(ps).Error
}

// Delete removes a problem statement and reports how many rows changed
func (r *ProblemStatementRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.ProblemStatement{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
