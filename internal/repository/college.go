package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// CreateWithSpoc creates the SPOC user and its college row in one transaction
// so a failed college insert cannot leave an orphaned user behind.
func (r *CollegeRepository) CreateWithSpoc(spoc *models.User, college *models.College) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spoc).Error; err != nil {
			return err
		}
		college.SpocID = spoc.ID
		return tx.Create(college).Error
	})
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(id uuid.UUID) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetBySpocID retrieves the college registered by a SPOC
func (r *CollegeRepository) GetBySpocID(spocID uuid.UUID) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, "spoc_id = ?", spocID).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetByNameInsensitive retrieves a college by name, compared case-insensitively
func (r *CollegeRepository) GetByNameInsensitive(name string) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}
