package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission. The unique index on (team_id, ps_id) makes a
// concurrent duplicate surface as a constraint violation rather than a second row.
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// GetByTeamID retrieves a team's submissions with their problem statements, newest first
func (r *SubmissionRepository) GetByTeamID(teamID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("ProblemStatement").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// GetFirstByTeamID retrieves a team's earliest submission, if any
func (r *SubmissionRepository) GetFirstByTeamID(teamID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("ProblemStatement").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetAllWithDetails retrieves every submission with team and problem statement, newest first
func (r *SubmissionRepository) GetAllWithDetails() ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Team").Preload("ProblemStatement").
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// CountByProblemStatement returns the number of submissions against a problem statement
func (r *SubmissionRepository) CountByProblemStatement(psID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).Where("ps_id = ?", psID).Count(&count).Error
	return count, err
}
