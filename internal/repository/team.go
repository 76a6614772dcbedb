package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithLeader creates the team leader user and the team row in one
// transaction so a failed team insert cannot leave a leader without a team.
func (r *TeamRepository) CreateWithLeader(leader *models.User, team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(leader).Error; err != nil {
			return err
		}
		team.LeaderID = leader.ID
		return tx.Create(team).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByLeaderID retrieves the team led by a given user
func (r *TeamRepository) GetByLeaderID(leaderID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "leader_id = ?", leaderID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithCollegeByLeaderID retrieves a leader's team with its college preloaded
func (r *TeamRepository) GetWithCollegeByLeaderID(leaderID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("College").First(&team, "leader_id = ?", leaderID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCollegeID retrieves all teams of a college with their leaders preloaded
func (r *TeamRepository) GetByCollegeID(collegeID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Leader").Where("college_id = ?", collegeID).Order("created_at DESC").Find(&teams).Error
	return teams, err
}
