package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines database operations for users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetSpocs() ([]models.User, error)
	Verify(id uuid.UUID) (int64, error)
}

// CollegeRepositoryInterface defines database operations for colleges
type CollegeRepositoryInterface interface {
	CreateWithSpoc(spoc *models.User, college *models.College) error
	GetByID(id uuid.UUID) (*models.College, error)
	GetBySpocID(spocID uuid.UUID) (*models.College, error)
	GetByNameInsensitive(name string) (*models.College, error)
}

// TeamRepositoryInterface defines database operations for teams
type TeamRepositoryInterface interface {
	CreateWithLeader(leader *models.User, team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByLeaderID(leaderID uuid.UUID) (*models.Team, error)
	GetWithCollegeByLeaderID(leaderID uuid.UUID) (*models.Team, error)
	GetByCollegeID(collegeID uuid.UUID) ([]models.Team, error)
}

// ProblemStatementRepositoryInterface defines database operations for problem statements
type ProblemStatementRepositoryInterface interface {
	Create(ps *models.ProblemStatement) error
	GetAll() ([]models.ProblemStatement, error)
	GetByID(id uuid.UUID) (*models.ProblemStatement, error)
	GetBySlug(slug string) (*models.ProblemStatement, error)
	Update(ps *models.ProblemStatement) error
	Delete(id uuid.UUID) (int64, error)
}

// SubmissionRepositoryInterface defines database operations for submissions
type SubmissionRepositoryInterface interface {
	Create(submission *models.Submission) error
	GetByTeamID(teamID uuid.UUID) ([]models.Submission, error)
	GetFirstByTeamID(teamID uuid.UUID) (*models.Submission, error)
	GetAllWithDetails() ([]models.Submission, error)
	CountByProblemStatement(psID uuid.UUID) (int64, error)
}
