package testutils

import (
	"fmt"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for convenience in tests
type FactorySet struct {
	User             *UserFactory
	College          *CollegeFactory
	Team             *TeamFactory
	ProblemStatement *ProblemStatementFactory
	Submission       *SubmissionFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:             NewUserFactory(),
		College:          NewCollegeFactory(),
		Team:             NewTeamFactory(),
		ProblemStatement: NewProblemStatementFactory(),
		Submission:       NewSubmissionFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test team leader with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := auth.HashPassword("password123")
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Leader",
		Email:        fmt.Sprintf("leader-%s@example.com", id.String()[:8]),
		PasswordHash: hash,
		Role:         models.RoleTeamLeader,
		Verified:     true,
		Phone:        "9999999999",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Spoc creates an unverified SPOC account
func (f *UserFactory) Spoc() *models.User {
	user := f.Create()
	user.Name = "Test Spoc"
	user.Role = models.RoleSpoc
	user.Verified = false
	return user
}

// Admin creates a verified admin account
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Name = "Test Admin"
	user.Role = models.RoleAdmin
	user.Verified = true
	return user
}

// CollegeFactory provides methods to create test College data
type CollegeFactory struct{}

// NewCollegeFactory creates a new CollegeFactory
func NewCollegeFactory() *CollegeFactory {
	return &CollegeFactory{}
}

// Create creates a test College owned by the given SPOC
func (f *CollegeFactory) Create(spocID uuid.UUID) *models.College {
	id := uuid.New()
	return &models.College{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   fmt.Sprintf("Test Institute %s", id.String()[:8]),
		SpocID: spocID,
	}
}

// WithName sets a custom name for the college
func (f *CollegeFactory) WithName(spocID uuid.UUID, name string) *models.College {
	college := f.Create(spocID)
	college.Name = name
	return college
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team under the given college led by the given leader
func (f *TeamFactory) Create(collegeID, leaderID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      fmt.Sprintf("Team %s", id.String()[:8]),
		CollegeID: collegeID,
		LeaderID:  leaderID,
	}
}

// ProblemStatementFactory provides methods to create test ProblemStatement data
type ProblemStatementFactory struct{}

// NewProblemStatementFactory creates a new ProblemStatementFactory
func NewProblemStatementFactory() *ProblemStatementFactory {
	return &ProblemStatementFactory{}
}

// Create creates a test ProblemStatement with default values
func (f *ProblemStatementFactory) Create() *models.ProblemStatement {
	id := uuid.New()
	return &models.ProblemStatement{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       fmt.Sprintf("Smart Irrigation %s", id.String()[:8]),
		Description: "Design a low-cost irrigation controller for smallholder farms",
		Type:        "Software",
		Category:    "Agriculture",
		Slug:        fmt.Sprintf("smart-irrigation-%s", id.String()[:8]),
	}
}

// WithTitle sets a custom title and slug for the problem statement
func (f *ProblemStatementFactory) WithTitle(title, slug string) *models.ProblemStatement {
	ps := f.Create()
	ps.Title = title
	ps.Slug = slug
	return ps
}

// SubmissionFactory provides methods to create test Submission data
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test Submission for the given team and problem statement
func (f *SubmissionFactory) Create(teamID, psID uuid.UUID) *models.Submission {
	id := uuid.New()
	return &models.Submission{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:             teamID,
		ProblemStatementID: psID,
		Title:              "Drip-first irrigation scheduler",
		Abstract:           "A soil-moisture driven scheduler that cuts water use by a third",
		Status:             models.SubmissionStatusSubmitted,
	}
}
