package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpocService handles the workflows of a verified institutional coordinator
type SpocService struct {
	userRepo       repository.UserRepositoryInterface
	collegeRepo    repository.CollegeRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	submissionRepo repository.SubmissionRepositoryInterface
	validator      *validator.Validate
}

// NewSpocService creates a new SPOC service
func NewSpocService(
	userRepo repository.UserRepositoryInterface,
	collegeRepo repository.CollegeRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	submissionRepo repository.SubmissionRepositoryInterface,
	validator *validator.Validate,
) *SpocService {
	return &SpocService{
		userRepo:       userRepo,
		collegeRepo:    collegeRepo,
		teamRepo:       teamRepo,
		submissionRepo: submissionRepo,
		validator:      validator,
	}
}

// RegisterTeamRequest is the payload for registering a team with its leader
type RegisterTeamRequest struct {
	TeamName       string     `json:"teamName" validate:"required,max=100"`
	CollegeID      *uuid.UUID `json:"collegeId,omitempty"`
	LeaderName     string     `json:"leaderName" validate:"required,max=100"`
	LeaderEmail    string     `json:"leaderEmail" validate:"required,email,max=255"`
	LeaderPassword string     `json:"leaderPassword" validate:"required,min=6"`
}

// CollegeResponse represents a college in API responses
type CollegeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SpocID    string `json:"spoc_id"`
	CreatedAt string `json:"created_at"`
}

// TeamResponse represents a team with its leader's public details
type TeamResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CollegeID   string `json:"college_id"`
	LeaderID    string `json:"leader_id"`
	LeaderName  string `json:"leader_name,omitempty"`
	LeaderEmail string `json:"leader_email,omitempty"`
	CollegeName string `json:"college_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// TeamSubmissionCheckResponse reports whether a team has submitted an idea
type TeamSubmissionCheckResponse struct {
	Submitted  bool                `json:"submitted"`
	Submission *SubmissionResponse `json:"submission,omitempty"`
}

// RegisterTeam creates a verified TEAM_LEADER account and its team in one
// transaction. The college always belongs to the calling SPOC; an explicit
// collegeId is only accepted when it matches.
func (s *SpocService) RegisterTeam(spocID uuid.UUID, req *RegisterTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	college, err := s.collegeRepo.GetBySpocID(spocID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	if req.CollegeID != nil && *req.CollegeID != college.ID {
		return nil, apperrors.ErrNotOwner
	}

	if _, err := s.userRepo.GetByEmail(req.LeaderEmail); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.LeaderPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	leader := &models.User{
		Name:         req.LeaderName,
		Email:        req.LeaderEmail,
		PasswordHash: hash,
		Role:         models.RoleTeamLeader,
		Verified:     true,
	}
	team := &models.Team{
		Name:      req.TeamName,
		CollegeID: college.ID,
	}

	if err := s.teamRepo.CreateWithLeader(leader, team); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to register team: %w", err)
	}

	resp := toTeamResponse(team)
	resp.LeaderName = leader.Name
	resp.LeaderEmail = leader.Email
	return resp, nil
}

// GetMyCollege returns the calling SPOC's college
func (s *SpocService) GetMyCollege(spocID uuid.UUID) (*CollegeResponse, error) {
	college, err := s.collegeRepo.GetBySpocID(spocID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}

	return &CollegeResponse{
		ID:        college.ID.String(),
		Name:      college.Name,
		SpocID:    college.SpocID.String(),
		CreatedAt: college.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetMyTeams returns the teams of the calling SPOC's college. A SPOC without
// a college gets an empty list rather than an error.
func (s *SpocService) GetMyTeams(spocID uuid.UUID) ([]TeamResponse, error) {
	college, err := s.collegeRepo.GetBySpocID(spocID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []TeamResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}

	return s.teamsOfCollege(college.ID)
}

// GetTeamsByCollege returns the teams of a college after re-verifying that
// the college belongs to the calling SPOC. Guessing another institution's
// college id yields a forbidden error, never data.
func (s *SpocService) GetTeamsByCollege(spocID, collegeID uuid.UUID) ([]TeamResponse, error) {
	college, err := s.collegeRepo.GetByID(collegeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOwner
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	if college.SpocID != spocID {
		return nil, apperrors.ErrNotOwner
	}

	return s.teamsOfCollege(college.ID)
}

// CheckTeamSubmission reports whether a team has submitted an idea. The team
// must belong to the calling SPOC's college.
func (s *SpocService) CheckTeamSubmission(spocID, teamID uuid.UUID) (*TeamSubmissionCheckResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	college, err := s.collegeRepo.GetBySpocID(spocID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOwner
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	if team.CollegeID != college.ID {
		return nil, apperrors.ErrNotOwner
	}

	submission, err := s.submissionRepo.GetFirstByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TeamSubmissionCheckResponse{Submitted: false}, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &TeamSubmissionCheckResponse{
		Submitted:  true,
		Submission: toSubmissionResponse(submission),
	}, nil
}

func (s *SpocService) teamsOfCollege(collegeID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.teamRepo.GetByCollegeID(collegeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:        team.ID.String(),
		Name:      team.Name,
		CollegeID: team.CollegeID.String(),
		LeaderID:  team.LeaderID.String(),
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
	}
	if team.Leader != nil {
		resp.LeaderName = team.Leader.Name
		resp.LeaderEmail = team.Leader.Email
	}
	if team.College != nil {
		resp.CollegeName = team.College.Name
	}
	return resp
}
