package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamLeaderService handles the workflows of an authenticated team leader
type TeamLeaderService struct {
	teamRepo       repository.TeamRepositoryInterface
	psRepo         repository.ProblemStatementRepositoryInterface
	submissionRepo repository.SubmissionRepositoryInterface
	validator      *validator.Validate
}

// NewTeamLeaderService creates a new team leader service
func NewTeamLeaderService(
	teamRepo repository.TeamRepositoryInterface,
	psRepo repository.ProblemStatementRepositoryInterface,
	submissionRepo repository.SubmissionRepositoryInterface,
	validator *validator.Validate,
) *TeamLeaderService {
	return &TeamLeaderService{
		teamRepo:       teamRepo,
		psRepo:         psRepo,
		submissionRepo: submissionRepo,
		validator:      validator,
	}
}

// SubmitIdeaRequest is the payload for submitting an idea against a problem statement
type SubmitIdeaRequest struct {
	TeamID   *uuid.UUID `json:"teamId,omitempty"`
	PSID     uuid.UUID  `json:"psId" validate:"required"`
	Title    string     `json:"title" validate:"required,max=200"`
	Abstract string     `json:"abstract" validate:"required"`
}

// SubmissionResponse represents a submission in API responses
type SubmissionResponse struct {
	ID            string                  `json:"id"`
	TeamID        string                  `json:"team_id"`
	PSID          string                  `json:"ps_id"`
	Title         string                  `json:"title"`
	Abstract      string                  `json:"abstract"`
	Status        models.SubmissionStatus `json:"status"`
	PSTitle       string                  `json:"ps_title,omitempty"`
	PSDescription string                  `json:"ps_description,omitempty"`
	CreatedAt     string                  `json:"created_at"`
}

// SubmitIdea submits a team's idea for a problem statement. An explicit team
// id must belong to the caller; without one the caller's own team is used.
// At most one submission per (team, problem statement) pair can ever exist.
func (s *TeamLeaderService) SubmitIdea(leaderID uuid.UUID, req *SubmitIdeaRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var team *models.Team
	var err error
	if req.TeamID != nil {
		team, err = s.teamRepo.GetByID(*req.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		if team.LeaderID != leaderID {
			return nil, apperrors.ErrNotOwner
		}
	} else {
		team, err = s.teamRepo.GetByLeaderID(leaderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
	}

	if _, err := s.psRepo.GetByID(req.PSID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemStatementNotFound
		}
		return nil, fmt.Errorf("failed to get problem statement: %w", err)
	}

	submission := &models.Submission{
		TeamID:             team.ID,
		ProblemStatementID: req.PSID,
		Title:              req.Title,
		Abstract:           req.Abstract,
		Status:             models.SubmissionStatusSubmitted,
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSubmissionExists
		}
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return toSubmissionResponse(submission), nil
}

// GetMySubmissions returns the caller's team's submissions, newest first.
// A leader without a team gets an empty list.
func (s *TeamLeaderService) GetMySubmissions(leaderID uuid.UUID) ([]SubmissionResponse, error) {
	team, err := s.teamRepo.GetByLeaderID(leaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []SubmissionResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	submissions, err := s.submissionRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *toSubmissionResponse(&submissions[i]))
	}
	return responses, nil
}

// GetMyTeam returns the caller's team with its college name
func (s *TeamLeaderService) GetMyTeam(leaderID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetWithCollegeByLeaderID(leaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return toTeamResponse(team), nil
}

func toSubmissionResponse(submission *models.Submission) *SubmissionResponse {
	resp := &SubmissionResponse{
		ID:        submission.ID.String(),
		TeamID:    submission.TeamID.String(),
		PSID:      submission.ProblemStatementID.String(),
		Title:     submission.Title,
		Abstract:  submission.Abstract,
		Status:    submission.Status,
		CreatedAt: submission.CreatedAt.Format(time.RFC3339),
	}
	if submission.ProblemStatement != nil {
		resp.PSTitle = submission.ProblemStatement.Title
		resp.PSDescription = submission.ProblemStatement.Description
	}
	return resp
}
