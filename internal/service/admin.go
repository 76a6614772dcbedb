package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/cache"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/logger"
	"github.com/RS-Priyanshu/RSIH/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// AdminService handles SPOC verification, problem statement CRUD and the
// submissions overview
type AdminService struct {
	userRepo       repository.UserRepositoryInterface
	psRepo         repository.ProblemStatementRepositoryInterface
	submissionRepo repository.SubmissionRepositoryInterface
	listingCache   *cache.Cache
	validator      *validator.Validate
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo repository.UserRepositoryInterface,
	psRepo repository.ProblemStatementRepositoryInterface,
	submissionRepo repository.SubmissionRepositoryInterface,
	listingCache *cache.Cache,
	validator *validator.Validate,
) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		psRepo:         psRepo,
		submissionRepo: submissionRepo,
		listingCache:   listingCache,
		validator:      validator,
	}
}

// ProblemStatementRequest is the create/update payload for problem statements
type ProblemStatementRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,max=50"`
	Category    string `json:"category" validate:"required,max=100"`
}

// ProblemStatementResponse represents a problem statement in API responses
type ProblemStatementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Slug        string `json:"slug"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// SubmissionOverviewResponse is one row of the admin submissions overview
type SubmissionOverviewResponse struct {
	ID        string                  `json:"id"`
	TeamID    string                  `json:"team_id"`
	PSID      string                  `json:"ps_id"`
	Title     string                  `json:"title"`
	Abstract  string                  `json:"abstract"`
	Status    models.SubmissionStatus `json:"status"`
	TeamName  string                  `json:"team_name"`
	PSTitle   string                  `json:"ps_title"`
	CreatedAt string                  `json:"created_at"`
}

// ListSpocs returns every SPOC regardless of verification state
func (s *AdminService) ListSpocs() ([]UserResponse, error) {
	spocs, err := s.userRepo.GetSpocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list SPOCs: %w", err)
	}

	responses := make([]UserResponse, 0, len(spocs))
	for i := range spocs {
		responses = append(responses, *toUserResponse(&spocs[i]))
	}
	return responses, nil
}

// VerifySpoc marks a SPOC as verified, unlocking login for that account
func (s *AdminService) VerifySpoc(id uuid.UUID) error {
	rows, err := s.userRepo.Verify(id)
	if err != nil {
		return fmt.Errorf("failed to verify SPOC: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrSpocNotFound
	}
	return nil
}

// CreateProblemStatement creates a problem statement and invalidates the
// public listing cache
func (s *AdminService) CreateProblemStatement(ctx context.Context, req *ProblemStatementRequest) (*ProblemStatementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	ps := &models.ProblemStatement{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
	}
	ps.Slug = s.uniqueSlug(req.Title, ps.ID)

	if err := s.psRepo.Create(ps); err != nil {
		return nil, fmt.Errorf("failed to create problem statement: %w", err)
	}

	s.invalidateListing(ctx)
	return toProblemStatementResponse(ps), nil
}

// ListProblemStatements returns all problem statements, newest first
func (s *AdminService) ListProblemStatements() ([]ProblemStatementResponse, error) {
	statements, err := s.psRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list problem statements: %w", err)
	}

	responses := make([]ProblemStatementResponse, 0, len(statements))
	for i := range statements {
		responses = append(responses, *toProblemStatementResponse(&statements[i]))
	}
	return responses, nil
}

// UpdateProblemStatement updates all editable fields of a problem statement
func (s *AdminService) UpdateProblemStatement(ctx context.Context, id uuid.UUID, req *ProblemStatementRequest) (*ProblemStatementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	ps, err := s.psRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemStatementNotFound
		}
		return nil, fmt.Errorf("failed to get problem statement: %w", err)
	}

	if ps.Title != req.Title {
		ps.Slug = s.uniqueSlug(req.Title, ps.ID)
	}
	ps.Title = req.Title
	ps.Description = req.Description
	ps.Type = req.Type
	ps.Category = req.Category

	if err := s.psRepo.Update(ps); err != nil {
		return nil, fmt.Errorf("failed to update problem statement: %w", err)
	}

	s.invalidateListing(ctx)
	return toProblemStatementResponse(ps), nil
}

// DeleteProblemStatement removes a problem statement. Deletion is blocked
// while submissions reference it, so no submission is ever left dangling.
func (s *AdminService) DeleteProblemStatement(ctx context.Context, id uuid.UUID) error {
	count, err := s.submissionRepo.CountByProblemStatement(id)
	if err != nil {
		return fmt.Errorf("failed to count submissions: %w", err)
	}
	if count > 0 {
		return apperrors.ErrProblemStatementInUse
	}

	rows, err := s.psRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete problem statement: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrProblemStatementNotFound
	}

	s.invalidateListing(ctx)
	return nil
}

// ListSubmissions returns every submission joined with team name and
// problem-statement title, newest first
func (s *AdminService) ListSubmissions() ([]SubmissionOverviewResponse, error) {
	submissions, err := s.submissionRepo.GetAllWithDetails()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]SubmissionOverviewResponse, 0, len(submissions))
	for i := range submissions {
		sub := &submissions[i]
		resp := SubmissionOverviewResponse{
			ID:        sub.ID.String(),
			TeamID:    sub.TeamID.String(),
			PSID:      sub.ProblemStatementID.String(),
			Title:     sub.Title,
			Abstract:  sub.Abstract,
			Status:    sub.Status,
			CreatedAt: sub.CreatedAt.Format(time.RFC3339),
		}
		if sub.Team != nil {
			resp.TeamName = sub.Team.Name
		}
		if sub.ProblemStatement != nil {
			resp.PSTitle = sub.ProblemStatement.Title
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// uniqueSlug derives a slug from the title and disambiguates with an id
// prefix when another problem statement already owns it.
func (s *AdminService) uniqueSlug(title string, id uuid.UUID) string {
	base := slug.Make(title)
	existing, err := s.psRepo.GetBySlug(base)
	if err == nil && existing.ID != id {
		return fmt.Sprintf("%s-%s", base, id.String()[:8])
	}
	return base
}

func (s *AdminService) invalidateListing(ctx context.Context) {
	if s.listingCache == nil {
		return
	}
	if err := s.listingCache.Delete(ctx, publicListingKey); err != nil {
		logger.WithContext(ctx).WithField("key", publicListingKey).Warnf("failed to invalidate listing cache: %v", err)
	}
}

func toProblemStatementResponse(ps *models.ProblemStatement) *ProblemStatementResponse {
	return &ProblemStatementResponse{
		ID:          ps.ID.String(),
		Title:       ps.Title,
		Description: ps.Description,
		Type:        ps.Type,
		Category:    ps.Category,
		Slug:        ps.Slug,
		CreatedAt:   ps.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ps.UpdatedAt.Format(time.RFC3339),
	}
}
