package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	RegisterSpoc(req *RegisterSpocRequest, pdf *multipart.FileHeader) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
}

// AdminServiceInterface defines the interface for the admin service
type AdminServiceInterface interface {
	ListSpocs() ([]UserResponse, error)
	VerifySpoc(id uuid.UUID) error
	CreateProblemStatement(ctx context.Context, req *ProblemStatementRequest) (*ProblemStatementResponse, error)
	ListProblemStatements() ([]ProblemStatementResponse, error)
	UpdateProblemStatement(ctx context.Context, id uuid.UUID, req *ProblemStatementRequest) (*ProblemStatementResponse, error)
	DeleteProblemStatement(ctx context.Context, id uuid.UUID) error
	ListSubmissions() ([]SubmissionOverviewResponse, error)
}

// SpocServiceInterface defines the interface for the SPOC service
type SpocServiceInterface interface {
	RegisterTeam(spocID uuid.UUID, req *RegisterTeamRequest) (*TeamResponse, error)
	GetMyCollege(spocID uuid.UUID) (*CollegeResponse, error)
	GetMyTeams(spocID uuid.UUID) ([]TeamResponse, error)
	GetTeamsByCollege(spocID, collegeID uuid.UUID) ([]TeamResponse, error)
	CheckTeamSubmission(spocID, teamID uuid.UUID) (*TeamSubmissionCheckResponse, error)
}

// TeamLeaderServiceInterface defines the interface for the team leader service
type TeamLeaderServiceInterface interface {
	SubmitIdea(leaderID uuid.UUID, req *SubmitIdeaRequest) (*SubmissionResponse, error)
	GetMySubmissions(leaderID uuid.UUID) ([]SubmissionResponse, error)
	GetMyTeam(leaderID uuid.UUID) (*TeamResponse, error)
}

// PublicServiceInterface defines the interface for the public service
type PublicServiceInterface interface {
	ListProblemStatements(ctx context.Context) ([]ProblemStatementResponse, error)
	GetProblemStatementBySlug(ctx context.Context, slug string) (*ProblemStatementResponse, error)
}
