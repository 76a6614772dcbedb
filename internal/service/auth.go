package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/repository"
	"github.com/RS-Priyanshu/RSIH/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo    repository.UserRepositoryInterface
	collegeRepo repository.CollegeRepositoryInterface
	tokens      *auth.TokenService
	documents   *storage.DocumentStore
	validator   *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	collegeRepo repository.CollegeRepositoryInterface,
	tokens *auth.TokenService,
	documents *storage.DocumentStore,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		tokens:      tokens,
		documents:   documents,
		validator:   validator,
	}
}

// RegisterRequest represents the request to register a non-SPOC user
type RegisterRequest struct {
	Name     string      `json:"name" validate:"required,max=100"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role,omitempty"`
}

// RegisterSpocRequest represents the multipart form of a SPOC registration
type RegisterSpocRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Age         string `form:"age"`
	Email       string `form:"email" validate:"required,email,max=255"`
	Phone       string `form:"phone" validate:"required,max=20"`
	Institution string `form:"institution" validate:"required,max=200"`
	Password    string `form:"password" validate:"required,min=6"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Verified  bool        `json:"verified"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt string      `json:"created_at"`
}

// LoginResponse carries the issued token together with the user's public fields
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register creates a user account. Role defaults to TEAM_LEADER and
// non-SPOC accounts are verified from the start.
func (s *AuthService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.RoleTeamLeader
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Verified:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// RegisterSpoc registers an unverified SPOC together with its college and
// nomination document. No token is issued; the account stays locked until an
// admin verifies it.
func (s *AuthService) RegisterSpoc(req *RegisterSpocRequest, pdf *multipart.FileHeader) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if _, err := s.collegeRepo.GetByNameInsensitive(req.Institution); err == nil {
		return nil, apperrors.ErrSpocExistsForInstitute
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing college: %w", err)
	}

	// The document lands in tmp before the inserts; a failed transaction
	// discards it, a successful one promotes it under the new user's id.
	tmpPath, err := s.documents.SaveTemp(pdf)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.documents.Discard(tmpPath)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	spoc := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleSpoc,
		Verified:     false,
		Phone:        req.Phone,
	}
	college := &models.College{Name: req.Institution}

	if err := s.collegeRepo.CreateWithSpoc(spoc, college); err != nil {
		s.documents.Discard(tmpPath)
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to register SPOC: %w", err)
	}

	if _, err := s.documents.Promote(tmpPath, spoc.ID, pdf.Filename); err != nil {
		return nil, fmt.Errorf("failed to store nomination document: %w", err)
	}

	return toUserResponse(spoc), nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// password mismatch return the same error to prevent user enumeration.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleSpoc && !user.Verified {
		return nil, apperrors.ErrSpocNotVerified
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Verified:  user.Verified,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
