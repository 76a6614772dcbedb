package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a conflict with an existing entity
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this institution"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrCollegeNotFound          = &NotFoundError{Entity: "college"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrProblemStatementNotFound = &NotFoundError{Entity: "problem statement"}
	ErrSubmissionNotFound       = &NotFoundError{Entity: "submission"}
	ErrSpocNotFound             = &NotFoundError{Entity: "SPOC"}
)

// Already Exists Errors
var (
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrSpocExistsForInstitute = &AlreadyExistsError{Entity: "SPOC", Context: "for this institution"}
	ErrSubmissionExists       = &AlreadyExistsError{Entity: "submission", Context: "for this problem statement"}
)

// Business Logic Errors
var (
	ErrProblemStatementInUse = &AlreadyExistsError{Entity: "submission", Context: "for this problem statement; it cannot be deleted"}
)

// Authentication / Authorization Errors
var (
	// ErrInvalidCredentials is returned for both unknown email and password
	// mismatch so callers cannot enumerate registered emails.
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrTokenInvalid       = &AuthenticationError{Message: "invalid or expired token"}
	ErrTokenMissing       = &AuthenticationError{Message: "access denied, token missing"}

	ErrSpocNotVerified = &AuthorizationError{Message: "SPOC not yet verified by admin"}
	ErrRoleForbidden   = &AuthorizationError{Message: "role is not allowed to access this resource"}
	ErrNotOwner        = &AuthorizationError{Message: "access denied"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
