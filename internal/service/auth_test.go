package service_test

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/mocks"
	"github.com/RS-Priyanshu/RSIH/internal/service"
	"github.com/RS-Priyanshu/RSIH/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockCollegeRepo *mocks.MockCollegeRepositoryInterface
	documents       *storage.DocumentStore
	authService     *service.AuthService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCollegeRepo = mocks.NewMockCollegeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	documents, err := storage.NewDocumentStore(suite.T().TempDir())
	require.NoError(suite.T(), err)
	suite.documents = documents

	tokens := auth.NewTokenService("test-secret", 2*time.Hour)
	suite.authService = service.NewAuthService(
		suite.mockUserRepo, suite.mockCollegeRepo, tokens, documents, suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// pdfFileHeader builds a real multipart.FileHeader carrying a tiny PDF body
func (suite *AuthServiceTestSuite) pdfFileHeader(filename string) *multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("pdf", filename)
	require.NoError(suite.T(), err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(suite.T(), err)
	return form.File["pdf"][0]
}

// TestRegister tests registering a team leader
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &service.RegisterRequest{
		Name:     "Jane Leader",
		Email:    "jane@example.com",
		Password: "secret123",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), models.RoleTeamLeader, user.Role)
			assert.True(suite.T(), user.Verified)
			assert.NotEqual(suite.T(), req.Password, user.PasswordHash)
			return nil
		}).
		Times(1)

	resp, err := suite.authService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), req.Email, resp.Email)
	assert.Equal(suite.T(), models.RoleTeamLeader, resp.Role)
}

// TestRegisterDuplicateEmail tests registering with an email already in use
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &service.RegisterRequest{
		Name:     "Jane Leader",
		Email:    "taken@example.com",
		Password: "secret123",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.User{Email: req.Email}, nil).
		Times(1)

	resp, err := suite.authService.Register(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestRegisterInvalidRole tests registering with an unknown role
func (suite *AuthServiceTestSuite) TestRegisterInvalidRole() {
	req := &service.RegisterRequest{
		Name:     "Jane Leader",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.Role("SUPERUSER"),
	}

	resp, err := suite.authService.Register(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRegisterSpoc tests registering a SPOC with its college and document
func (suite *AuthServiceTestSuite) TestRegisterSpoc() {
	req := &service.RegisterSpocRequest{
		Name:        "Dr. Coordinator",
		Email:       "spoc@institute.edu",
		Phone:       "9876543210",
		Institution: "Test Institute of Technology",
		Password:    "secret123",
	}
	pdf := suite.pdfFileHeader("nomination.pdf")

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCollegeRepo.EXPECT().
		GetByNameInsensitive(req.Institution).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	spocID := uuid.New()
	suite.mockCollegeRepo.EXPECT().
		CreateWithSpoc(gomock.Any(), gomock.Any()).
		DoAndReturn(func(spoc *models.User, college *models.College) error {
			assert.Equal(suite.T(), models.RoleSpoc, spoc.Role)
			assert.False(suite.T(), spoc.Verified)
			assert.Equal(suite.T(), req.Institution, college.Name)
			spoc.ID = spocID
			college.SpocID = spocID
			return nil
		}).
		Times(1)

	resp, err := suite.authService.RegisterSpoc(req, pdf)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.False(suite.T(), resp.Verified)
	assert.FileExists(suite.T(), filepath.Join(suite.documents.BaseDir(), "spoc_pdfs", spocID.String()+"_nomination.pdf"))
}

// TestRegisterSpocDuplicateInstitution tests that an institution can only have one SPOC
func (suite *AuthServiceTestSuite) TestRegisterSpocDuplicateInstitution() {
	req := &service.RegisterSpocRequest{
		Name:        "Dr. Coordinator",
		Email:       "spoc2@institute.edu",
		Phone:       "9876543210",
		Institution: "Claimed Institute",
		Password:    "secret123",
	}
	pdf := suite.pdfFileHeader("nomination.pdf")

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCollegeRepo.EXPECT().
		GetByNameInsensitive(req.Institution).
		Return(&models.College{Name: req.Institution}, nil).
		Times(1)

	resp, err := suite.authService.RegisterSpoc(req, pdf)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSpocExistsForInstitute)
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	hash, err := auth.HashPassword("secret123")
	require.NoError(suite.T(), err)
	user := &models.User{
		Name:         "Jane Leader",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         models.RoleTeamLeader,
		Verified:     true,
	}
	user.ID = uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Equal(suite.T(), user.Email, resp.User.Email)
}

// TestLoginUnknownEmail tests that unknown emails report invalid credentials
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginWrongPassword tests that a bad password reports the same error as
// an unknown email
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := auth.HashPassword("secret123")
	require.NoError(suite.T(), err)
	user := &models.User{
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         models.RoleTeamLeader,
		Verified:     true,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    user.Email,
		Password: "wrongpass",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnverifiedSpoc tests that an unverified SPOC cannot log in
func (suite *AuthServiceTestSuite) TestLoginUnverifiedSpoc() {
	hash, err := auth.HashPassword("secret123")
	require.NoError(suite.T(), err)
	spoc := &models.User{
		Email:        "spoc@institute.edu",
		PasswordHash: hash,
		Role:         models.RoleSpoc,
		Verified:     false,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(spoc.Email).
		Return(spoc, nil).
		Times(1)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    spoc.Email,
		Password: "secret123",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSpocNotVerified)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
