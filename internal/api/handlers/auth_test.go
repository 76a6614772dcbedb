package handlers_test

import (
	"net/http"
	"testing"

	"github.com/RS-Priyanshu/RSIH/internal/api/handlers"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/mocks"
	"github.com/RS-Priyanshu/RSIH/internal/service"
	"github.com/RS-Priyanshu/RSIH/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAuthServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuthServiceInterface(suite.ctrl)

	handler := handlers.NewAuthHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/auth/register", handler.Register)
	suite.http.Router.POST("/auth/register-spoc", handler.RegisterSpoc)
	suite.http.Router.POST("/auth/login", handler.Login)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests a successful registration
func (suite *AuthHandlerTestSuite) TestRegister() {
	req := service.RegisterRequest{
		Name:     "Jane Leader",
		Email:    "jane@example.com",
		Password: "secret123",
	}

	suite.mockService.EXPECT().
		Register(gomock.Any()).
		Return(&service.UserResponse{Name: req.Name, Email: req.Email}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/register", req)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), "User registered successfully", body["message"])
}

// TestRegisterDuplicateEmail tests the response for a taken email
func (suite *AuthHandlerTestSuite) TestRegisterDuplicateEmail() {
	req := service.RegisterRequest{
		Name:     "Jane Leader",
		Email:    "taken@example.com",
		Password: "secret123",
	}

	suite.mockService.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.ErrUserExists).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/register", req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already exists")
}

// TestRegisterMalformedBody tests a non-JSON request body
func (suite *AuthHandlerTestSuite) TestRegisterMalformedBody() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/register", "not-json")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestRegisterSpocMissingPDF tests that the nomination PDF is mandatory
func (suite *AuthHandlerTestSuite) TestRegisterSpocMissingPDF() {
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	recorder := suite.http.MakeRequestWithHeaders(http.MethodPost, "/auth/register-spoc", nil, headers)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestLogin tests a successful login
func (suite *AuthHandlerTestSuite) TestLogin() {
	req := service.LoginRequest{Email: "jane@example.com", Password: "secret123"}

	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(&service.LoginResponse{
			Token: "signed.jwt.token",
			User:  service.UserResponse{Email: req.Email},
		}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/login", req)

	var resp service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "signed.jwt.token", resp.Token)
}

// TestLoginInvalidCredentials tests the uniform credentials error
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	req := service.LoginRequest{Email: "jane@example.com", Password: "wrongpass"}

	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/login", req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid credentials")
}

// TestLoginUnverifiedSpoc tests that an unverified SPOC gets a forbidden response
func (suite *AuthHandlerTestSuite) TestLoginUnverifiedSpoc() {
	req := service.LoginRequest{Email: "spoc@institute.edu", Password: "secret123"}

	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrSpocNotVerified).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/login", req)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(AuthHandlerTestSuite))
}
