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

// PublicHandlerTestSuite defines the test suite for PublicHandler
type PublicHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPublicServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PublicHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPublicServiceInterface(suite.ctrl)

	handler := handlers.NewPublicHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/public/ps", handler.ListProblemStatements)
	suite.http.Router.GET("/public/ps/:slug", handler.GetProblemStatement)
}

// TearDownTest cleans up after each test
func (suite *PublicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListProblemStatements tests the public listing
func (suite *PublicHandlerTestSuite) TestListProblemStatements() {
	suite.mockService.EXPECT().
		ListProblemStatements(gomock.Any()).
		Return([]service.ProblemStatementResponse{{Title: "Smart Irrigation", Slug: "smart-irrigation"}}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/public/ps", nil)

	var list []service.ProblemStatementResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &list)
	assert.Len(suite.T(), list, 1)
}

// TestGetProblemStatement tests the public detail endpoint
func (suite *PublicHandlerTestSuite) TestGetProblemStatement() {
	suite.mockService.EXPECT().
		GetProblemStatementBySlug(gomock.Any(), "smart-irrigation").
		Return(&service.ProblemStatementResponse{Title: "Smart Irrigation", Slug: "smart-irrigation"}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/public/ps/smart-irrigation", nil)

	var resp service.ProblemStatementResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "Smart Irrigation", resp.Title)
}

// TestGetProblemStatementNotFound tests an unknown slug
func (suite *PublicHandlerTestSuite) TestGetProblemStatementNotFound() {
	suite.mockService.EXPECT().
		GetProblemStatementBySlug(gomock.Any(), "missing").
		Return(nil, apperrors.ErrProblemStatementNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/public/ps/missing", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestPublicHandlerTestSuite runs the test suite
func TestPublicHandlerTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(PublicHandlerTestSuite))
}
