package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/RS-Priyanshu/RSIH/internal/api/handlers"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/mocks"
	"github.com/RS-Priyanshu/RSIH/internal/service"
	"github.com/RS-Priyanshu/RSIH/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAdminServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAdminServiceInterface(suite.ctrl)

	handler := handlers.NewAdminHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/admin/spocs", handler.ListSpocs)
	suite.http.Router.PUT("/admin/spoc/:id/verify", handler.VerifySpoc)
	suite.http.Router.POST("/admin/ps", handler.CreateProblemStatement)
	suite.http.Router.GET("/admin/ps", handler.ListProblemStatements)
	suite.http.Router.PUT("/admin/ps/:id", handler.UpdateProblemStatement)
	suite.http.Router.DELETE("/admin/ps/:id", handler.DeleteProblemStatement)
	suite.http.Router.GET("/admin/submissions", handler.ListSubmissions)
}

// TearDownTest cleans up after each test
func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListSpocs tests listing SPOCs
func (suite *AdminHandlerTestSuite) TestListSpocs() {
	suite.mockService.EXPECT().
		ListSpocs().
		Return([]service.UserResponse{{Name: "Dr. Coordinator", Email: "spoc@institute.edu"}}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/admin/spocs", nil)

	var spocs []service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &spocs)
	assert.Len(suite.T(), spocs, 1)
}

// TestVerifySpoc tests verifying a SPOC
func (suite *AdminHandlerTestSuite) TestVerifySpoc() {
	id := uuid.New()

	suite.mockService.EXPECT().
		VerifySpoc(id).
		Return(nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, fmt.Sprintf("/admin/spoc/%s/verify", id), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestVerifySpocNotFound tests verifying an unknown SPOC
func (suite *AdminHandlerTestSuite) TestVerifySpocNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		VerifySpoc(id).
		Return(apperrors.ErrSpocNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, fmt.Sprintf("/admin/spoc/%s/verify", id), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestVerifySpocBadID tests a malformed SPOC id
func (suite *AdminHandlerTestSuite) TestVerifySpocBadID() {
	recorder := suite.http.MakeRequest(http.MethodPut, "/admin/spoc/not-a-uuid/verify", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateProblemStatement tests creating a problem statement
func (suite *AdminHandlerTestSuite) TestCreateProblemStatement() {
	req := service.ProblemStatementRequest{
		Title:       "Smart Traffic Control",
		Description: "Adaptive signal timing",
		Type:        "Software",
		Category:    "Smart Cities",
	}

	suite.mockService.EXPECT().
		CreateProblemStatement(gomock.Any(), gomock.Any()).
		Return(&service.ProblemStatementResponse{Title: req.Title, Slug: "smart-traffic-control"}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/ps", req)

	var resp service.ProblemStatementResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "smart-traffic-control", resp.Slug)
}

// TestUpdateProblemStatement tests updating a problem statement
func (suite *AdminHandlerTestSuite) TestUpdateProblemStatement() {
	id := uuid.New()
	req := service.ProblemStatementRequest{
		Title:       "New Title",
		Description: "New description",
		Type:        "Hardware",
		Category:    "Healthcare",
	}

	suite.mockService.EXPECT().
		UpdateProblemStatement(gomock.Any(), id, gomock.Any()).
		Return(&service.ProblemStatementResponse{Title: req.Title}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, fmt.Sprintf("/admin/ps/%s", id), req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteProblemStatementInUse tests that an in-use problem statement
// cannot be deleted
func (suite *AdminHandlerTestSuite) TestDeleteProblemStatementInUse() {
	id := uuid.New()

	suite.mockService.EXPECT().
		DeleteProblemStatement(gomock.Any(), id).
		Return(apperrors.ErrProblemStatementInUse).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/admin/ps/%s", id), nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeleteProblemStatement tests deleting a problem statement
func (suite *AdminHandlerTestSuite) TestDeleteProblemStatement() {
	id := uuid.New()

	suite.mockService.EXPECT().
		DeleteProblemStatement(gomock.Any(), id).
		Return(nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/admin/ps/%s", id), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListSubmissions tests the submissions overview
func (suite *AdminHandlerTestSuite) TestListSubmissions() {
	suite.mockService.EXPECT().
		ListSubmissions().
		Return([]service.SubmissionOverviewResponse{{TeamName: "Hackers", PSTitle: "Smart Irrigation"}}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/admin/submissions", nil)

	var subs []service.SubmissionOverviewResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &subs)
	assert.Len(suite.T(), subs, 1)
	assert.Equal(suite.T(), "Hackers", subs[0].TeamName)
}

// TestAdminHandlerTestSuite runs the test suite
func TestAdminHandlerTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(AdminHandlerTestSuite))
}
