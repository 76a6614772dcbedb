//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	"github.com/RS-Priyanshu/RSIH/internal/testutils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

// SubmissionRepositoryTestSuite tests the SubmissionRepository
type SubmissionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SubmissionRepository
	factories     *testutils.FactorySet

	team *models.Team
	ps   *models.ProblemStatement
}

// SetupSuite runs before all tests in the suite
func (suite *SubmissionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSubmissionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubmissionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a college, team and problem statement for each test
func (suite *SubmissionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB

	spoc := suite.factories.User.Spoc()
	suite.NoError(db.Create(spoc).Error)
	college := suite.factories.College.Create(spoc.ID)
	suite.NoError(db.Create(college).Error)
	leader := suite.factories.User.Create()
	suite.NoError(db.Create(leader).Error)
	suite.team = suite.factories.Team.Create(college.ID, leader.ID)
	suite.NoError(db.Create(suite.team).Error)
	suite.ps = suite.factories.ProblemStatement.Create()
	suite.NoError(db.Create(suite.ps).Error)
}

// TearDownTest runs after each test
func (suite *SubmissionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a submission
func (suite *SubmissionRepositoryTestSuite) TestCreate() {
	sub := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)

	err := suite.repo.Create(sub)

	suite.NoError(err)
	suite.Equal(models.SubmissionStatusSubmitted, sub.Status)
}

// TestCreateDuplicateTeamAndProblemStatement tests that the composite unique
// index rejects a second submission for the same team and problem statement
func (suite *SubmissionRepositoryTestSuite) TestCreateDuplicateTeamAndProblemStatement() {
	first := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	second.Title = "A different title"
	err := suite.repo.Create(second)

	suite.Error(err)
	var pgErr *pgconn.PgError
	suite.True(errors.As(err, &pgErr))
	suite.Equal("23505", pgErr.Code)
}

// TestGetByTeamID tests listing submissions with preloaded problem statements
func (suite *SubmissionRepositoryTestSuite) TestGetByTeamID() {
	sub := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	suite.NoError(suite.repo.Create(sub))

	subs, err := suite.repo.GetByTeamID(suite.team.ID)

	suite.NoError(err)
	suite.Len(subs, 1)
	suite.NotNil(subs[0].ProblemStatement)
	suite.Equal(suite.ps.Title, subs[0].ProblemStatement.Title)
}

// TestGetFirstByTeamID tests fetching a team's earliest submission
func (suite *SubmissionRepositoryTestSuite) TestGetFirstByTeamID() {
	sub := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	suite.NoError(suite.repo.Create(sub))

	found, err := suite.repo.GetFirstByTeamID(suite.team.ID)

	suite.NoError(err)
	suite.Equal(sub.ID, found.ID)
}

// TestGetAllWithDetails tests listing all submissions with team and problem statement
func (suite *SubmissionRepositoryTestSuite) TestGetAllWithDetails() {
	sub := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	suite.NoError(suite.repo.Create(sub))

	subs, err := suite.repo.GetAllWithDetails()

	suite.NoError(err)
	suite.Len(subs, 1)
	suite.NotNil(subs[0].Team)
	suite.NotNil(subs[0].ProblemStatement)
	suite.Equal(suite.team.Name, subs[0].Team.Name)
}

// TestCountByProblemStatement tests counting submissions for a problem statement
func (suite *SubmissionRepositoryTestSuite) TestCountByProblemStatement() {
	count, err := suite.repo.CountByProblemStatement(suite.ps.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	sub := suite.factories.Submission.Create(suite.team.ID, suite.ps.ID)
	suite.NoError(suite.repo.Create(sub))

	count, err = suite.repo.CountByProblemStatement(suite.ps.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestSubmissionRepositoryTestSuite runs the test suite
func TestSubmissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositoryTestSuite))
}
