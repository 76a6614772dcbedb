//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/RS-Priyanshu/RSIH/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProblemStatementRepositoryTestSuite tests the ProblemStatementRepository
type ProblemStatementRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProblemStatementRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProblemStatementRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProblemStatementRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProblemStatementRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProblemStatementRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProblemStatementRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetBySlug tests creating and looking up by slug
func (suite *ProblemStatementRepositoryTestSuite) TestCreateAndGetBySlug() {
	ps := suite.factories.ProblemStatement.WithTitle("Clean Water Monitor", "clean-water-monitor")

	suite.NoError(suite.repo.Create(ps))

	found, err := suite.repo.GetBySlug("clean-water-monitor")
	suite.NoError(err)
	suite.Equal(ps.ID, found.ID)
}

// TestCreateDuplicateSlug tests that the slug unique index rejects duplicates
func (suite *ProblemStatementRepositoryTestSuite) TestCreateDuplicateSlug() {
	first := suite.factories.ProblemStatement.WithTitle("First", "same-slug")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.ProblemStatement.WithTitle("Second", "same-slug")
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestUpdate tests persisting field changes
func (suite *ProblemStatementRepositoryTestSuite) TestUpdate() {
	ps := suite.factories.ProblemStatement.Create()
	suite.NoError(suite.repo.Create(ps))

	ps.Category = "Healthcare"
	suite.NoError(suite.repo.Update(ps))

	found, err := suite.repo.GetByID(ps.ID)
	suite.NoError(err)
	suite.Equal("Healthcare", found.Category)
}

// TestDelete tests deleting and the affected-rows contract
func (suite *ProblemStatementRepositoryTestSuite) TestDelete() {
	ps := suite.factories.ProblemStatement.Create()
	suite.NoError(suite.repo.Create(ps))

	rows, err := suite.repo.Delete(ps.ID)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	_, err = suite.repo.GetByID(ps.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteUnknownID tests deleting a nonexistent problem statement
func (suite *ProblemStatementRepositoryTestSuite) TestDeleteUnknownID() {
	rows, err := suite.repo.Delete(uuid.New())

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestGetAll tests listing all problem statements
func (suite *ProblemStatementRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.ProblemStatement.Create()))
	suite.NoError(suite.repo.Create(suite.factories.ProblemStatement.Create()))

	all, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(all, 2)
}

// TestProblemStatementRepositoryTestSuite runs the test suite
func TestProblemStatementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemStatementRepositoryTestSuite))
}
