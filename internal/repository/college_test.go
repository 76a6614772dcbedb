//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	"github.com/RS-Priyanshu/RSIH/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CollegeRepositoryTestSuite tests the CollegeRepository
type CollegeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CollegeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CollegeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCollegeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CollegeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CollegeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CollegeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithSpoc tests creating a SPOC and its college in one transaction
func (suite *CollegeRepositoryTestSuite) TestCreateWithSpoc() {
	spoc := suite.factories.User.Spoc()
	spoc.ID = uuid.Nil
	college := &models.College{Name: "National Institute of Testing"}

	err := suite.repo.CreateWithSpoc(spoc, college)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, spoc.ID)
	suite.Equal(spoc.ID, college.SpocID)

	found, err := suite.repo.GetBySpocID(spoc.ID)
	suite.NoError(err)
	suite.Equal(college.ID, found.ID)
}

// TestCreateWithSpocRollsBack tests that a failed college insert leaves no SPOC behind
func (suite *CollegeRepositoryTestSuite) TestCreateWithSpocRollsBack() {
	existing := suite.factories.User.Spoc()
	suite.NoError(suite.baseTestSuite.DB.Create(existing).Error)
	taken := suite.factories.College.Create(existing.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(taken).Error)

	// Second college for the same SPOC violates the unique index; force it by
	// pre-setting the new college's SpocID through a conflicting spoc row.
	spoc := suite.factories.User.Spoc()
	spoc.ID = uuid.Nil
	spoc.Email = existing.Email // duplicate email fails inside the transaction
	college := &models.College{Name: "Another Institute"}

	err := suite.repo.CreateWithSpoc(spoc, college)

	suite.Error(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.College{}).Where("name = ?", "Another Institute").Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestGetByNameInsensitive tests case-insensitive college name lookup
func (suite *CollegeRepositoryTestSuite) TestGetByNameInsensitive() {
	spoc := suite.factories.User.Spoc()
	suite.NoError(suite.baseTestSuite.DB.Create(spoc).Error)
	college := suite.factories.College.WithName(spoc.ID, "IIT Testpur")
	suite.NoError(suite.baseTestSuite.DB.Create(college).Error)

	found, err := suite.repo.GetByNameInsensitive("iit TESTPUR")

	suite.NoError(err)
	suite.Equal(college.ID, found.ID)
}

// TestGetBySpocIDNotFound tests looking up a college for a SPOC without one
func (suite *CollegeRepositoryTestSuite) TestGetBySpocIDNotFound() {
	_, err := suite.repo.GetBySpocID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCollegeRepositoryTestSuite runs the test suite
func TestCollegeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CollegeRepositoryTestSuite))
}
