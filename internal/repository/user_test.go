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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateEmail tests that the email unique index rejects duplicates
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.WithEmail("dup@example.com")
	err := suite.repo.Create(user1)
	suite.NoError(err)

	user2 := suite.factories.User.WithEmail("dup@example.com")
	user2.Name = "Different Name"
	err = suite.repo.Create(user2)

	suite.Error(err)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@example.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("lookup@example.com")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal(user.Email, found.Email)
}

// TestGetByEmailNotFound tests looking up a missing email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail("nobody@example.com")

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
}

// TestGetSpocs tests listing only SPOC accounts
func (suite *UserRepositoryTestSuite) TestGetSpocs() {
	spoc := suite.factories.User.Spoc()
	leader := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(spoc))
	suite.NoError(suite.repo.Create(leader))

	spocs, err := suite.repo.GetSpocs()

	suite.NoError(err)
	suite.Len(spocs, 1)
	suite.Equal(models.RoleSpoc, spocs[0].Role)
	suite.Equal(spoc.ID, spocs[0].ID)
}

// TestVerify tests flipping the verified flag
func (suite *UserRepositoryTestSuite) TestVerify() {
	spoc := suite.factories.User.Spoc()
	suite.NoError(suite.repo.Create(spoc))
	suite.False(spoc.Verified)

	rows, err := suite.repo.Verify(spoc.ID)

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	found, err := suite.repo.GetByID(spoc.ID)
	suite.NoError(err)
	suite.True(found.Verified)
}

// TestVerifyUnknownID tests verifying a nonexistent user
func (suite *UserRepositoryTestSuite) TestVerifyUnknownID() {
	rows, err := suite.repo.Verify(uuid.New())

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
