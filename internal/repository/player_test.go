//go:build integration
// +build integration

package repository

import (
	"testing"

	"matchday-backend/internal/database/models"
	"matchday-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	userRepo      *UserRepository
	groupRepo     *GroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create a persisted user and group
func (suite *PlayerRepositoryTestSuite) createUserAndGroup() (*models.User, *models.Group) {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	group := suite.factories.Group.Create()
	err = suite.groupRepo.Create(group)
	suite.NoError(err)
	return user, group
}

// TestCreateAndGetByUserAndGroup tests creating and looking up a profile
func (suite *PlayerRepositoryTestSuite) TestCreateAndGetByUserAndGroup() {
	user, group := suite.createUserAndGroup()

	player := suite.factories.Player.InGroup(user.ID, group.ID)
	err := suite.repo.Create(player)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByUserAndGroup(user.ID, group.ID)
	suite.NoError(err)
	suite.Equal(player.ID, retrieved.ID)
	suite.NotNil(retrieved.User)
	suite.Equal(user.Email, retrieved.User.Email)
}

// TestUpsertRefreshesExistingProfile tests that a second upsert updates in place
func (suite *PlayerRepositoryTestSuite) TestUpsertRefreshesExistingProfile() {
	user, group := suite.createUserAndGroup()

	original := suite.factories.Player.InGroup(user.ID, group.ID)
	err := suite.repo.Create(original)
	suite.NoError(err)

	refreshed := &models.TeamPlayer{
		UserID:            user.ID,
		GroupID:           group.ID,
		Role:              models.PlayerRoleAdmin,
		Rating:            8,
		IsKeyPlayer:       true,
		PreferredPosition: models.PositionGoalkeeper,
	}
	err = suite.repo.Upsert(refreshed)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByUserAndGroup(user.ID, group.ID)
	suite.NoError(err)
	suite.Equal(original.ID, retrieved.ID)
	suite.Equal(8, retrieved.Rating)
	suite.Equal(models.PositionGoalkeeper, retrieved.PreferredPosition)
	suite.Equal(models.PlayerRoleAdmin, retrieved.Role)
	suite.True(retrieved.IsKeyPlayer)
}

// TestSetRole tests mirroring a role change onto the profile
func (suite *PlayerRepositoryTestSuite) TestSetRole() {
	user, group := suite.createUserAndGroup()

	player := suite.factories.Player.InGroup(user.ID, group.ID)
	err := suite.repo.Create(player)
	suite.NoError(err)

	err = suite.repo.SetRole(group.ID, user.ID, models.PlayerRoleAdmin)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByUserAndGroup(user.ID, group.ID)
	suite.NoError(err)
	suite.Equal(models.PlayerRoleAdmin, retrieved.Role)
}

// TestSetRoleNoProfile tests setting a role for a user without a profile
func (suite *PlayerRepositoryTestSuite) TestSetRoleNoProfile() {
	user, group := suite.createUserAndGroup()

	err := suite.repo.SetRole(group.ID, user.ID, models.PlayerRoleAdmin)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestExists tests the profile existence check
func (suite *PlayerRepositoryTestSuite) TestExists() {
	user, group := suite.createUserAndGroup()

	exists, err := suite.repo.Exists(user.ID, group.ID)
	suite.NoError(err)
	suite.False(exists)

	player := suite.factories.Player.InGroup(user.ID, group.ID)
	err = suite.repo.Create(player)
	suite.NoError(err)

	exists, err = suite.repo.Exists(user.ID, group.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestDeleteByUserAndGroup tests deleting the user's profile in one group only
func (suite *PlayerRepositoryTestSuite) TestDeleteByUserAndGroup() {
	user, group := suite.createUserAndGroup()
	otherGroup := suite.factories.Group.Create()
	err := suite.groupRepo.Create(otherGroup)
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.Player.InGroup(user.ID, group.ID))
	suite.NoError(err)
	err = suite.repo.Create(suite.factories.Player.InGroup(user.ID, otherGroup.ID))
	suite.NoError(err)

	err = suite.repo.DeleteByUserAndGroup(user.ID, group.ID)
	suite.NoError(err)

	exists, err := suite.repo.Exists(user.ID, group.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.Exists(user.ID, otherGroup.ID)
	suite.NoError(err)
	suite.True(exists)
}

// Run the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
