//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"matchday-backend/internal/database/models"
	"matchday-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	userRepo      *UserRepository
	groupRepo     *GroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create and persist a user
func (suite *MembershipRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)
	return user
}

// helper to create and persist a group
func (suite *MembershipRepositoryTestSuite) createGroup() *models.Group {
	group := suite.factories.Group.Create()
	err := suite.groupRepo.Create(group)
	suite.NoError(err)
	return group
}

// TestAddMember tests adding a user to a group
func (suite *MembershipRepositoryTestSuite) TestAddMember() {
	user := suite.createUser()
	group := suite.createGroup()

	err := suite.repo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: user.ID})
	suite.NoError(err)

	isMember, err := suite.repo.IsMember(group.ID, user.ID)
	suite.NoError(err)
	suite.True(isMember)
}

// TestAddMemberDuplicate tests that a second membership is rejected by the key
func (suite *MembershipRepositoryTestSuite) TestAddMemberDuplicate() {
	user := suite.createUser()
	group := suite.createGroup()

	err := suite.repo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: user.ID})
	suite.NoError(err)

	err = suite.repo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: user.ID})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestIsMemberNotAMember tests membership check for an outsider
func (suite *MembershipRepositoryTestSuite) TestIsMemberNotAMember() {
	user := suite.createUser()
	group := suite.createGroup()

	isMember, err := suite.repo.IsMember(group.ID, user.ID)
	suite.NoError(err)
	suite.False(isMember)
}

// TestListMembersOrderedByJoin tests listing members oldest first
func (suite *MembershipRepositoryTestSuite) TestListMembersOrderedByJoin() {
	group := suite.createGroup()
	first := suite.createUser()
	second := suite.createUser()

	err := suite.repo.AddMember(&models.GroupMember{
		GroupID: group.ID, UserID: first.ID, JoinedAt: time.Now().Add(-time.Hour),
	})
	suite.NoError(err)
	err = suite.repo.AddMember(&models.GroupMember{
		GroupID: group.ID, UserID: second.ID, JoinedAt: time.Now(),
	})
	suite.NoError(err)

	members, err := suite.repo.ListMembers(group.ID)
	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal(first.ID, members[0].UserID)
	suite.Equal(second.ID, members[1].UserID)
	suite.NotNil(members[0].User)
	suite.Equal(first.Email, members[0].User.Email)
}

// TestCountMembers tests counting the group's members
func (suite *MembershipRepositoryTestSuite) TestCountMembers() {
	group := suite.createGroup()
	for i := 0; i < 3; i++ {
		user := suite.createUser()
		err := suite.repo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: user.ID})
		suite.NoError(err)
	}

	count, err := suite.repo.CountMembers(group.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestRemoveMember tests removing a user from a group
func (suite *MembershipRepositoryTestSuite) TestRemoveMember() {
	user := suite.createUser()
	group := suite.createGroup()

	err := suite.repo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: user.ID})
	suite.NoError(err)

	err = suite.repo.RemoveMember(group.ID, user.ID)
	suite.NoError(err)

	isMember, err := suite.repo.IsMember(group.ID, user.ID)
	suite.NoError(err)
	suite.False(isMember)
}

// TestAddAdminDuplicate tests that a second admin grant is rejected by the key
func (suite *MembershipRepositoryTestSuite) TestAddAdminDuplicate() {
	user := suite.createUser()
	group := suite.createGroup()

	err := suite.repo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: user.ID})
	suite.NoError(err)

	err = suite.repo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: user.ID})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestOwnerID tests that the owner is the admin with the earliest grant
func (suite *MembershipRepositoryTestSuite) TestOwnerID() {
	group := suite.createGroup()
	owner := suite.createUser()
	later := suite.createUser()

	err := suite.repo.AddAdmin(&models.GroupAdmin{
		GroupID: group.ID, UserID: owner.ID, CreatedAt: time.Now().Add(-time.Hour),
	})
	suite.NoError(err)
	err = suite.repo.AddAdmin(&models.GroupAdmin{
		GroupID: group.ID, UserID: later.ID, CreatedAt: time.Now(),
	})
	suite.NoError(err)

	ownerID, err := suite.repo.OwnerID(group.ID)
	suite.NoError(err)
	suite.Equal(owner.ID, ownerID)
}

// TestOwnerIDNoAdmins tests resolving the owner of a group without admins
func (suite *MembershipRepositoryTestSuite) TestOwnerIDNoAdmins() {
	group := suite.createGroup()

	_, err := suite.repo.OwnerID(group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOwnerSurvivesDemotionOfOthers tests that removing a later admin does not
// move ownership
func (suite *MembershipRepositoryTestSuite) TestOwnerSurvivesDemotionOfOthers() {
	group := suite.createGroup()
	owner := suite.createUser()
	later := suite.createUser()

	err := suite.repo.AddAdmin(&models.GroupAdmin{
		GroupID: group.ID, UserID: owner.ID, CreatedAt: time.Now().Add(-time.Hour),
	})
	suite.NoError(err)
	err = suite.repo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: later.ID})
	suite.NoError(err)

	err = suite.repo.RemoveAdmin(group.ID, later.ID)
	suite.NoError(err)

	ownerID, err := suite.repo.OwnerID(group.ID)
	suite.NoError(err)
	suite.Equal(owner.ID, ownerID)
}

// TestAdminIDs tests listing the group's admin user IDs
func (suite *MembershipRepositoryTestSuite) TestAdminIDs() {
	group := suite.createGroup()
	first := suite.createUser()
	second := suite.createUser()

	err := suite.repo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: first.ID})
	suite.NoError(err)
	err = suite.repo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: second.ID})
	suite.NoError(err)

	ids, err := suite.repo.AdminIDs(group.ID)
	suite.NoError(err)
	suite.Len(ids, 2)
	suite.Contains(ids, first.ID)
	suite.Contains(ids, second.ID)
}

// Run the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
