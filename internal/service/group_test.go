package service_test

import (
	"testing"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/mocks"
	"matchday-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type GroupServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockGroupRepo      *mocks.MockGroupRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockPlayerRepo     *mocks.MockPlayerRepositoryInterface
	mockMatchRepo      *mocks.MockMatchRepositoryInterface
	groupService       *service.GroupService
}

func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.groupService = service.NewGroupService(
		suite.mockGroupRepo,
		suite.mockMembershipRepo,
		suite.mockPlayerRepo,
		suite.mockMatchRepo,
		validator.New(),
	)
}

func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupServiceTestSuite) TestCreate_SeedsCreatorAsOwner() {
	actorID := uuid.New()
	groupID := uuid.New()

	suite.mockGroupRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(group *models.Group) error {
		assert.Equal(suite.T(), models.GroupPrivacyPrivate, group.Privacy)
		group.ID = groupID
		return nil
	})
	suite.mockMembershipRepo.EXPECT().AddMember(&models.GroupMember{GroupID: groupID, UserID: actorID}).Return(nil)
	suite.mockMembershipRepo.EXPECT().AddAdmin(&models.GroupAdmin{GroupID: groupID, UserID: actorID}).Return(nil)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.TeamPlayer) error {
		assert.Equal(suite.T(), models.PlayerRoleAdmin, profile.Role)
		assert.Equal(suite.T(), models.DefaultRating, profile.Rating)
		return nil
	})

	resp, err := suite.groupService.Create(actorID, &service.CreateGroupRequest{Name: "Thursday Five-a-side"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, resp.ID)
	assert.Equal(suite.T(), models.GroupPrivacyPrivate, resp.Privacy)
}

func (suite *GroupServiceTestSuite) TestCreate_MissingName_Invalid() {
	resp, err := suite.groupService.Create(uuid.New(), &service.CreateGroupRequest{})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *GroupServiceTestSuite) TestGetByID_PrivateGroupHiddenFromOutsiders() {
	actorID := uuid.New()
	groupID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Privacy: models.GroupPrivacyPrivate}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(false, nil)

	resp, err := suite.groupService.GetByID(actorID, groupID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

func (suite *GroupServiceTestSuite) TestGetByID_PublicGroupVisibleToOutsiders() {
	actorID := uuid.New()
	groupID := uuid.New()
	ownerID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Name: "Open Kickabout", Privacy: models.GroupPrivacyPublic}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(false, nil)
	suite.mockMembershipRepo.EXPECT().CountMembers(groupID).Return(int64(12), nil)
	suite.mockMatchRepo.EXPECT().CountByGroup(groupID).Return(int64(30), nil)
	suite.mockMatchRepo.EXPECT().CountUpcomingByGroup(groupID, gomock.Any()).Return(int64(2), nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(ownerID, nil)

	resp, err := suite.groupService.GetByID(actorID, groupID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), resp.MemberCount)
	assert.Equal(suite.T(), int64(2), resp.UpcomingMatches)
	assert.Equal(suite.T(), ownerID, resp.OwnerID)
	assert.False(suite.T(), resp.IsAdmin)
}

func (suite *GroupServiceTestSuite) TestUpdate_NotAdmin_Forbidden() {
	actorID := uuid.New()
	groupID := uuid.New()
	name := "Renamed"

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)

	resp, err := suite.groupService.Update(actorID, groupID, &service.UpdateGroupRequest{Name: &name})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *GroupServiceTestSuite) TestUpdate_InvalidPrivacy_Rejected() {
	actorID := uuid.New()
	groupID := uuid.New()
	privacy := models.GroupPrivacy("secret")

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(true, nil)

	resp, err := suite.groupService.Update(actorID, groupID, &service.UpdateGroupRequest{Privacy: &privacy})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *GroupServiceTestSuite) TestDelete_OwnerOnly() {
	actorID := uuid.New()
	groupID := uuid.New()

	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(uuid.New(), nil)

	err := suite.groupService.Delete(actorID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *GroupServiceTestSuite) TestDelete_Owner_Succeeds() {
	actorID := uuid.New()
	groupID := uuid.New()

	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(actorID, nil)
	suite.mockGroupRepo.EXPECT().Delete(groupID).Return(nil)

	err := suite.groupService.Delete(actorID, groupID)

	assert.NoError(suite.T(), err)
}

func (suite *GroupServiceTestSuite) TestJoin_PublicGroup_CreatesProfile() {
	actorID := uuid.New()
	groupID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Privacy: models.GroupPrivacyPublic}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockGroupRepo.EXPECT().IsBanned(groupID, actorID).Return(false, nil)
	suite.mockMembershipRepo.EXPECT().AddMember(&models.GroupMember{GroupID: groupID, UserID: actorID}).Return(nil)
	stale := suite.mockPlayerRepo.EXPECT().DeleteByUserAndGroup(actorID, groupID).Return(nil)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.TeamPlayer) error {
		assert.Equal(suite.T(), models.PlayerRolePlayer, profile.Role)
		assert.Equal(suite.T(), models.DefaultRating, profile.Rating)
		assert.Equal(suite.T(), models.DefaultPosition, profile.PreferredPosition)
		return nil
	}).After(stale)

	err := suite.groupService.Join(actorID, groupID)

	assert.NoError(suite.T(), err)
}

func (suite *GroupServiceTestSuite) TestJoin_PrivateGroup_Rejected() {
	actorID := uuid.New()
	groupID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Privacy: models.GroupPrivacyPrivate}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)

	err := suite.groupService.Join(actorID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupPrivate)
}

func (suite *GroupServiceTestSuite) TestJoin_BannedUser_Rejected() {
	actorID := uuid.New()
	groupID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Privacy: models.GroupPrivacyPublic}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockGroupRepo.EXPECT().IsBanned(groupID, actorID).Return(true, nil)

	err := suite.groupService.Join(actorID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrBanned)
}

func (suite *GroupServiceTestSuite) TestJoin_ExistingMember_Conflict() {
	actorID := uuid.New()
	groupID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, Privacy: models.GroupPrivacyPublic}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockGroupRepo.EXPECT().IsBanned(groupID, actorID).Return(false, nil)
	suite.mockMembershipRepo.EXPECT().AddMember(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	err := suite.groupService.Join(actorID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

func (suite *GroupServiceTestSuite) TestDiscover_ListsPublicGroups() {
	actorID := uuid.New()
	groups := []models.Group{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Open Kickabout", Privacy: models.GroupPrivacyPublic},
	}

	suite.mockGroupRepo.EXPECT().ListPublicExcludingMember(actorID).Return(groups, nil)

	resp, err := suite.groupService.Discover(actorID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Open Kickabout", resp[0].Name)
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
