package service_test

import (
	"testing"
	"time"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/mocks"
	"matchday-backend/internal/repository"
	"matchday-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MemberServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockMembershipRepo  *mocks.MockMembershipRepositoryInterface
	mockPlayerRepo      *mocks.MockPlayerRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockRosterRepo      *mocks.MockRosterRepositoryInterface
	mockWaitingListRepo *mocks.MockWaitingListRepositoryInterface
	mockStatsRepo       *mocks.MockStatsRepositoryInterface
	memberService       *service.MemberService
	validator           *validator.Validate
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.mockWaitingListRepo = mocks.NewMockWaitingListRepositoryInterface(suite.ctrl)
	suite.mockStatsRepo = mocks.NewMockStatsRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.memberService = service.NewMemberService(
		suite.mockMembershipRepo,
		suite.mockPlayerRepo,
		suite.mockUserRepo,
		suite.mockRosterRepo,
		suite.mockWaitingListRepo,
		suite.mockStatsRepo,
		suite.validator,
	)
}

func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) TestList_JoinsProfilesWithMemberships() {
	actorID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()
	joined := time.Now().Add(-72 * time.Hour)
	players := []models.TeamPlayer{
		{
			BaseModel:         models.BaseModel{ID: uuid.New()},
			UserID:            userID,
			GroupID:           groupID,
			Role:              models.PlayerRoleAdmin,
			Rating:            8,
			PreferredPosition: models.PositionForward,
			User:              &models.User{BaseModel: models.BaseModel{ID: userID}, Name: "Sam Keeper", Email: "sam@test.com"},
		},
	}
	members := []models.GroupMember{{GroupID: groupID, UserID: userID, JoinedAt: joined}}

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().ListByGroup(groupID).Return(players, nil)
	suite.mockMembershipRepo.EXPECT().ListMembers(groupID).Return(members, nil)

	resp, err := suite.memberService.List(actorID, groupID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Sam Keeper", resp[0].Name)
	assert.Equal(suite.T(), models.PlayerRoleAdmin, resp[0].Role)
	assert.Equal(suite.T(), 8, resp[0].Rating)
	assert.Equal(suite.T(), joined, resp[0].JoinedAt)
	assert.False(suite.T(), resp[0].IsGuest)
}

func (suite *MemberServiceTestSuite) TestList_NonMember_NotFound() {
	actorID := uuid.New()
	groupID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(false, nil)

	resp, err := suite.memberService.List(actorID, groupID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

func (suite *MemberServiceTestSuite) TestDetails_NonAdminViewer_HidesAdminFields() {
	actorID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()
	player := &models.TeamPlayer{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		GroupID:     groupID,
		Rating:      9,
		IsKeyPlayer: true,
		User:        &models.User{BaseModel: models.BaseModel{ID: userID}, Name: "Sam Keeper", Email: "sam@test.com"},
	}

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockStatsRepo.EXPECT().TotalsByPlayer(player.ID).Return(&repository.PlayerTotals{Matches: 4, Goals: 7, Assists: 2}, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)

	resp, err := suite.memberService.Details(actorID, groupID, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Member.Rating)
	assert.False(suite.T(), resp.Member.IsKeyPlayer)
	assert.Equal(suite.T(), int64(4), resp.Stats.Matches)
	assert.Equal(suite.T(), 7, resp.Stats.Goals)
}

func (suite *MemberServiceTestSuite) TestDetails_SelfViewer_SeesOwnRating() {
	groupID := uuid.New()
	userID := uuid.New()
	player := &models.TeamPlayer{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		GroupID:     groupID,
		Rating:      9,
		IsKeyPlayer: true,
		User:        &models.User{BaseModel: models.BaseModel{ID: userID}, Name: "Sam Keeper", Email: "sam@test.com"},
	}

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, userID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockStatsRepo.EXPECT().TotalsByPlayer(player.ID).Return(&repository.PlayerTotals{}, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, userID).Return(false, nil)

	resp, err := suite.memberService.Details(userID, groupID, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 9, resp.Member.Rating)
	assert.True(suite.T(), resp.Member.IsKeyPlayer)
}

func (suite *MemberServiceTestSuite) TestUpdateProfile_NonAdminRating_Forbidden() {
	actorID := uuid.New()
	groupID := uuid.New()
	rating := 9

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)

	err := suite.memberService.UpdateProfile(actorID, groupID, actorID, &service.UpdateProfileRequest{Rating: &rating})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *MemberServiceTestSuite) TestUpdateProfile_SelfPosition_Allowed() {
	actorID := uuid.New()
	groupID := uuid.New()
	position := models.PositionGoalkeeper
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: actorID, GroupID: groupID}

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(actorID, groupID).Return(player, nil)
	suite.mockPlayerRepo.EXPECT().Update(player.ID, map[string]interface{}{"preferred_position": position}).Return(nil)

	err := suite.memberService.UpdateProfile(actorID, groupID, actorID, &service.UpdateProfileRequest{PreferredPosition: &position})

	assert.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestUpdateProfile_InvalidPosition_Rejected() {
	actorID := uuid.New()
	groupID := uuid.New()
	position := models.Position("STRIKER")
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: actorID, GroupID: groupID}

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(actorID, groupID).Return(player, nil)

	err := suite.memberService.UpdateProfile(actorID, groupID, actorID, &service.UpdateProfileRequest{PreferredPosition: &position})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MemberServiceTestSuite) TestPromote_MirrorsRoleOntoProfile() {
	adminID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, userID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().AddAdmin(&models.GroupAdmin{GroupID: groupID, UserID: userID}).Return(nil)
	suite.mockPlayerRepo.EXPECT().SetRole(groupID, userID, models.PlayerRoleAdmin).Return(nil)

	err := suite.memberService.Promote(adminID, groupID, userID)

	assert.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestPromote_AlreadyAdmin_Idempotent() {
	adminID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, userID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().AddAdmin(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	err := suite.memberService.Promote(adminID, groupID, userID)

	assert.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestDemote_Owner_Immutable() {
	adminID := uuid.New()
	groupID := uuid.New()
	ownerID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(ownerID, nil)

	err := suite.memberService.Demote(adminID, groupID, ownerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerImmutable)
}

func (suite *MemberServiceTestSuite) TestDemote_NotAnAdmin_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(uuid.New(), nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, userID).Return(false, nil)

	err := suite.memberService.Demote(adminID, groupID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAdmin)
}

func (suite *MemberServiceTestSuite) TestRemove_Owner_Immutable() {
	adminID := uuid.New()
	groupID := uuid.New()
	ownerID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(ownerID, nil)

	err := suite.memberService.Remove(adminID, groupID, ownerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerImmutable)
}

func (suite *MemberServiceTestSuite) TestRemove_EvictsEverything() {
	adminID := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(uuid.New(), nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().DeleteByPlayer(player.ID).Return(nil)
	suite.mockWaitingListRepo.EXPECT().DeleteByPlayer(player.ID).Return(nil)
	suite.mockPlayerRepo.EXPECT().Delete(player.ID).Return(nil)
	suite.mockMembershipRepo.EXPECT().RemoveAdmin(groupID, userID).Return(nil)
	suite.mockMembershipRepo.EXPECT().RemoveMember(groupID, userID).Return(nil)

	err := suite.memberService.Remove(adminID, groupID, userID)

	assert.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestLeave_OwnerCannotLeave() {
	ownerID := uuid.New()
	groupID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, ownerID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(ownerID, nil)

	err := suite.memberService.Leave(ownerID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerImmutable)
}

func (suite *MemberServiceTestSuite) TestLeave_RegularMember_Evicted() {
	userID := uuid.New()
	groupID := uuid.New()
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMembershipRepo.EXPECT().IsMember(groupID, userID).Return(true, nil)
	suite.mockMembershipRepo.EXPECT().OwnerID(groupID).Return(uuid.New(), nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().DeleteByPlayer(player.ID).Return(nil)
	suite.mockWaitingListRepo.EXPECT().DeleteByPlayer(player.ID).Return(nil)
	suite.mockPlayerRepo.EXPECT().Delete(player.ID).Return(nil)
	suite.mockMembershipRepo.EXPECT().RemoveAdmin(groupID, userID).Return(nil)
	suite.mockMembershipRepo.EXPECT().RemoveMember(groupID, userID).Return(nil)

	err := suite.memberService.Leave(userID, groupID)

	assert.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestAddGuest_ProvisionsSyntheticUser() {
	adminID := uuid.New()
	groupID := uuid.New()

	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), "Ringer Rick", user.Name)
		assert.True(suite.T(), models.IsGuestEmail(user.Email))
		user.ID = uuid.New()
		return nil
	})
	suite.mockMembershipRepo.EXPECT().AddMember(gomock.Any()).Return(nil)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(player *models.TeamPlayer) error {
		assert.Equal(suite.T(), groupID, player.GroupID)
		assert.Equal(suite.T(), models.DefaultRating, player.Rating)
		assert.Equal(suite.T(), models.DefaultPosition, player.PreferredPosition)
		assert.Equal(suite.T(), models.PlayerRolePlayer, player.Role)
		return nil
	})

	resp, err := suite.memberService.AddGuest(adminID, groupID, &service.AddGuestRequest{Name: "Ringer Rick"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IsGuest)
	assert.Equal(suite.T(), models.DefaultRating, resp.Rating)
}

func (suite *MemberServiceTestSuite) TestAddGuest_MissingName_Invalid() {
	resp, err := suite.memberService.AddGuest(uuid.New(), uuid.New(), &service.AddGuestRequest{})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

func TestGuestEmail(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	email := service.GuestEmail("Ringer Rick", now)

	assert.Equal(t, "ringer.rick.guest-1700000000000@temp.local", email)
	assert.True(t, models.IsGuestEmail(email))
}
