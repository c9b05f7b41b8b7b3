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

type RosterServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockMatchRepo       *mocks.MockMatchRepositoryInterface
	mockRosterRepo      *mocks.MockRosterRepositoryInterface
	mockWaitingListRepo *mocks.MockWaitingListRepositoryInterface
	mockPlayerRepo      *mocks.MockPlayerRepositoryInterface
	mockMembershipRepo  *mocks.MockMembershipRepositoryInterface
	rosterService       *service.RosterService
	validator           *validator.Validate
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockRosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.mockWaitingListRepo = mocks.NewMockWaitingListRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.rosterService = service.NewRosterService(
		suite.mockMatchRepo,
		suite.mockRosterRepo,
		suite.mockWaitingListRepo,
		suite.mockPlayerRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)
}

func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterServiceTestSuite) openMatch(groupID uuid.UUID) *models.Match {
	return &models.Match{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		GroupID:           groupID,
		MaxPlayersPerTeam: 5,
		PlannedTeams:      2,
	}
}

func (suite *RosterServiceTestSuite) TestJoin_UnderCapacity_Registered() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(3), nil)
	suite.mockRosterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.MatchPlayer) error {
		assert.Equal(suite.T(), match.ID, entry.MatchID)
		assert.Equal(suite.T(), player.ID, *entry.TeamPlayerID)
		return nil
	})
	suite.mockWaitingListRepo.EXPECT().DeleteByMatchAndPlayer(match.ID, player.ID).Return(nil)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Registered)
	assert.False(suite.T(), resp.Waitlisted)
}

// A waitlisted player whose spot opened up (someone left without promotion)
// must land on the roster and come off the waiting list in the same join.
func (suite *RosterServiceTestSuite) TestJoin_WaitlistedRejoinClearsQueueEntry() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID) // capacity 10
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(9), nil)
	rosterInsert := suite.mockRosterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.MatchPlayer) error {
		assert.Equal(suite.T(), player.ID, *entry.TeamPlayerID)
		return nil
	})
	suite.mockWaitingListRepo.EXPECT().DeleteByMatchAndPlayer(match.ID, player.ID).Return(nil).After(rosterInsert)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Registered)
	assert.False(suite.T(), resp.Waitlisted)
}

func (suite *RosterServiceTestSuite) TestJoin_FullMatch_Waitlisted() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID) // capacity 10
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(10), nil)
	suite.mockRosterRepo.EXPECT().GetByMatchAndPlayer(match.ID, player.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockWaitingListRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.WaitingListEntry) error {
		assert.Equal(suite.T(), match.ID, entry.MatchID)
		assert.Equal(suite.T(), player.ID, entry.TeamPlayerID)
		return nil
	})

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Registered)
	assert.True(suite.T(), resp.Waitlisted)
}

func (suite *RosterServiceTestSuite) TestJoin_FullMatchAlreadyRostered_Conflict() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(10), nil)
	suite.mockRosterRepo.EXPECT().GetByMatchAndPlayer(match.ID, player.ID).Return(&models.MatchPlayer{}, nil)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyRegistered)
}

func (suite *RosterServiceTestSuite) TestJoin_TeamsCreated_Locked() {
	userID := uuid.New()
	match := suite.openMatch(uuid.New())
	match.TeamsCreated = true

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamsLocked)
}

func (suite *RosterServiceTestSuite) TestJoin_Finalized_Rejected() {
	userID := uuid.New()
	match := suite.openMatch(uuid.New())
	match.TeamsCreated = true
	match.TeamsFinalized = true

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchFinalized)
}

func (suite *RosterServiceTestSuite) TestJoin_NoProfile_NotFound() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.rosterService.Join(userID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

func (suite *RosterServiceTestSuite) TestLeave_RemovesWithoutPromotion() {
	userID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndGroup(userID, groupID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().DeleteByMatchAndPlayer(match.ID, player.ID).Return(nil)
	suite.mockWaitingListRepo.EXPECT().DeleteByMatchAndPlayer(match.ID, player.ID).Return(nil)
	// No First/Create expectations: leaving must not promote anyone

	err := suite.rosterService.Leave(userID, match.ID)

	assert.NoError(suite.T(), err)
}

func (suite *RosterServiceTestSuite) TestAddParticipant_Guest_Registered() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(5), nil)
	suite.mockRosterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.MatchPlayer) error {
		assert.Equal(suite.T(), "Ringer Rick", entry.GuestName)
		assert.Nil(suite.T(), entry.TeamPlayerID)
		return nil
	})

	resp, err := suite.rosterService.AddParticipant(adminID, match.ID, &service.AddParticipantRequest{GuestName: "Ringer Rick"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Registered)
}

func (suite *RosterServiceTestSuite) TestAddParticipant_GroupPlayer_Registered() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().GetByID(player.ID).Return(player, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(4), nil)
	suite.mockRosterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.MatchPlayer) error {
		assert.Equal(suite.T(), player.ID, *entry.TeamPlayerID)
		return nil
	})
	suite.mockWaitingListRepo.EXPECT().DeleteByMatchAndPlayer(match.ID, player.ID).Return(nil)

	resp, err := suite.rosterService.AddParticipant(adminID, match.ID, &service.AddParticipantRequest{TeamPlayerID: &player.ID})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Registered)
}

func (suite *RosterServiceTestSuite) TestAddParticipant_GuestOnFullMatch_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(10), nil)

	resp, err := suite.rosterService.AddParticipant(adminID, match.ID, &service.AddParticipantRequest{GuestName: "Ringer Rick"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCapacityExceeded)
}

func (suite *RosterServiceTestSuite) TestAddParticipant_BothTargets_Invalid() {
	playerID := uuid.New()
	req := &service.AddParticipantRequest{TeamPlayerID: &playerID, GuestName: "Ringer Rick"}

	resp, err := suite.rosterService.AddParticipant(uuid.New(), uuid.New(), req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RosterServiceTestSuite) TestAddParticipant_NeitherTarget_Invalid() {
	resp, err := suite.rosterService.AddParticipant(uuid.New(), uuid.New(), &service.AddParticipantRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RosterServiceTestSuite) TestAddParticipant_PlayerFromOtherGroup_NotFound() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	player := &models.TeamPlayer{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: uuid.New()}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockPlayerRepo.EXPECT().GetByID(player.ID).Return(player, nil)

	resp, err := suite.rosterService.AddParticipant(adminID, match.ID, &service.AddParticipantRequest{TeamPlayerID: &player.ID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

func (suite *RosterServiceTestSuite) TestAddParticipant_NotAdmin_Forbidden() {
	actorID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)

	resp, err := suite.rosterService.AddParticipant(actorID, match.ID, &service.AddParticipantRequest{GuestName: "Ringer Rick"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *RosterServiceTestSuite) TestRemovePlayer_PromotesWaitingHead() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	participantID := uuid.New()
	waitingPlayerID := uuid.New()
	head := &models.WaitingListEntry{ID: uuid.New(), MatchID: match.ID, TeamPlayerID: waitingPlayerID}

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().GetByID(participantID).Return(&models.MatchPlayer{ID: participantID, MatchID: match.ID}, nil)
	suite.mockRosterRepo.EXPECT().Delete(participantID).Return(nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(9), nil)
	suite.mockWaitingListRepo.EXPECT().First(match.ID).Return(head, nil)
	suite.mockRosterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.MatchPlayer) error {
		assert.Equal(suite.T(), waitingPlayerID, *entry.TeamPlayerID)
		return nil
	})
	suite.mockWaitingListRepo.EXPECT().Delete(head.ID).Return(nil)

	err := suite.rosterService.RemovePlayer(adminID, match.ID, participantID)

	assert.NoError(suite.T(), err)
}

func (suite *RosterServiceTestSuite) TestRemovePlayer_EmptyWaitingList_NoPromotion() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	participantID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().GetByID(participantID).Return(&models.MatchPlayer{ID: participantID, MatchID: match.ID}, nil)
	suite.mockRosterRepo.EXPECT().Delete(participantID).Return(nil)
	suite.mockRosterRepo.EXPECT().CountByMatch(match.ID).Return(int64(9), nil)
	suite.mockWaitingListRepo.EXPECT().First(match.ID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.rosterService.RemovePlayer(adminID, match.ID, participantID)

	assert.NoError(suite.T(), err)
}

func (suite *RosterServiceTestSuite) TestRemovePlayer_WrongMatch_NotFound() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	participantID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetWithDetails(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().GetByID(participantID).Return(&models.MatchPlayer{ID: participantID, MatchID: uuid.New()}, nil)

	err := suite.rosterService.RemovePlayer(adminID, match.ID, participantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchPlayerNotFound)
}

func (suite *RosterServiceTestSuite) TestWaitingList_OrderedPositions() {
	actorID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)
	entries := []models.WaitingListEntry{
		{ID: uuid.New(), MatchID: match.ID, TeamPlayerID: uuid.New()},
		{ID: uuid.New(), MatchID: match.ID, TeamPlayerID: uuid.New()},
		{ID: uuid.New(), MatchID: match.ID, TeamPlayerID: uuid.New()},
	}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(true, nil)
	suite.mockWaitingListRepo.EXPECT().ListByMatch(match.ID).Return(entries, nil)

	resp, err := suite.rosterService.WaitingList(actorID, match.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 3)
	for i := range resp {
		assert.Equal(suite.T(), i+1, resp[i].Position)
		assert.Equal(suite.T(), entries[i].TeamPlayerID, resp[i].TeamPlayerID)
	}
}

func (suite *RosterServiceTestSuite) TestWaitingList_NonMember_NotFound() {
	actorID := uuid.New()
	groupID := uuid.New()
	match := suite.openMatch(groupID)

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsMember(groupID, actorID).Return(false, nil)

	resp, err := suite.rosterService.WaitingList(actorID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
