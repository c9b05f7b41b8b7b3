package service_test

import (
	"testing"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/mocks"
	"matchday-backend/internal/repository"
	"matchday-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type FormationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMatchRepo      *mocks.MockMatchRepositoryInterface
	mockRosterRepo     *mocks.MockRosterRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	formationService   *service.FormationService
}

func (suite *FormationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockRosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.formationService = service.NewFormationService(
		suite.mockMatchRepo,
		suite.mockRosterRepo,
		suite.mockTeamRepo,
		suite.mockMembershipRepo,
	)
}

func (suite *FormationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func participants(matchID uuid.UUID, n int) []models.MatchPlayer {
	out := make([]models.MatchPlayer, n)
	for i := range out {
		id := uuid.New()
		playerID := uuid.New()
		out[i] = models.MatchPlayer{ID: id, MatchID: matchID, TeamPlayerID: &playerID}
	}
	return out
}

func (suite *FormationServiceTestSuite) TestCreateTeams_ShufflesFullRoster() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		GroupID:           groupID,
		MaxPlayersPerTeam: 5,
		PlannedTeams:      2,
	}
	roster := participants(match.ID, 10)
	formed := []models.Team{
		{ID: uuid.New(), MatchID: match.ID, Name: "Team A"},
		{ID: uuid.New(), MatchID: match.ID, Name: "Team B"},
	}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().ListByMatch(match.ID).Return(roster, nil).Times(2)
	suite.mockTeamRepo.EXPECT().FormTeams(match.ID, []string{"Team A", "Team B"}, gomock.Any()).
		DoAndReturn(func(matchID uuid.UUID, names []string, order []uuid.UUID) ([]models.Team, error) {
			// Every roster entry is dealt exactly once, in some shuffled order
			assert.Len(suite.T(), order, len(roster))
			seen := make(map[uuid.UUID]bool, len(order))
			for _, id := range order {
				seen[id] = true
			}
			for i := range roster {
				assert.True(suite.T(), seen[roster[i].ID])
			}
			return formed, nil
		})

	resp, err := suite.formationService.CreateTeams(adminID, match.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), match.ID, resp.MatchID)
	assert.Len(suite.T(), resp.Teams, 2)
	assert.Equal(suite.T(), "Team A", resp.Teams[0].Name)
	assert.Equal(suite.T(), "Team B", resp.Teams[1].Name)
}

func (suite *FormationServiceTestSuite) TestCreateTeams_SevenPlayers_TwoTeams() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		GroupID:           groupID,
		MaxPlayersPerTeam: 4,
		PlannedTeams:      3,
	}
	roster := participants(match.ID, 7)
	formed := []models.Team{
		{ID: uuid.New(), MatchID: match.ID, Name: "Team A"},
		{ID: uuid.New(), MatchID: match.ID, Name: "Team B"},
		{ID: uuid.New(), MatchID: match.ID, Name: "Team C"},
	}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().ListByMatch(match.ID).Return(roster, nil).Times(2)
	// 7 players under 3x4 capacity: ceil(7/3)=3 teams, within the planned count
	suite.mockTeamRepo.EXPECT().FormTeams(match.ID, []string{"Team A", "Team B", "Team C"}, gomock.Any()).Return(formed, nil)

	resp, err := suite.formationService.CreateTeams(adminID, match.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Teams, 3)
}

func (suite *FormationServiceTestSuite) TestCreateTeams_EmptyRoster_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID, MaxPlayersPerTeam: 5, PlannedTeams: 2}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockRosterRepo.EXPECT().ListByMatch(match.ID).Return([]models.MatchPlayer{}, nil)

	resp, err := suite.formationService.CreateTeams(adminID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyRoster)
}

func (suite *FormationServiceTestSuite) TestCreateTeams_AlreadyCreated_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID, TeamsCreated: true}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)

	resp, err := suite.formationService.CreateTeams(adminID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamsAlreadyCreated)
}

func (suite *FormationServiceTestSuite) TestCreateTeams_NotAdmin_Forbidden() {
	actorID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, actorID).Return(false, nil)

	resp, err := suite.formationService.CreateTeams(actorID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *FormationServiceTestSuite) TestRandomizeTeams_DealsRoundRobin() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		GroupID:           groupID,
		MaxPlayersPerTeam: 5,
		PlannedTeams:      2,
		TeamsCreated:      true,
	}
	teams := []models.Team{
		{ID: uuid.New(), MatchID: match.ID, Name: "Team A"},
		{ID: uuid.New(), MatchID: match.ID, Name: "Team B"},
	}
	roster := participants(match.ID, 5)

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockTeamRepo.EXPECT().ListByMatch(match.ID).Return(teams, nil)
	suite.mockRosterRepo.EXPECT().ListByMatch(match.ID).Return(roster, nil).Times(2)
	suite.mockTeamRepo.EXPECT().AssignPlayers(match.ID, gomock.Any()).
		DoAndReturn(func(matchID uuid.UUID, assignments []repository.TeamAssignment) error {
			assert.Len(suite.T(), assignments, 5)
			// Round-robin deal: positions alternate between the two teams
			for i, a := range assignments {
				assert.Equal(suite.T(), teams[i%2].ID, a.TeamID)
			}
			return nil
		})

	resp, err := suite.formationService.RandomizeTeams(adminID, match.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Teams, 2)
}

func (suite *FormationServiceTestSuite) TestRandomizeTeams_BeforeCreation_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)

	resp, err := suite.formationService.RandomizeTeams(adminID, match.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamsNotCreated)
}

func (suite *FormationServiceTestSuite) TestFinalizeTeams_LocksMatch() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID, TeamsCreated: true}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)
	suite.mockMatchRepo.EXPECT().Update(match.ID, map[string]interface{}{"teams_finalized": true}).Return(nil)

	err := suite.formationService.FinalizeTeams(adminID, match.ID)

	assert.NoError(suite.T(), err)
}

func (suite *FormationServiceTestSuite) TestFinalizeTeams_AlreadyFinalized_Rejected() {
	adminID := uuid.New()
	groupID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID, TeamsCreated: true, TeamsFinalized: true}

	suite.mockMatchRepo.EXPECT().GetByID(match.ID).Return(match, nil)
	suite.mockMembershipRepo.EXPECT().IsAdmin(groupID, adminID).Return(true, nil)

	err := suite.formationService.FinalizeTeams(adminID, match.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchFinalized)
}

func (suite *FormationServiceTestSuite) TestFinalizeTeams_MissingMatch_NotFound() {
	matchID := uuid.New()
	suite.mockMatchRepo.EXPECT().GetByID(matchID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.formationService.FinalizeTeams(uuid.New(), matchID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

func TestFormationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormationServiceTestSuite))
}

func TestNumberOfTeams(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		planned  int
		perTeam  int
		expected int
	}{
		{name: "FullCapacityTwoTeams", total: 10, planned: 2, perTeam: 5, expected: 2},
		{name: "SevenPlayersPlannedThree", total: 7, planned: 3, perTeam: 4, expected: 3},
		{name: "SmallRosterCollapsesToPlanned", total: 6, planned: 2, perTeam: 5, expected: 2},
		{name: "TinyRosterStillTwoTeams", total: 3, planned: 4, perTeam: 5, expected: 2},
		{name: "FourPlayersPlannedFour", total: 4, planned: 4, perTeam: 5, expected: 2},
		{name: "NinePlayersPlannedFour", total: 9, planned: 4, perTeam: 5, expected: 3},
		{name: "OverCapacityGrowsTeams", total: 12, planned: 2, perTeam: 5, expected: 3},
		{name: "ExactOverflowBoundary", total: 11, planned: 2, perTeam: 5, expected: 3},
		{name: "WayOverCapacity", total: 23, planned: 2, perTeam: 5, expected: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.NumberOfTeams(tt.total, tt.planned, tt.perTeam))
		})
	}
}

func TestTeamNames(t *testing.T) {
	names := service.TeamNames(28)
	assert.Equal(t, "Team A", names[0])
	assert.Equal(t, "Team B", names[1])
	assert.Equal(t, "Team Z", names[25])
	assert.Equal(t, "Team 27", names[26])
	assert.Equal(t, "Team 28", names[27])
}
