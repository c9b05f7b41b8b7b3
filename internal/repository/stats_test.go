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

// StatsRepositoryTestSuite tests the StatsRepository
type StatsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StatsRepository
	userRepo      *UserRepository
	groupRepo     *GroupRepository
	playerRepo    *PlayerRepository
	matchRepo     *MatchRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StatsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewStatsRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.matchRepo = NewMatchRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StatsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StatsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StatsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create a player with a match in the same group
func (suite *StatsRepositoryTestSuite) createMatchAndPlayer() (*models.Match, *models.TeamPlayer) {
	group := suite.factories.Group.Create()
	err := suite.groupRepo.Create(group)
	suite.NoError(err)

	match := suite.factories.Match.InGroup(group.ID)
	err = suite.matchRepo.Create(match)
	suite.NoError(err)

	user := suite.factories.User.Create()
	err = suite.userRepo.Create(user)
	suite.NoError(err)

	player := suite.factories.Player.InGroup(user.ID, group.ID)
	err = suite.playerRepo.Create(player)
	suite.NoError(err)
	return match, player
}

// TestRecord tests storing a stat line
func (suite *StatsRepositoryTestSuite) TestRecord() {
	match, player := suite.createMatchAndPlayer()
	rating := 7

	stat := &models.PlayerMatchStat{MatchID: match.ID, TeamPlayerID: player.ID, Goals: 2, Assists: 1, Rating: &rating}
	err := suite.repo.Record(stat)

	suite.NoError(err)
	suite.NotZero(stat.ID)
}

// TestRecordDuplicate tests that a second line for the same player and match
// hits the unique index
func (suite *StatsRepositoryTestSuite) TestRecordDuplicate() {
	match, player := suite.createMatchAndPlayer()

	err := suite.repo.Record(&models.PlayerMatchStat{MatchID: match.ID, TeamPlayerID: player.ID, Goals: 1})
	suite.NoError(err)

	err = suite.repo.Record(&models.PlayerMatchStat{MatchID: match.ID, TeamPlayerID: player.ID, Goals: 3})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestListByMatch tests retrieving the lines recorded for one match
func (suite *StatsRepositoryTestSuite) TestListByMatch() {
	match, player := suite.createMatchAndPlayer()
	other := suite.factories.Match.InGroup(match.GroupID)
	suite.NoError(suite.matchRepo.Create(other))

	suite.NoError(suite.repo.Record(&models.PlayerMatchStat{MatchID: match.ID, TeamPlayerID: player.ID, Goals: 2}))
	suite.NoError(suite.repo.Record(&models.PlayerMatchStat{MatchID: other.ID, TeamPlayerID: player.ID, Goals: 1}))

	stats, err := suite.repo.ListByMatch(match.ID)

	suite.NoError(err)
	suite.Len(stats, 1)
	suite.Equal(2, stats[0].Goals)
}

// TestTotalsByPlayer tests aggregating a player's lines across matches
func (suite *StatsRepositoryTestSuite) TestTotalsByPlayer() {
	match, player := suite.createMatchAndPlayer()
	other := suite.factories.Match.InGroup(match.GroupID)
	suite.NoError(suite.matchRepo.Create(other))

	suite.NoError(suite.repo.Record(&models.PlayerMatchStat{MatchID: match.ID, TeamPlayerID: player.ID, Goals: 2, Assists: 1}))
	suite.NoError(suite.repo.Record(&models.PlayerMatchStat{MatchID: other.ID, TeamPlayerID: player.ID, Goals: 1, Assists: 2}))

	totals, err := suite.repo.TotalsByPlayer(player.ID)

	suite.NoError(err)
	suite.Equal(int64(2), totals.Matches)
	suite.Equal(3, totals.Goals)
	suite.Equal(3, totals.Assists)
}

// TestTotalsByPlayerNoLines tests that a player with no recorded lines
// aggregates to zeroes
func (suite *StatsRepositoryTestSuite) TestTotalsByPlayerNoLines() {
	_, player := suite.createMatchAndPlayer()

	totals, err := suite.repo.TotalsByPlayer(player.ID)

	suite.NoError(err)
	suite.Equal(int64(0), totals.Matches)
	suite.Equal(0, totals.Goals)
}

func TestStatsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatsRepositoryTestSuite))
}
