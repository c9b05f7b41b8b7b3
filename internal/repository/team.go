package repository

import (
	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamAssignment maps a roster entry to the team it should play for
type TeamAssignment struct {
	MatchPlayerID uuid.UUID
	TeamID        uuid.UUID
}

// TeamRepository handles database operations for match teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// ListByMatch retrieves the match's teams in name order
func (r *TeamRepository) ListByMatch(matchID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("match_id = ?", matchID).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// FormTeams replaces the match's teams in a single transaction: any previous
// teams are dropped, the named teams are created, and the given roster order
// is dealt across them round-robin. The match is marked as having teams.
func (r *TeamRepository) FormTeams(matchID uuid.UUID, names []string, rosterOrder []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MatchPlayer{}).
			Where("match_id = ?", matchID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Team{}, "match_id = ?", matchID).Error; err != nil {
			return err
		}
		teams = make([]models.Team, len(names))
		for i, name := range names {
			teams[i] = models.Team{MatchID: matchID, Name: name}
		}
		if err := tx.Create(&teams).Error; err != nil {
			return err
		}
		for i, participantID := range rosterOrder {
			teamID := teams[i%len(teams)].ID
			if err := tx.Model(&models.MatchPlayer{}).
				Where("id = ?", participantID).
				Update("team_id", teamID).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Match{}).
			Where("id = ?", matchID).
			Update("teams_created", true).Error
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// AssignPlayers rewrites roster-to-team assignments in a single transaction.
// Used to reshuffle players across the existing teams.
func (r *TeamRepository) AssignPlayers(matchID uuid.UUID, assignments []TeamAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, a := range assignments {
			if err := tx.Model(&models.MatchPlayer{}).
				Where("id = ? AND match_id = ?", a.MatchPlayerID, matchID).
				Update("team_id", a.TeamID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
