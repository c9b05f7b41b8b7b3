package repository

import (
	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerTotals aggregates a player's recorded match statistics
type PlayerTotals struct {
	Matches int64
	Goals   int
	Assists int
}

// StatsRepository handles database operations for per-match player statistics
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Record stores a stat line for a player in a match
func (r *StatsRepository) Record(stat *models.PlayerMatchStat) error {
	return r.db.Create(stat).Error
}

// ListByMatch retrieves the stat lines recorded for a match
func (r *StatsRepository) ListByMatch(matchID uuid.UUID) ([]models.PlayerMatchStat, error) {
	var stats []models.PlayerMatchStat
	err := r.db.Where("match_id = ?", matchID).
		Find(&stats).Error
	return stats, err
}

// TotalsByPlayer aggregates goals, assists and match count across a player's stat lines
func (r *StatsRepository) TotalsByPlayer(teamPlayerID uuid.UUID) (*PlayerTotals, error) {
	var totals PlayerTotals
	err := r.db.Model(&models.PlayerMatchStat{}).
		Select("COUNT(*) AS matches, COALESCE(SUM(goals), 0) AS goals, COALESCE(SUM(assists), 0) AS assists").
		Where("team_player_id = ?", teamPlayerID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
