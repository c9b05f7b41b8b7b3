package repository

import (
	"errors"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterRepository handles database operations for match participants
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Create adds a participant to a match. The unique index on
// (match_id, team_player_id) makes a concurrent double join surface as
// ErrAlreadyRegistered rather than a second row.
func (r *RosterRepository) Create(participant *models.MatchPlayer) error {
	err := r.db.Create(participant).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyRegistered
	}
	return err
}

// GetByID retrieves a participant by ID
func (r *RosterRepository) GetByID(id uuid.UUID) (*models.MatchPlayer, error) {
	var participant models.MatchPlayer
	err := r.db.Preload("TeamPlayer.User").
		First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetByMatchAndPlayer retrieves the player's participation in a match
func (r *RosterRepository) GetByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) (*models.MatchPlayer, error) {
	var participant models.MatchPlayer
	err := r.db.First(&participant, "match_id = ? AND team_player_id = ?", matchID, teamPlayerID).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// ListByMatch retrieves the match roster in join order
func (r *RosterRepository) ListByMatch(matchID uuid.UUID) ([]models.MatchPlayer, error) {
	var participants []models.MatchPlayer
	err := r.db.Preload("TeamPlayer.User").
		Where("match_id = ?", matchID).
		Order("joined_at ASC").
		Find(&participants).Error
	return participants, err
}

// CountByMatch counts the match's participants
func (r *RosterRepository) CountByMatch(matchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MatchPlayer{}).
		Where("match_id = ?", matchID).
		Count(&count).Error
	return count, err
}

// Delete removes a participant from a match
func (r *RosterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchPlayer{}, "id = ?", id).Error
}

// DeleteByMatchAndPlayer removes the player's participation in a match
func (r *RosterRepository) DeleteByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) error {
	return r.db.Delete(&models.MatchPlayer{}, "match_id = ? AND team_player_id = ?", matchID, teamPlayerID).Error
}

// DeleteByPlayer removes the player from every roster. Used when a member
// leaves or is removed from a group.
func (r *RosterRepository) DeleteByPlayer(teamPlayerID uuid.UUID) error {
	return r.db.Delete(&models.MatchPlayer{}, "team_player_id = ?", teamPlayerID).Error
}
