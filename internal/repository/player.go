package repository

import (
	"errors"

	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository handles database operations for player profiles
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player profile
func (r *PlayerRepository) Create(player *models.TeamPlayer) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player profile by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.TeamPlayer, error) {
	var player models.TeamPlayer
	err := r.db.Preload("User").First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByUserAndGroup retrieves the user's player profile within a group
func (r *PlayerRepository) GetByUserAndGroup(userID, groupID uuid.UUID) (*models.TeamPlayer, error) {
	var player models.TeamPlayer
	err := r.db.Preload("User").
		First(&player, "user_id = ? AND group_id = ?", userID, groupID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListByGroup retrieves all player profiles in a group with their users
func (r *PlayerRepository) ListByGroup(groupID uuid.UUID) ([]models.TeamPlayer, error) {
	var players []models.TeamPlayer
	err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&players).Error
	return players, err
}

// Update applies the given column updates to a player profile
func (r *PlayerRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.TeamPlayer{}).Where("id = ?", id).Updates(updates).Error
}

// Upsert inserts the profile or refreshes rating, position and role when the
// user already has one in the group. Used by bulk import.
func (r *PlayerRepository) Upsert(player *models.TeamPlayer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "preferred_position", "role", "is_key_player"}),
	}).Create(player).Error
}

// SetRole updates the player's role within the group
func (r *PlayerRepository) SetRole(groupID, userID uuid.UUID, role models.PlayerRole) error {
	result := r.db.Model(&models.TeamPlayer{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a player profile
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamPlayer{}, "id = ?", id).Error
}

// DeleteByUserAndGroup deletes the user's player profile within a group
func (r *PlayerRepository) DeleteByUserAndGroup(userID, groupID uuid.UUID) error {
	return r.db.Delete(&models.TeamPlayer{}, "user_id = ? AND group_id = ?", userID, groupID).Error
}

// Exists checks whether the user has a player profile in the group
func (r *PlayerRepository) Exists(userID, groupID uuid.UUID) (bool, error) {
	_, err := r.GetByUserAndGroup(userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
