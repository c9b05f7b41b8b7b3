package repository

import (
	"errors"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitingListRepository handles database operations for match waiting lists
type WaitingListRepository struct {
	db *gorm.DB
}

// NewWaitingListRepository creates a new waiting list repository
func NewWaitingListRepository(db *gorm.DB) *WaitingListRepository {
	return &WaitingListRepository{db: db}
}

// Create enqueues a player on the match's waiting list
func (r *WaitingListRepository) Create(entry *models.WaitingListEntry) error {
	err := r.db.Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyRegistered
	}
	return err
}

// ListByMatch retrieves the waiting list in enqueue order
func (r *WaitingListRepository) ListByMatch(matchID uuid.UUID) ([]models.WaitingListEntry, error) {
	var entries []models.WaitingListEntry
	err := r.db.Preload("TeamPlayer.User").
		Where("match_id = ?", matchID).
		Order("joined_at ASC").
		Find(&entries).Error
	return entries, err
}

// First retrieves the head of the waiting list, the entry that has waited longest
func (r *WaitingListRepository) First(matchID uuid.UUID) (*models.WaitingListEntry, error) {
	var entry models.WaitingListEntry
	err := r.db.Where("match_id = ?", matchID).
		Order("joined_at ASC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountByMatch counts the match's waiting list entries
func (r *WaitingListRepository) CountByMatch(matchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.WaitingListEntry{}).
		Where("match_id = ?", matchID).
		Count(&count).Error
	return count, err
}

// Delete removes an entry from the waiting list
func (r *WaitingListRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WaitingListEntry{}, "id = ?", id).Error
}

// DeleteByMatchAndPlayer removes the player's entry for a match
func (r *WaitingListRepository) DeleteByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) error {
	return r.db.Delete(&models.WaitingListEntry{}, "match_id = ? AND team_player_id = ?", matchID, teamPlayerID).Error
}

// DeleteByPlayer removes the player from every waiting list
func (r *WaitingListRepository) DeleteByPlayer(teamPlayerID uuid.UUID) error {
	return r.db.Delete(&models.WaitingListEntry{}, "team_player_id = ?", teamPlayerID).Error
}
