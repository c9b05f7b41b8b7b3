package repository

import (
	"time"

	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetWithDetails retrieves a match with its teams loaded
func (r *MatchRepository) GetWithDetails(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("teams.name ASC")
		}).
		First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ListByGroup retrieves the group's matches ordered by kickoff time
func (r *MatchRepository) ListByGroup(groupID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Where("group_id = ?", groupID).
		Order("date_time ASC").
		Find(&matches).Error
	return matches, err
}

// Update applies the given column updates to a match
func (r *MatchRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Match{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a match and its dependent rows via cascade
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Match{}, "id = ?", id).Error
}

// CountByGroup counts the group's matches
func (r *MatchRepository) CountByGroup(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Match{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// CountUpcomingByGroup counts the group's matches with a kickoff after now
func (r *MatchRepository) CountUpcomingByGroup(groupID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Match{}).
		Where("group_id = ? AND date_time > ?", groupID, now).
		Count(&count).Error
	return count, err
}
