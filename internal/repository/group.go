package repository

import (
	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Update applies the given column updates to a group
func (r *GroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a group and its dependent rows via cascade
func (r *GroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Group{}, "id = ?", id).Error
}

// ListByMember retrieves all groups the given user belongs to
func (r *GroupRepository) ListByMember(userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at ASC").
		Find(&groups).Error
	return groups, err
}

// ListPublicExcludingMember retrieves public groups the given user is not a member of
func (r *GroupRepository) ListPublicExcludingMember(userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.
		Where("privacy = ?", models.GroupPrivacyPublic).
		Where("id NOT IN (?)", r.db.Model(&models.GroupMember{}).Select("group_id").Where("user_id = ?", userID)).
		Order("groups.created_at ASC").
		Find(&groups).Error
	return groups, err
}

// IsBanned checks whether the user is banned from the group
func (r *GroupRepository) IsBanned(groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupBan{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}
