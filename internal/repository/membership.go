package repository

import (
	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for group members and admins
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// AddMember adds a user to a group
func (r *MembershipRepository) AddMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a user from a group
func (r *MembershipRepository) RemoveMember(groupID, userID uuid.UUID) error {
	return r.db.Delete(&models.GroupMember{}, "group_id = ? AND user_id = ?", groupID, userID).Error
}

// IsMember checks whether the user belongs to the group
func (r *MembershipRepository) IsMember(groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListMembers retrieves the group's members with their users, oldest first
func (r *MembershipRepository) ListMembers(groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

// CountMembers counts the group's members
func (r *MembershipRepository) CountMembers(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// AddAdmin grants the user admin rights in the group
func (r *MembershipRepository) AddAdmin(admin *models.GroupAdmin) error {
	return r.db.Create(admin).Error
}

// RemoveAdmin revokes the user's admin rights in the group
func (r *MembershipRepository) RemoveAdmin(groupID, userID uuid.UUID) error {
	return r.db.Delete(&models.GroupAdmin{}, "group_id = ? AND user_id = ?", groupID, userID).Error
}

// IsAdmin checks whether the user is an admin of the group
func (r *MembershipRepository) IsAdmin(groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupAdmin{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// AdminIDs retrieves the user IDs of the group's admins
func (r *MembershipRepository) AdminIDs(groupID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.GroupAdmin{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// OwnerID retrieves the group owner, the admin with the earliest grant.
// Returns gorm.ErrRecordNotFound when the group has no admins.
func (r *MembershipRepository) OwnerID(groupID uuid.UUID) (uuid.UUID, error) {
	var admin models.GroupAdmin
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at ASC").
		First(&admin).Error
	if err != nil {
		return uuid.Nil, err
	}
	return admin.UserID, nil
}
