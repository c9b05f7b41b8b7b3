package repository

import (
	"errors"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for group invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite. A code collision surfaces as
// ErrAlreadyRegistered so callers can regenerate and retry.
func (r *InviteRepository) Create(invite *models.GroupInvite) error {
	err := r.db.Create(invite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyRegistered
	}
	return err
}

// GetByID retrieves an invite by ID
func (r *InviteRepository) GetByID(id uuid.UUID) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	err := r.db.First(&invite, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetByCode retrieves an invite by its code
func (r *InviteRepository) GetByCode(code string) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	err := r.db.First(&invite, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByGroup retrieves the group's invites, newest first
func (r *InviteRepository) ListByGroup(groupID uuid.UUID) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

// Deactivate marks an invite as no longer redeemable
func (r *InviteRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.GroupInvite{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an invite
func (r *InviteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GroupInvite{}, "id = ?", id).Error
}

// Redeem admits the user into the invite's group in a single transaction.
// Any leftover admin grant or player profile from a previous stint in the
// group is dropped so the user rejoins with a fresh default profile, and the
// invite's use counter moves in the same transaction as the admission.
func (r *InviteRepository) Redeem(invite *models.GroupInvite, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.GroupAdmin{}, "group_id = ? AND user_id = ?", invite.GroupID, userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamPlayer{}, "group_id = ? AND user_id = ?", invite.GroupID, userID).Error; err != nil {
			return err
		}
		member := models.GroupMember{GroupID: invite.GroupID, UserID: userID}
		if err := tx.Create(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyMember
			}
			return err
		}
		player := models.TeamPlayer{
			UserID:            userID,
			GroupID:           invite.GroupID,
			Rating:            models.DefaultRating,
			PreferredPosition: models.DefaultPosition,
			Role:              models.PlayerRolePlayer,
		}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}
		return tx.Model(&models.GroupInvite{}).
			Where("id = ?", invite.ID).
			Update("used_count", gorm.Expr("used_count + 1")).Error
	})
}
