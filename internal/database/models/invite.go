package models

import (
	"time"

	"github.com/google/uuid"
)

// UnlimitedUses marks an invite with no redemption cap.
const UnlimitedUses = -1

// InviteCodeLength is the number of characters in a generated invite code.
const InviteCodeLength = 8

// InviteCodeAlphabet excludes characters that are easy to confuse (O/0, I/1).
// Codes are canonicalized to upper case on redemption.
const InviteCodeAlphabet = "ABCDEFGHIJKLMNPQRSTUVWXYZ123456789"

// GroupInvite is a redeemable code granting group membership.
type GroupInvite struct {
	BaseModel
	GroupID   uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null;size:16"`
	MaxUses   int        `json:"max_uses" gorm:"not null;default:1"`
	UsedCount int        `json:"used_count" gorm:"not null;default:0"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for GroupInvite
func (GroupInvite) TableName() string {
	return "group_invites"
}

// Expired reports whether the invite's expiry, if any, has passed.
func (i *GroupInvite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// Exhausted reports whether the invite's usage cap, if any, has been reached.
func (i *GroupInvite) Exhausted() bool {
	return i.MaxUses != UnlimitedUses && i.UsedCount >= i.MaxUses
}
