package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupPrivacy controls whether a group is discoverable and joinable without
// an invite.
type GroupPrivacy string

const (
	GroupPrivacyPublic  GroupPrivacy = "public"
	GroupPrivacyPrivate GroupPrivacy = "private"
)

// IsValid checks if the GroupPrivacy is valid
func (p GroupPrivacy) IsValid() bool {
	switch p {
	case GroupPrivacyPublic, GroupPrivacyPrivate:
		return true
	}
	return false
}

// Group owns matches, memberships and invites. Deleting a group cascades to
// all of them.
type Group struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string       `json:"description" gorm:"type:text"`
	Privacy     GroupPrivacy `json:"privacy" gorm:"type:varchar(20);not null;default:'private'"`

	// Relationships
	Members []GroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Admins  []GroupAdmin  `json:"admins,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Matches []Match       `json:"matches,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Invites []GroupInvite `json:"invites,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// GroupMember links a user to a group. A user has at most one membership per
// group.
type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}

// GroupAdmin marks a member as a group admin. The owner is the earliest admin
// by created_at.
type GroupAdmin struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GroupAdmin
func (GroupAdmin) TableName() string {
	return "group_admins"
}

// GroupBan blocks a user from redeeming invites for the group.
type GroupBan struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GroupBan
func (GroupBan) TableName() string {
	return "group_bans"
}
