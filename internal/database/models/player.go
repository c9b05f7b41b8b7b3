package models

import (
	"github.com/google/uuid"
)

// PlayerRole represents the role of a player within a group
type PlayerRole string

const (
	PlayerRolePlayer PlayerRole = "player"
	PlayerRoleAdmin  PlayerRole = "admin"
)

// IsValid checks if the PlayerRole is valid
func (r PlayerRole) IsValid() bool {
	switch r {
	case PlayerRolePlayer, PlayerRoleAdmin:
		return true
	}
	return false
}

// Position represents a player's preferred position on the pitch
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// IsValid checks if the Position is valid
func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Profile defaults applied when a player joins a group, and again when a
// returning player rejoins: prior stats are discarded.
const (
	DefaultRating   = 5
	MinRating       = 1
	MaxRating       = 10
	DefaultPosition = PositionMidfielder
)

// TeamPlayer is a user's player profile within one group. One per
// (user, group); recreated from defaults when a user rejoins after leaving.
type TeamPlayer struct {
	BaseModel
	UserID            uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_players_user_group"`
	GroupID           uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_players_user_group;index"`
	Role              PlayerRole `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	Rating            int        `json:"rating" gorm:"not null;default:5" validate:"min=1,max=10"`
	IsKeyPlayer       bool       `json:"is_key_player" gorm:"default:false"`
	PreferredPosition Position   `json:"preferred_position" gorm:"type:varchar(10);not null;default:'MID'"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamPlayer
func (TeamPlayer) TableName() string {
	return "team_players"
}
