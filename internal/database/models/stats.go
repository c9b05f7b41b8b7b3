package models

import (
	"github.com/google/uuid"
)

// PlayerMatchStat records a player's performance in one match. Written by
// post-match scorekeeping, read back as aggregates on member detail views.
type PlayerMatchStat struct {
	BaseModel
	MatchID      uuid.UUID `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_stat_match_player"`
	TeamPlayerID uuid.UUID `json:"team_player_id" gorm:"type:uuid;not null;uniqueIndex:idx_stat_match_player"`
	Goals        int       `json:"goals" gorm:"not null;default:0"`
	Assists      int       `json:"assists" gorm:"not null;default:0"`
	Rating       *int      `json:"rating"`

	TeamPlayer *TeamPlayer `json:"team_player,omitempty" gorm:"foreignKey:TeamPlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PlayerMatchStat
func (PlayerMatchStat) TableName() string {
	return "player_match_stats"
}
