package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match is a scheduled game within a group. Its lifecycle is monotonic:
// registration open, then teams created, then teams finalized. No transition
// is ever reversed.
type Match struct {
	BaseModel
	GroupID           uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	CreatedBy         *uuid.UUID `json:"created_by" gorm:"type:uuid"`
	DateTime          time.Time  `json:"date_time" gorm:"not null;index"`
	Location          string     `json:"location"`
	MaxPlayersPerTeam int        `json:"max_players_per_team" gorm:"not null;default:5" validate:"min=1"`
	PlannedTeams      int        `json:"planned_teams" gorm:"not null;default:2" validate:"min=2"`
	TeamsCreated      bool       `json:"teams_created" gorm:"default:false"`
	TeamsFinalized    bool       `json:"teams_finalized" gorm:"default:false"`

	// Relationships
	Teams        []Team             `json:"teams,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	MatchPlayers []MatchPlayer      `json:"match_players,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	WaitingList  []WaitingListEntry `json:"waiting_list,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// Capacity returns the number of roster spots. Before team formation the
// planned team count applies; afterwards the actual teams do.
func (m *Match) Capacity() int {
	if m.TeamsCreated && len(m.Teams) > 0 {
		return len(m.Teams) * m.MaxPlayersPerTeam
	}
	return m.PlannedTeams * m.MaxPlayersPerTeam
}

// Team is one side of a match. Teams exist only after formation and are
// deleted and recreated when formation is re-run.
type Team struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"not null;size:50"`

	MatchPlayers []MatchPlayer `json:"match_players,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate sets the UUID if not already set
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// MatchPlayer is a roster entry: either a group player profile or an ad-hoc
// guest name, never both. TeamID stays unset until teams are formed.
// The unique index on (match_id, team_player_id) closes the duplicate-join
// race at the constraint level.
type MatchPlayer struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID      uuid.UUID  `json:"match_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_match_players_match_player"`
	TeamID       *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	TeamPlayerID *uuid.UUID `json:"team_player_id" gorm:"type:uuid;uniqueIndex:idx_match_players_match_player"`
	GuestName    string     `json:"guest_name"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`

	TeamPlayer *TeamPlayer `json:"team_player,omitempty" gorm:"foreignKey:TeamPlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MatchPlayer
func (MatchPlayer) TableName() string {
	return "match_players"
}

// BeforeCreate sets the UUID if not already set
func (p *MatchPlayer) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// WaitingListEntry queues a player for a full match, FIFO by joined_at.
type WaitingListEntry struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID      uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_waiting_list_match_player"`
	TeamPlayerID uuid.UUID `json:"team_player_id" gorm:"type:uuid;not null;uniqueIndex:idx_waiting_list_match_player"`
	JoinedAt     time.Time `json:"joined_at" gorm:"autoCreateTime"`

	TeamPlayer *TeamPlayer `json:"team_player,omitempty" gorm:"foreignKey:TeamPlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WaitingListEntry
func (WaitingListEntry) TableName() string {
	return "match_waiting_list"
}

// BeforeCreate sets the UUID if not already set
func (w *WaitingListEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
