package repository

import (
	"time"

	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Upsert(user *models.User) error
	UpdateName(id uuid.UUID, name string) error
	Delete(id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	ListByMember(userID uuid.UUID) ([]models.Group, error)
	ListPublicExcludingMember(userID uuid.UUID) ([]models.Group, error)
	IsBanned(groupID, userID uuid.UUID) (bool, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	AddMember(member *models.GroupMember) error
	RemoveMember(groupID, userID uuid.UUID) error
	IsMember(groupID, userID uuid.UUID) (bool, error)
	ListMembers(groupID uuid.UUID) ([]models.GroupMember, error)
	CountMembers(groupID uuid.UUID) (int64, error)
	AddAdmin(admin *models.GroupAdmin) error
	RemoveAdmin(groupID, userID uuid.UUID) error
	IsAdmin(groupID, userID uuid.UUID) (bool, error)
	AdminIDs(groupID uuid.UUID) ([]uuid.UUID, error)
	OwnerID(groupID uuid.UUID) (uuid.UUID, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.TeamPlayer) error
	GetByID(id uuid.UUID) (*models.TeamPlayer, error)
	GetByUserAndGroup(userID, groupID uuid.UUID) (*models.TeamPlayer, error)
	ListByGroup(groupID uuid.UUID) ([]models.TeamPlayer, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Upsert(player *models.TeamPlayer) error
	SetRole(groupID, userID uuid.UUID, role models.PlayerRole) error
	Delete(id uuid.UUID) error
	DeleteByUserAndGroup(userID, groupID uuid.UUID) error
	Exists(userID, groupID uuid.UUID) (bool, error)
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetWithDetails(id uuid.UUID) (*models.Match, error)
	ListByGroup(groupID uuid.UUID) ([]models.Match, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	CountByGroup(groupID uuid.UUID) (int64, error)
	CountUpcomingByGroup(groupID uuid.UUID, now time.Time) (int64, error)
}

// RosterRepositoryInterface defines the interface for roster repository operations
type RosterRepositoryInterface interface {
	Create(participant *models.MatchPlayer) error
	GetByID(id uuid.UUID) (*models.MatchPlayer, error)
	GetByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) (*models.MatchPlayer, error)
	ListByMatch(matchID uuid.UUID) ([]models.MatchPlayer, error)
	CountByMatch(matchID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	DeleteByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) error
	DeleteByPlayer(teamPlayerID uuid.UUID) error
}

// WaitingListRepositoryInterface defines the interface for waiting list repository operations
type WaitingListRepositoryInterface interface {
	Create(entry *models.WaitingListEntry) error
	ListByMatch(matchID uuid.UUID) ([]models.WaitingListEntry, error)
	First(matchID uuid.UUID) (*models.WaitingListEntry, error)
	CountByMatch(matchID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	DeleteByMatchAndPlayer(matchID, teamPlayerID uuid.UUID) error
	DeleteByPlayer(teamPlayerID uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	ListByMatch(matchID uuid.UUID) ([]models.Team, error)
	FormTeams(matchID uuid.UUID, names []string, rosterOrder []uuid.UUID) ([]models.Team, error)
	AssignPlayers(matchID uuid.UUID, assignments []TeamAssignment) error
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(invite *models.GroupInvite) error
	GetByID(id uuid.UUID) (*models.GroupInvite, error)
	GetByCode(code string) (*models.GroupInvite, error)
	ListByGroup(groupID uuid.UUID) ([]models.GroupInvite, error)
	Deactivate(id uuid.UUID) error
	Delete(id uuid.UUID) error
	Redeem(invite *models.GroupInvite, userID uuid.UUID) error
}

// StatsRepositoryInterface defines the interface for stats repository operations
type StatsRepositoryInterface interface {
	Record(stat *models.PlayerMatchStat) error
	ListByMatch(matchID uuid.UUID) ([]models.PlayerMatchStat, error)
	TotalsByPlayer(teamPlayerID uuid.UUID) (*PlayerTotals, error)
}
