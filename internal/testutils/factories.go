package testutils

import (
	"fmt"
	"time"

	"matchday-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jordan Pitch",
		// Unique email per instance to avoid unique index collisions
		Email:    fmt.Sprintf("jordan.%s@test.com", id.String()[:8]),
		JoinedAt: time.Now(),
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Guest creates a synthetic guest account
func (f *UserFactory) Guest(name string) *models.User {
	user := f.Create()
	user.Name = name
	user.Email = fmt.Sprintf("%s.guest-%d@%s", user.ID.String()[:8], time.Now().UnixMilli(), models.GuestEmailDomain)
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Thursday Five-a-side",
		Description: "A test group for testing purposes",
		Privacy:     models.GroupPrivacyPrivate,
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// Public creates a publicly discoverable group
func (f *GroupFactory) Public() *models.Group {
	group := f.Create()
	group.Privacy = models.GroupPrivacyPublic
	return group
}

// PlayerFactory provides methods to create test TeamPlayer data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test TeamPlayer with default values
func (f *PlayerFactory) Create() *models.TeamPlayer {
	return &models.TeamPlayer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:            uuid.New(),
		GroupID:           uuid.New(),
		Role:              models.PlayerRolePlayer,
		Rating:            models.DefaultRating,
		IsKeyPlayer:       false,
		PreferredPosition: models.DefaultPosition,
	}
}

// InGroup sets the user and group for the profile
func (f *PlayerFactory) InGroup(userID, groupID uuid.UUID) *models.TeamPlayer {
	player := f.Create()
	player.UserID = userID
	player.GroupID = groupID
	return player
}

// WithRating sets a custom rating for the profile
func (f *PlayerFactory) WithRating(rating int) *models.TeamPlayer {
	player := f.Create()
	player.Rating = rating
	return player
}

// Admin creates a profile with the admin role
func (f *PlayerFactory) Admin(userID, groupID uuid.UUID) *models.TeamPlayer {
	player := f.InGroup(userID, groupID)
	player.Role = models.PlayerRoleAdmin
	return player
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:           uuid.New(),
		DateTime:          time.Now().Add(48 * time.Hour),
		Location:          "Municipal Pitch 3",
		MaxPlayersPerTeam: 5,
		PlannedTeams:      2,
		TeamsCreated:      false,
		TeamsFinalized:    false,
	}
}

// InGroup sets the group ID for the match
func (f *MatchFactory) InGroup(groupID uuid.UUID) *models.Match {
	match := f.Create()
	match.GroupID = groupID
	return match
}

// WithCapacity sets the planned team shape for the match
func (f *MatchFactory) WithCapacity(plannedTeams, maxPerTeam int) *models.Match {
	match := f.Create()
	match.PlannedTeams = plannedTeams
	match.MaxPlayersPerTeam = maxPerTeam
	return match
}

// WithCreator sets the creating user for the match
func (f *MatchFactory) WithCreator(userID uuid.UUID) *models.Match {
	match := f.Create()
	match.CreatedBy = &userID
	return match
}

// InviteFactory provides methods to create test GroupInvite data
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// Create creates a test GroupInvite with default values
func (f *InviteFactory) Create() *models.GroupInvite {
	id := uuid.New()
	return &models.GroupInvite{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID: uuid.New(),
		// Unique code per instance; real codes come from the invite service
		Code:      "T" + id.String()[:7],
		CreatedBy: uuid.New(),
		MaxUses:   1,
		UsedCount: 0,
		IsActive:  true,
	}
}

// ForGroup sets the group and creator for the invite
func (f *InviteFactory) ForGroup(groupID, createdBy uuid.UUID) *models.GroupInvite {
	invite := f.Create()
	invite.GroupID = groupID
	invite.CreatedBy = createdBy
	return invite
}

// WithMaxUses sets a custom usage cap for the invite
func (f *InviteFactory) WithMaxUses(maxUses int) *models.GroupInvite {
	invite := f.Create()
	invite.MaxUses = maxUses
	return invite
}

// Expired creates an invite whose expiry has already passed
func (f *InviteFactory) Expired() *models.GroupInvite {
	invite := f.Create()
	past := time.Now().Add(-time.Hour)
	invite.ExpiresAt = &past
	return invite
}

// FactorySet provides access to all factories
type FactorySet struct {
	User   *UserFactory
	Group  *GroupFactory
	Player *PlayerFactory
	Match  *MatchFactory
	Invite *InviteFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:   NewUserFactory(),
		Group:  NewGroupFactory(),
		Player: NewPlayerFactory(),
		Match:  NewMatchFactory(),
		Invite: NewInviteFactory(),
	}
}

// CreateGroupWithMember creates a group plus one member with a player profile
func (fs *FactorySet) CreateGroupWithMember() (*models.Group, *models.User, *models.TeamPlayer) {
	group := fs.Group.Create()
	user := fs.User.Create()
	player := fs.Player.InGroup(user.ID, group.ID)
	return group, user, player
}
