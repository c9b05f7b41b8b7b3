package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for group members and player profiles
type MemberService struct {
	membershipRepo  repository.MembershipRepositoryInterface
	playerRepo      repository.PlayerRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	rosterRepo      repository.RosterRepositoryInterface
	waitingListRepo repository.WaitingListRepositoryInterface
	statsRepo       repository.StatsRepositoryInterface
	validator       *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(
	membershipRepo repository.MembershipRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	rosterRepo repository.RosterRepositoryInterface,
	waitingListRepo repository.WaitingListRepositoryInterface,
	statsRepo repository.StatsRepositoryInterface,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		membershipRepo:  membershipRepo,
		playerRepo:      playerRepo,
		userRepo:        userRepo,
		rosterRepo:      rosterRepo,
		waitingListRepo: waitingListRepo,
		statsRepo:       statsRepo,
		validator:       validator,
	}
}

// MemberResponse represents a group member with their player profile
type MemberResponse struct {
	UserID            uuid.UUID         `json:"user_id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	IsGuest           bool              `json:"is_guest"`
	JoinedAt          time.Time         `json:"joined_at"`
	PlayerID          uuid.UUID         `json:"player_id"`
	Role              models.PlayerRole `json:"role"`
	Rating            int               `json:"rating"`
	IsKeyPlayer       bool              `json:"is_key_player"`
	PreferredPosition models.Position   `json:"preferred_position"`
}

// UpdateProfileRequest represents the request to update a player profile.
// Name goes to the user record; rating and the key player flag are admin
// fields.
type UpdateProfileRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Rating            *int             `json:"rating" validate:"omitempty,min=1,max=10"`
	IsKeyPlayer       *bool            `json:"is_key_player"`
	PreferredPosition *models.Position `json:"preferred_position"`
}

// MemberDetailsResponse represents a member with their accumulated stats
type MemberDetailsResponse struct {
	Member MemberResponse      `json:"member"`
	Stats  PlayerStatsResponse `json:"stats"`
}

// AddGuestRequest represents the request to provision a guest member
type AddGuestRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Rating            int             `json:"rating" validate:"omitempty,min=1,max=10"`
	PreferredPosition models.Position `json:"preferred_position"`
}

// PlayerStatsResponse represents a player's accumulated match statistics
type PlayerStatsResponse struct {
	PlayerID uuid.UUID `json:"player_id"`
	Matches  int64     `json:"matches"`
	Goals    int       `json:"goals"`
	Assists  int       `json:"assists"`
}

// List retrieves the group's members with their profiles. Members only.
func (s *MemberService) List(actorID, groupID uuid.UUID) ([]MemberResponse, error) {
	if err := s.requireMember(groupID, actorID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	members, err := s.membershipRepo.ListMembers(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	joined := make(map[uuid.UUID]time.Time, len(members))
	for _, m := range members {
		joined[m.UserID] = m.JoinedAt
	}

	responses := make([]MemberResponse, 0, len(players))
	for i := range players {
		p := &players[i]
		if p.User == nil {
			continue
		}
		responses = append(responses, MemberResponse{
			UserID:            p.UserID,
			Name:              p.User.Name,
			Email:             p.User.Email,
			IsGuest:           p.User.IsGuest(),
			JoinedAt:          joined[p.UserID],
			PlayerID:          p.ID,
			Role:              p.Role,
			Rating:            p.Rating,
			IsKeyPlayer:       p.IsKeyPlayer,
			PreferredPosition: p.PreferredPosition,
		})
	}
	return responses, nil
}

// UpdateProfile updates a member's player profile. Admins may edit anyone,
// regular members only themselves, and only admins touch the rating.
func (s *MemberService) UpdateProfile(actorID, groupID, userID uuid.UUID, req *UpdateProfileRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin && actorID != userID {
		return apperrors.ErrNotAuthorized
	}
	if !isAdmin && (req.Rating != nil || req.IsKeyPlayer != nil) {
		return apperrors.ErrNotAuthorized
	}

	player, err := s.playerRepo.GetByUserAndGroup(userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.IsKeyPlayer != nil {
		updates["is_key_player"] = *req.IsKeyPlayer
	}
	if req.PreferredPosition != nil {
		if !req.PreferredPosition.IsValid() {
			return &apperrors.ValidationError{Field: "preferred_position", Message: "must be GK, DEF, MID or FWD"}
		}
		updates["preferred_position"] = *req.PreferredPosition
	}
	if req.Name != nil {
		if err := s.userRepo.UpdateName(userID, *req.Name); err != nil {
			return fmt.Errorf("failed to update name: %w", err)
		}
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.playerRepo.Update(player.ID, updates); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

// Details retrieves one member's profile and accumulated stats. Rating and
// the key player flag are admin-only fields; other viewers see them zeroed
// unless looking at themselves.
func (s *MemberService) Details(actorID, groupID, userID uuid.UUID) (*MemberDetailsResponse, error) {
	if err := s.requireMember(groupID, actorID); err != nil {
		return nil, err
	}
	player, err := s.playerRepo.GetByUserAndGroup(userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	totals, err := s.statsRepo.TotalsByPlayer(player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	member := MemberResponse{
		UserID:            player.UserID,
		PlayerID:          player.ID,
		Role:              player.Role,
		Rating:            player.Rating,
		IsKeyPlayer:       player.IsKeyPlayer,
		PreferredPosition: player.PreferredPosition,
	}
	if player.User != nil {
		member.Name = player.User.Name
		member.Email = player.User.Email
		member.IsGuest = player.User.IsGuest()
	}
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin && actorID != userID {
		member.Rating = 0
		member.IsKeyPlayer = false
	}

	return &MemberDetailsResponse{
		Member: member,
		Stats: PlayerStatsResponse{
			PlayerID: player.ID,
			Matches:  totals.Matches,
			Goals:    totals.Goals,
			Assists:  totals.Assists,
		},
	}, nil
}

// ListGuests retrieves the group's synthetic guest members. Members only.
func (s *MemberService) ListGuests(actorID, groupID uuid.UUID) ([]MemberResponse, error) {
	members, err := s.List(actorID, groupID)
	if err != nil {
		return nil, err
	}
	guests := make([]MemberResponse, 0)
	for _, m := range members {
		if m.IsGuest {
			guests = append(guests, m)
		}
	}
	return guests, nil
}

// Promote grants a member admin rights. Admin only.
func (s *MemberService) Promote(actorID, groupID, userID uuid.UUID) error {
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return err
	}
	isMember, err := s.membershipRepo.IsMember(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrMemberNotFound
	}

	if err := s.membershipRepo.AddAdmin(&models.GroupAdmin{GroupID: groupID, UserID: userID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to add admin: %w", err)
	}
	if err := s.playerRepo.SetRole(groupID, userID, models.PlayerRoleAdmin); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to update player role: %w", err)
	}
	return nil
}

// Demote revokes a member's admin rights. Admin only; the owner is immune.
func (s *MemberService) Demote(actorID, groupID, userID uuid.UUID) error {
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return err
	}
	ownerID, err := s.membershipRepo.OwnerID(groupID)
	if err != nil {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	if userID == ownerID {
		return apperrors.ErrOwnerImmutable
	}
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAdmin
	}

	if err := s.membershipRepo.RemoveAdmin(groupID, userID); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}
	if err := s.playerRepo.SetRole(groupID, userID, models.PlayerRolePlayer); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to update player role: %w", err)
	}
	return nil
}

// Remove removes a member from the group along with their profile, roster
// entries and waiting list entries. Admin only; the owner is immune.
func (s *MemberService) Remove(actorID, groupID, userID uuid.UUID) error {
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return err
	}
	ownerID, err := s.membershipRepo.OwnerID(groupID)
	if err != nil {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	if userID == ownerID {
		return apperrors.ErrOwnerImmutable
	}
	return s.evict(groupID, userID)
}

// Leave removes the actor from the group. The owner cannot leave their own
// group; they delete it or transfer ownership by promoting another admin
// first.
func (s *MemberService) Leave(actorID, groupID uuid.UUID) error {
	isMember, err := s.membershipRepo.IsMember(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrMemberNotFound
	}
	ownerID, err := s.membershipRepo.OwnerID(groupID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	if actorID == ownerID {
		return apperrors.ErrOwnerImmutable
	}
	return s.evict(groupID, actorID)
}

// AddGuest provisions a synthetic user for someone without an account and
// adds them to the group. Admin only.
func (s *MemberService) AddGuest(actorID, groupID uuid.UUID, req *AddGuestRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	rating := req.Rating
	if rating == 0 {
		rating = models.DefaultRating
	}
	position := req.PreferredPosition
	if position == "" {
		position = models.DefaultPosition
	}
	if !position.IsValid() {
		return nil, &apperrors.ValidationError{Field: "preferred_position", Message: "must be GK, DEF, MID or FWD"}
	}

	user := &models.User{
		Name:  req.Name,
		Email: GuestEmail(req.Name, time.Now()),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create guest user: %w", err)
	}
	if err := s.membershipRepo.AddMember(&models.GroupMember{GroupID: groupID, UserID: user.ID}); err != nil {
		return nil, fmt.Errorf("failed to add guest member: %w", err)
	}
	player := &models.TeamPlayer{
		UserID:            user.ID,
		GroupID:           groupID,
		Role:              models.PlayerRolePlayer,
		Rating:            rating,
		PreferredPosition: position,
	}
	if err := s.playerRepo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create guest profile: %w", err)
	}

	return &MemberResponse{
		UserID:            user.ID,
		Name:              user.Name,
		Email:             user.Email,
		IsGuest:           true,
		PlayerID:          player.ID,
		Role:              player.Role,
		Rating:            player.Rating,
		PreferredPosition: player.PreferredPosition,
	}, nil
}

// Stats retrieves a player's accumulated match statistics. Members only.
func (s *MemberService) Stats(actorID, groupID, userID uuid.UUID) (*PlayerStatsResponse, error) {
	if err := s.requireMember(groupID, actorID); err != nil {
		return nil, err
	}
	player, err := s.playerRepo.GetByUserAndGroup(userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	totals, err := s.statsRepo.TotalsByPlayer(player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return &PlayerStatsResponse{
		PlayerID: player.ID,
		Matches:  totals.Matches,
		Goals:    totals.Goals,
		Assists:  totals.Assists,
	}, nil
}

// evict drops the membership and everything hanging off it. Roster and
// waiting list rows go first so no match keeps a phantom participant.
func (s *MemberService) evict(groupID, userID uuid.UUID) error {
	player, err := s.playerRepo.GetByUserAndGroup(userID, groupID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get player: %w", err)
	}
	if player != nil {
		if err := s.rosterRepo.DeleteByPlayer(player.ID); err != nil {
			return fmt.Errorf("failed to clear roster entries: %w", err)
		}
		if err := s.waitingListRepo.DeleteByPlayer(player.ID); err != nil {
			return fmt.Errorf("failed to clear waiting list entries: %w", err)
		}
		if err := s.playerRepo.Delete(player.ID); err != nil {
			return fmt.Errorf("failed to delete player profile: %w", err)
		}
	}
	if err := s.membershipRepo.RemoveAdmin(groupID, userID); err != nil {
		return fmt.Errorf("failed to remove admin grant: %w", err)
	}
	if err := s.membershipRepo.RemoveMember(groupID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *MemberService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

func (s *MemberService) requireMember(groupID, actorID uuid.UUID) error {
	isMember, err := s.membershipRepo.IsMember(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// GuestEmail builds the synthetic address for a guest account. The timestamp
// keeps repeated guests with the same name from colliding on the unique
// email column.
func GuestEmail(name string, now time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return fmt.Sprintf("%s.guest-%d@%s", slug, now.UnixMilli(), models.GuestEmailDomain)
}
