package service

import (
	"errors"
	"fmt"
	"time"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo           repository.GroupRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	matchRepo      repository.MatchRepositoryInterface
	validator      *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	repo repository.GroupRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		repo:           repo,
		membershipRepo: membershipRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		validator:      validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=100"`
	Description string              `json:"description"`
	Privacy     models.GroupPrivacy `json:"privacy"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name        *string              `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string              `json:"description"`
	Privacy     *models.GroupPrivacy `json:"privacy"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Privacy     models.GroupPrivacy `json:"privacy"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// GroupStatsResponse represents a group with its headline counters
type GroupStatsResponse struct {
	Group           GroupResponse `json:"group"`
	MemberCount     int64         `json:"member_count"`
	MatchCount      int64         `json:"match_count"`
	UpcomingMatches int64         `json:"upcoming_matches"`
	IsAdmin         bool          `json:"is_admin"`
	OwnerID         uuid.UUID     `json:"owner_id"`
}

// Create creates a group. The creator becomes its first member, its first
// admin and therefore its owner, and gets a default player profile.
func (s *GroupService) Create(actorID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Privacy == "" {
		req.Privacy = models.GroupPrivacyPrivate
	}
	if !req.Privacy.IsValid() {
		return nil, &apperrors.ValidationError{Field: "privacy", Message: "must be public or private"}
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		Privacy:     req.Privacy,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if err := s.membershipRepo.AddMember(&models.GroupMember{GroupID: group.ID, UserID: actorID}); err != nil {
		return nil, fmt.Errorf("failed to add creator as member: %w", err)
	}
	if err := s.membershipRepo.AddAdmin(&models.GroupAdmin{GroupID: group.ID, UserID: actorID}); err != nil {
		return nil, fmt.Errorf("failed to add creator as admin: %w", err)
	}
	profile := &models.TeamPlayer{
		UserID:            actorID,
		GroupID:           group.ID,
		Role:              models.PlayerRoleAdmin,
		Rating:            models.DefaultRating,
		PreferredPosition: models.DefaultPosition,
	}
	if err := s.playerRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create creator profile: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByID retrieves a group with its counters. Private groups are only
// visible to their members.
func (s *GroupService) GetByID(actorID, groupID uuid.UUID) (*GroupStatsResponse, error) {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	isMember, err := s.membershipRepo.IsMember(groupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember && group.Privacy == models.GroupPrivacyPrivate {
		return nil, apperrors.ErrGroupNotFound
	}

	memberCount, err := s.membershipRepo.CountMembers(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	matchCount, err := s.matchRepo.CountByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	upcoming, err := s.matchRepo.CountUpcomingByGroup(groupID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming matches: %w", err)
	}
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin: %w", err)
	}
	ownerID, err := s.membershipRepo.OwnerID(groupID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	return &GroupStatsResponse{
		Group:           *s.toResponse(group),
		MemberCount:     memberCount,
		MatchCount:      matchCount,
		UpcomingMatches: upcoming,
		IsAdmin:         isAdmin,
		OwnerID:         ownerID,
	}, nil
}

// Update updates a group. Admin only.
func (s *GroupService) Update(actorID, groupID uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Privacy != nil {
		if !req.Privacy.IsValid() {
			return nil, &apperrors.ValidationError{Field: "privacy", Message: "must be public or private"}
		}
		updates["privacy"] = *req.Privacy
	}
	if len(updates) > 0 {
		if err := s.repo.Update(groupID, updates); err != nil {
			return nil, fmt.Errorf("failed to update group: %w", err)
		}
	}

	group, err := s.repo.GetByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload group: %w", err)
	}
	return s.toResponse(group), nil
}

// Delete deletes a group and everything in it. Owner only.
func (s *GroupService) Delete(actorID, groupID uuid.UUID) error {
	ownerID, err := s.membershipRepo.OwnerID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	if ownerID != actorID {
		return apperrors.ErrNotAuthorized
	}
	if err := s.repo.Delete(groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// ListMine retrieves the groups the actor belongs to
func (s *GroupService) ListMine(actorID uuid.UUID) ([]GroupResponse, error) {
	groups, err := s.repo.ListByMember(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return s.toResponses(groups), nil
}

// Discover retrieves public groups the actor has not joined
func (s *GroupService) Discover(actorID uuid.UUID) ([]GroupResponse, error) {
	groups, err := s.repo.ListPublicExcludingMember(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list public groups: %w", err)
	}
	return s.toResponses(groups), nil
}

// Join joins a public group directly, creating a default player profile.
// Private groups reject this path; they are entered through invites.
func (s *GroupService) Join(actorID, groupID uuid.UUID) error {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}
	if group.Privacy != models.GroupPrivacyPublic {
		return apperrors.ErrGroupPrivate
	}

	banned, err := s.repo.IsBanned(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check ban: %w", err)
	}
	if banned {
		return apperrors.ErrBanned
	}

	if err := s.membershipRepo.AddMember(&models.GroupMember{GroupID: groupID, UserID: actorID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	// A rejoining player starts over; any profile left from a previous stint
	// is replaced with defaults, same as invite redemption.
	if err := s.playerRepo.DeleteByUserAndGroup(actorID, groupID); err != nil {
		return fmt.Errorf("failed to clear stale player profile: %w", err)
	}
	profile := &models.TeamPlayer{
		UserID:            actorID,
		GroupID:           groupID,
		Role:              models.PlayerRolePlayer,
		Rating:            models.DefaultRating,
		PreferredPosition: models.DefaultPosition,
	}
	if err := s.playerRepo.Create(profile); err != nil {
		return fmt.Errorf("failed to create player profile: %w", err)
	}
	return nil
}

func (s *GroupService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Privacy:     group.Privacy,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

func (s *GroupService) toResponses(groups []models.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *s.toResponse(&groups[i])
	}
	return responses
}
