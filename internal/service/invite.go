package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// codeRetries bounds regeneration attempts when a generated code collides
// with an existing one.
const codeRetries = 5

// InviteService handles business logic for group invites
type InviteService struct {
	repo           repository.InviteRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewInviteService creates a new invite service
func NewInviteService(
	repo repository.InviteRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *InviteService {
	return &InviteService{
		repo:           repo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateInviteRequest represents the request to create an invite
type CreateInviteRequest struct {
	MaxUses       int `json:"max_uses" validate:"omitempty,min=-1"`
	ExpiresInDays int `json:"expires_in_days" validate:"omitempty,min=1,max=365"`
}

// InviteResponse represents the response for invite operations
type InviteResponse struct {
	ID        uuid.UUID  `json:"id"`
	GroupID   uuid.UUID  `json:"group_id"`
	Code      string     `json:"code"`
	MaxUses   int        `json:"max_uses"`
	UsedCount int        `json:"used_count"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// RedeemResponse represents the outcome of redeeming an invite
type RedeemResponse struct {
	GroupID   uuid.UUID `json:"group_id"`
	GroupName string    `json:"group_name"`
}

// Create creates an invite for a group. Admin only. MaxUses of -1 means
// unlimited; zero defaults to single use.
func (s *InviteService) Create(actorID, groupID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}
	if req.MaxUses == 0 {
		req.MaxUses = 1
	}

	var expiresAt *time.Time
	if req.ExpiresInDays > 0 {
		t := time.Now().AddDate(0, 0, req.ExpiresInDays)
		expiresAt = &t
	}

	var invite *models.GroupInvite
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := GenerateInviteCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}
		invite = &models.GroupInvite{
			GroupID:   groupID,
			CreatedBy: actorID,
			Code:      code,
			MaxUses:   req.MaxUses,
			ExpiresAt: expiresAt,
			IsActive:  true,
		}
		err = s.repo.Create(invite)
		if err == nil {
			return s.toResponse(invite), nil
		}
		if !apperrors.IsAlreadyExists(err) {
			return nil, fmt.Errorf("failed to create invite: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to create invite: code space exhausted after %d attempts", codeRetries)
}

// List retrieves the group's invites. Admin only.
func (s *InviteService) List(actorID, groupID uuid.UUID) ([]InviteResponse, error) {
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}
	invites, err := s.repo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = *s.toResponse(&invites[i])
	}
	return responses, nil
}

// Deactivate disables an invite. Admin only.
func (s *InviteService) Deactivate(actorID, inviteID uuid.UUID) error {
	invite, err := s.repo.GetByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if err := s.requireAdmin(invite.GroupID, actorID); err != nil {
		return err
	}
	if err := s.repo.Deactivate(inviteID); err != nil {
		return fmt.Errorf("failed to deactivate invite: %w", err)
	}
	return nil
}

// Redeem admits the actor into the group behind the code. The checks run in
// a fixed order so a caller always gets the most specific rejection: unknown
// or inactive code, then expiry, then usage cap, then ban, then existing
// membership. A returning member gets a fresh default profile.
func (s *InviteService) Redeem(actorID uuid.UUID, code string) (*RedeemResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, apperrors.ErrInvalidInviteCode
	}

	invite, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInviteCode
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	if !invite.IsActive {
		return nil, apperrors.ErrInvalidInviteCode
	}
	if invite.Expired(time.Now()) {
		return nil, apperrors.ErrInviteExpired
	}
	if invite.Exhausted() {
		return nil, apperrors.ErrInviteExhausted
	}

	banned, err := s.groupRepo.IsBanned(invite.GroupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban: %w", err)
	}
	if banned {
		return nil, apperrors.ErrBanned
	}

	isMember, err := s.membershipRepo.IsMember(invite.GroupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrAlreadyMember
	}

	if err := s.repo.Redeem(invite, actorID); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to redeem invite: %w", err)
	}

	group, err := s.groupRepo.GetByID(invite.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &RedeemResponse{GroupID: group.ID, GroupName: group.Name}, nil
}

// Preview resolves a code to its group without redeeming it, so a client can
// show what is being joined. The same rejection order as Redeem applies.
func (s *InviteService) Preview(code string) (*RedeemResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	invite, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInviteCode
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	if !invite.IsActive {
		return nil, apperrors.ErrInvalidInviteCode
	}
	if invite.Expired(time.Now()) {
		return nil, apperrors.ErrInviteExpired
	}
	if invite.Exhausted() {
		return nil, apperrors.ErrInviteExhausted
	}
	group, err := s.groupRepo.GetByID(invite.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &RedeemResponse{GroupID: group.ID, GroupName: group.Name}, nil
}

func (s *InviteService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

func (s *InviteService) toResponse(invite *models.GroupInvite) *InviteResponse {
	return &InviteResponse{
		ID:        invite.ID,
		GroupID:   invite.GroupID,
		Code:      invite.Code,
		MaxUses:   invite.MaxUses,
		UsedCount: invite.UsedCount,
		ExpiresAt: invite.ExpiresAt,
		IsActive:  invite.IsActive,
		CreatedAt: invite.CreatedAt,
	}
}

// GenerateInviteCode draws a code from the invite alphabet using crypto/rand
func GenerateInviteCode() (string, error) {
	max := big.NewInt(int64(len(models.InviteCodeAlphabet)))
	code := make([]byte, models.InviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = models.InviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
