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

// RosterService handles business logic for match registration
type RosterService struct {
	matchRepo       repository.MatchRepositoryInterface
	rosterRepo      repository.RosterRepositoryInterface
	waitingListRepo repository.WaitingListRepositoryInterface
	playerRepo      repository.PlayerRepositoryInterface
	membershipRepo  repository.MembershipRepositoryInterface
	validator       *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(
	matchRepo repository.MatchRepositoryInterface,
	rosterRepo repository.RosterRepositoryInterface,
	waitingListRepo repository.WaitingListRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		matchRepo:       matchRepo,
		rosterRepo:      rosterRepo,
		waitingListRepo: waitingListRepo,
		playerRepo:      playerRepo,
		membershipRepo:  membershipRepo,
		validator:       validator,
	}
}

// JoinResponse reports where an admission landed
type JoinResponse struct {
	Registered bool `json:"registered"`
	Waitlisted bool `json:"waitlisted"`
}

// AddParticipantRequest represents the request to add a participant to a
// match. Either an existing group player or an ad-hoc guest name, not both.
type AddParticipantRequest struct {
	TeamPlayerID *uuid.UUID `json:"team_player_id"`
	GuestName    string     `json:"guest_name" validate:"omitempty,min=1,max=200"`
}

// WaitingListEntryResponse represents one waiting list position
type WaitingListEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamPlayerID uuid.UUID `json:"team_player_id"`
	Name         string    `json:"name"`
	Position     int       `json:"position"`
	JoinedAt     time.Time `json:"joined_at"`
}

// Join registers the caller for a match. A full match queues the caller on
// the waiting list instead. Closed once teams exist.
func (s *RosterService) Join(actorID, matchID uuid.UUID) (*JoinResponse, error) {
	match, err := s.getOpenMatch(matchID)
	if err != nil {
		return nil, err
	}
	player, err := s.playerRepo.GetByUserAndGroup(actorID, match.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return s.admit(match, player.ID)
}

// Leave withdraws the caller from a match, whether registered or waiting.
// Nobody is promoted from the waiting list; the freed spot stays open for
// whoever joins next.
func (s *RosterService) Leave(actorID, matchID uuid.UUID) error {
	match, err := s.matchRepo.GetWithDetails(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if match.TeamsFinalized {
		return apperrors.ErrMatchFinalized
	}
	if match.TeamsCreated {
		return apperrors.ErrTeamsLocked
	}
	player, err := s.playerRepo.GetByUserAndGroup(actorID, match.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}
	if err := s.rosterRepo.DeleteByMatchAndPlayer(matchID, player.ID); err != nil {
		return fmt.Errorf("failed to remove from roster: %w", err)
	}
	if err := s.waitingListRepo.DeleteByMatchAndPlayer(matchID, player.ID); err != nil {
		return fmt.Errorf("failed to remove from waiting list: %w", err)
	}
	return nil
}

// AddParticipant puts a group player or an ad-hoc guest on the roster on
// behalf of an admin. Same admission rules as Join.
func (s *RosterService) AddParticipant(actorID, matchID uuid.UUID, req *AddParticipantRequest) (*JoinResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if (req.TeamPlayerID == nil) == (req.GuestName == "") {
		return nil, &apperrors.ValidationError{Field: "team_player_id", Message: "provide exactly one of team_player_id or guest_name"}
	}
	match, err := s.getOpenMatch(matchID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return nil, err
	}

	if req.GuestName != "" {
		count, err := s.rosterRepo.CountByMatch(matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to count roster: %w", err)
		}
		if int(count) >= match.Capacity() {
			return nil, apperrors.ErrCapacityExceeded
		}
		entry := &models.MatchPlayer{MatchID: matchID, GuestName: req.GuestName}
		if err := s.rosterRepo.Create(entry); err != nil {
			return nil, fmt.Errorf("failed to add guest: %w", err)
		}
		return &JoinResponse{Registered: true}, nil
	}

	player, err := s.playerRepo.GetByID(*req.TeamPlayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player.GroupID != match.GroupID {
		return nil, apperrors.ErrPlayerNotFound
	}
	return s.admit(match, player.ID)
}

// RemovePlayer takes a participant off the roster. Admin only. When a spot
// frees up the longest-waiting player is promoted in the same call.
func (s *RosterService) RemovePlayer(actorID, matchID, matchPlayerID uuid.UUID) error {
	match, err := s.matchRepo.GetWithDetails(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if match.TeamsFinalized {
		return apperrors.ErrMatchFinalized
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return err
	}

	participant, err := s.rosterRepo.GetByID(matchPlayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchPlayerNotFound
		}
		return fmt.Errorf("failed to get participant: %w", err)
	}
	if participant.MatchID != matchID {
		return apperrors.ErrMatchPlayerNotFound
	}
	if err := s.rosterRepo.Delete(matchPlayerID); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	return s.promoteHead(match)
}

// WaitingList retrieves the match's waiting list in queue order. Members only.
func (s *RosterService) WaitingList(actorID, matchID uuid.UUID) ([]WaitingListEntryResponse, error) {
	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	isMember, err := s.membershipRepo.IsMember(match.GroupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrMatchNotFound
	}

	entries, err := s.waitingListRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting list: %w", err)
	}
	responses := make([]WaitingListEntryResponse, len(entries))
	for i := range entries {
		name := ""
		if entries[i].TeamPlayer != nil && entries[i].TeamPlayer.User != nil {
			name = entries[i].TeamPlayer.User.Name
		}
		responses[i] = WaitingListEntryResponse{
			ID:           entries[i].ID,
			TeamPlayerID: entries[i].TeamPlayerID,
			Name:         name,
			Position:     i + 1,
			JoinedAt:     entries[i].JoinedAt,
		}
	}
	return responses, nil
}

// admit puts the player on the roster when there is room and on the waiting
// list otherwise. A rostered admission clears any waiting-list entry the
// player holds from an earlier full-match attempt, so nobody occupies both.
// The unique constraints turn a duplicate admission into ErrAlreadyRegistered
// no matter how the requests interleave.
func (s *RosterService) admit(match *models.Match, teamPlayerID uuid.UUID) (*JoinResponse, error) {
	count, err := s.rosterRepo.CountByMatch(match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count roster: %w", err)
	}
	if int(count) < match.Capacity() {
		entry := &models.MatchPlayer{MatchID: match.ID, TeamPlayerID: &teamPlayerID}
		if err := s.rosterRepo.Create(entry); err != nil {
			return nil, err
		}
		if err := s.waitingListRepo.DeleteByMatchAndPlayer(match.ID, teamPlayerID); err != nil {
			return nil, fmt.Errorf("failed to clear waiting list entry: %w", err)
		}
		return &JoinResponse{Registered: true}, nil
	}

	if _, err := s.rosterRepo.GetByMatchAndPlayer(match.ID, teamPlayerID); err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	entry := &models.WaitingListEntry{MatchID: match.ID, TeamPlayerID: teamPlayerID}
	if err := s.waitingListRepo.Create(entry); err != nil {
		return nil, err
	}
	return &JoinResponse{Waitlisted: true}, nil
}

// promoteHead moves the longest-waiting player onto the roster if a spot is
// open. No-op on an empty waiting list or a still-full match.
func (s *RosterService) promoteHead(match *models.Match) error {
	count, err := s.rosterRepo.CountByMatch(match.ID)
	if err != nil {
		return fmt.Errorf("failed to count roster: %w", err)
	}
	if int(count) >= match.Capacity() {
		return nil
	}
	head, err := s.waitingListRepo.First(match.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read waiting list: %w", err)
	}
	entry := &models.MatchPlayer{MatchID: match.ID, TeamPlayerID: &head.TeamPlayerID}
	if err := s.rosterRepo.Create(entry); err != nil && !apperrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to promote from waiting list: %w", err)
	}
	if err := s.waitingListRepo.Delete(head.ID); err != nil {
		return fmt.Errorf("failed to dequeue waiting list entry: %w", err)
	}
	return nil
}

// getOpenMatch loads a match and rejects any lifecycle state past Open
func (s *RosterService) getOpenMatch(matchID uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetWithDetails(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if match.TeamsFinalized {
		return nil, apperrors.ErrMatchFinalized
	}
	if match.TeamsCreated {
		return nil, apperrors.ErrTeamsLocked
	}
	return match, nil
}

func (s *RosterService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}
