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

// MatchService handles business logic for matches
type MatchService struct {
	repo            repository.MatchRepositoryInterface
	groupRepo       repository.GroupRepositoryInterface
	membershipRepo  repository.MembershipRepositoryInterface
	rosterRepo      repository.RosterRepositoryInterface
	waitingListRepo repository.WaitingListRepositoryInterface
	statsRepo       repository.StatsRepositoryInterface
	validator       *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(
	repo repository.MatchRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	rosterRepo repository.RosterRepositoryInterface,
	waitingListRepo repository.WaitingListRepositoryInterface,
	statsRepo repository.StatsRepositoryInterface,
	validator *validator.Validate,
) *MatchService {
	return &MatchService{
		repo:            repo,
		groupRepo:       groupRepo,
		membershipRepo:  membershipRepo,
		rosterRepo:      rosterRepo,
		waitingListRepo: waitingListRepo,
		statsRepo:       statsRepo,
		validator:       validator,
	}
}

// CreateMatchRequest represents the request to create a match
type CreateMatchRequest struct {
	DateTime          time.Time `json:"date_time" validate:"required"`
	Location          string    `json:"location" validate:"max=255"`
	MaxPlayersPerTeam int       `json:"max_players_per_team" validate:"required,min=1,max=30"`
	PlannedTeams      int       `json:"planned_teams" validate:"required,min=2,max=10"`
}

// UpdateMatchRequest represents the request to update a match
type UpdateMatchRequest struct {
	DateTime          *time.Time `json:"date_time"`
	Location          *string    `json:"location" validate:"omitempty,max=255"`
	MaxPlayersPerTeam *int       `json:"max_players_per_team" validate:"omitempty,min=1,max=30"`
	PlannedTeams      *int       `json:"planned_teams" validate:"omitempty,min=2,max=10"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID                uuid.UUID  `json:"id"`
	GroupID           uuid.UUID  `json:"group_id"`
	CreatedBy         *uuid.UUID `json:"created_by"`
	DateTime          time.Time  `json:"date_time"`
	Location          string     `json:"location"`
	MaxPlayersPerTeam int        `json:"max_players_per_team"`
	PlannedTeams      int        `json:"planned_teams"`
	TeamsCreated      bool       `json:"teams_created"`
	TeamsFinalized    bool       `json:"teams_finalized"`
	Capacity          int        `json:"capacity"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ParticipantResponse represents one roster entry
type ParticipantResponse struct {
	ID           uuid.UUID  `json:"id"`
	TeamPlayerID *uuid.UUID `json:"team_player_id"`
	TeamID       *uuid.UUID `json:"team_id,omitempty"`
	Name         string     `json:"name"`
	JoinedAt     time.Time  `json:"joined_at"`
}

// TeamResponse represents a formed team and its players
type TeamResponse struct {
	ID      uuid.UUID             `json:"id"`
	Name    string                `json:"name"`
	Players []ParticipantResponse `json:"players"`
}

// MatchDetailResponse represents a match with roster, teams and waiting list.
// Before finalization, viewers other than admins and the match creator get
// counts but no team assignments.
type MatchDetailResponse struct {
	Match            MatchResponse         `json:"match"`
	Participants     []ParticipantResponse `json:"participants"`
	Teams            []TeamResponse        `json:"teams,omitempty"`
	TeamCount        int                   `json:"team_count"`
	ParticipantCount int                   `json:"participant_count"`
	WaitingCount     int                   `json:"waiting_count"`
}

// RecordStatRequest represents one player's stat line for a finished match
type RecordStatRequest struct {
	TeamPlayerID uuid.UUID `json:"team_player_id" validate:"required"`
	Goals        int       `json:"goals" validate:"min=0,max=99"`
	Assists      int       `json:"assists" validate:"min=0,max=99"`
	Rating       *int      `json:"rating" validate:"omitempty,min=1,max=10"`
}

// StatLineResponse represents a recorded stat line
type StatLineResponse struct {
	ID           uuid.UUID `json:"id"`
	MatchID      uuid.UUID `json:"match_id"`
	TeamPlayerID uuid.UUID `json:"team_player_id"`
	Goals        int       `json:"goals"`
	Assists      int       `json:"assists"`
	Rating       *int      `json:"rating,omitempty"`
}

// Create creates a match in a group. Admin only.
func (s *MatchService) Create(actorID, groupID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	match := &models.Match{
		GroupID:           groupID,
		CreatedBy:         &actorID,
		DateTime:          req.DateTime,
		Location:          req.Location,
		MaxPlayersPerTeam: req.MaxPlayersPerTeam,
		PlannedTeams:      req.PlannedTeams,
	}
	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return s.toResponse(match), nil
}

// Get retrieves a match with roster, waiting list size and, when visible,
// team assignments. Members only.
func (s *MatchService) Get(actorID, matchID uuid.UUID) (*MatchDetailResponse, error) {
	match, err := s.repo.GetWithDetails(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireMember(match.GroupID, actorID); err != nil {
		return nil, err
	}

	participants, err := s.rosterRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	waiting, err := s.waitingListRepo.CountByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to count waiting list: %w", err)
	}

	detail := &MatchDetailResponse{
		Match:            *s.toResponse(match),
		TeamCount:        len(match.Teams),
		ParticipantCount: len(participants),
		WaitingCount:     int(waiting),
	}

	assignmentsVisible, err := s.assignmentsVisible(match, actorID)
	if err != nil {
		return nil, err
	}

	detail.Participants = make([]ParticipantResponse, len(participants))
	for i := range participants {
		detail.Participants[i] = toParticipant(&participants[i], assignmentsVisible)
	}
	if match.TeamsCreated && assignmentsVisible {
		detail.Teams = buildTeams(match.Teams, detail.Participants)
	}
	return detail, nil
}

// ListByGroup retrieves the group's matches in kickoff order. Members only.
func (s *MatchService) ListByGroup(actorID, groupID uuid.UUID) ([]MatchResponse, error) {
	if err := s.requireMember(groupID, actorID); err != nil {
		return nil, err
	}
	matches, err := s.repo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *s.toResponse(&matches[i])
	}
	return responses, nil
}

// Update updates match settings. Admin only; a finalized match is closed to
// changes.
func (s *MatchService) Update(actorID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return nil, err
	}
	if match.TeamsFinalized {
		return nil, apperrors.ErrMatchFinalized
	}

	updates := map[string]interface{}{}
	if req.DateTime != nil {
		updates["date_time"] = *req.DateTime
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.MaxPlayersPerTeam != nil {
		updates["max_players_per_team"] = *req.MaxPlayersPerTeam
	}
	if req.PlannedTeams != nil {
		if match.TeamsCreated {
			return nil, apperrors.ErrTeamsAlreadyCreated
		}
		updates["planned_teams"] = *req.PlannedTeams
	}
	if len(updates) > 0 {
		if err := s.repo.Update(matchID, updates); err != nil {
			return nil, fmt.Errorf("failed to update match: %w", err)
		}
	}

	match, err = s.repo.GetByID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload match: %w", err)
	}
	return s.toResponse(match), nil
}

// Delete deletes a match in any state. Admin only.
func (s *MatchService) Delete(actorID, matchID uuid.UUID) error {
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// RecordStat stores a post-match stat line for a rostered player. Admin only;
// the match must be finalized and the player must have been on the roster.
func (s *MatchService) RecordStat(actorID, matchID uuid.UUID, req *RecordStatRequest) (*StatLineResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return nil, err
	}
	if !match.TeamsFinalized {
		return nil, apperrors.ErrMatchNotFinalized
	}
	if _, err := s.rosterRepo.GetByMatchAndPlayer(matchID, req.TeamPlayerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchPlayerNotFound
		}
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}

	stat := &models.PlayerMatchStat{
		MatchID:      matchID,
		TeamPlayerID: req.TeamPlayerID,
		Goals:        req.Goals,
		Assists:      req.Assists,
		Rating:       req.Rating,
	}
	if err := s.statsRepo.Record(stat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrStatExists
		}
		return nil, fmt.Errorf("failed to record stat: %w", err)
	}
	return toStatLine(stat), nil
}

// ListStats retrieves the stat lines recorded for a match. Members only.
func (s *MatchService) ListStats(actorID, matchID uuid.UUID) ([]StatLineResponse, error) {
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireMember(match.GroupID, actorID); err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	responses := make([]StatLineResponse, len(stats))
	for i := range stats {
		responses[i] = *toStatLine(&stats[i])
	}
	return responses, nil
}

// assignmentsVisible decides whether the viewer may see who plays for which
// team. Assignments are public once finalized; before that only admins and
// the match creator see them.
func (s *MatchService) assignmentsVisible(match *models.Match, actorID uuid.UUID) (bool, error) {
	if match.TeamsFinalized {
		return true, nil
	}
	if match.CreatedBy != nil && *match.CreatedBy == actorID {
		return true, nil
	}
	isAdmin, err := s.membershipRepo.IsAdmin(match.GroupID, actorID)
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return isAdmin, nil
}

func (s *MatchService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

func (s *MatchService) requireMember(groupID, actorID uuid.UUID) error {
	isMember, err := s.membershipRepo.IsMember(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrMatchNotFound
	}
	return nil
}

func (s *MatchService) toResponse(match *models.Match) *MatchResponse {
	return &MatchResponse{
		ID:                match.ID,
		GroupID:           match.GroupID,
		CreatedBy:         match.CreatedBy,
		DateTime:          match.DateTime,
		Location:          match.Location,
		MaxPlayersPerTeam: match.MaxPlayersPerTeam,
		PlannedTeams:      match.PlannedTeams,
		TeamsCreated:      match.TeamsCreated,
		TeamsFinalized:    match.TeamsFinalized,
		Capacity:          match.Capacity(),
		CreatedAt:         match.CreatedAt,
	}
}

func toStatLine(stat *models.PlayerMatchStat) *StatLineResponse {
	return &StatLineResponse{
		ID:           stat.ID,
		MatchID:      stat.MatchID,
		TeamPlayerID: stat.TeamPlayerID,
		Goals:        stat.Goals,
		Assists:      stat.Assists,
		Rating:       stat.Rating,
	}
}

func toParticipant(p *models.MatchPlayer, withTeam bool) ParticipantResponse {
	resp := ParticipantResponse{
		ID:           p.ID,
		TeamPlayerID: p.TeamPlayerID,
		Name:         p.GuestName,
		JoinedAt:     p.JoinedAt,
	}
	if p.TeamPlayer != nil && p.TeamPlayer.User != nil {
		resp.Name = p.TeamPlayer.User.Name
	}
	if withTeam {
		resp.TeamID = p.TeamID
	}
	return resp
}

func buildTeams(teams []models.Team, participants []ParticipantResponse) []TeamResponse {
	responses := make([]TeamResponse, len(teams))
	byTeam := make(map[uuid.UUID][]ParticipantResponse)
	for _, p := range participants {
		if p.TeamID != nil {
			byTeam[*p.TeamID] = append(byTeam[*p.TeamID], p)
		}
	}
	for i := range teams {
		responses[i] = TeamResponse{
			ID:      teams[i].ID,
			Name:    teams[i].Name,
			Players: byTeam[teams[i].ID],
		}
	}
	return responses
}
