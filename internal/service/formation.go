package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormationService handles team formation for matches
type FormationService struct {
	matchRepo      repository.MatchRepositoryInterface
	rosterRepo     repository.RosterRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	shuffle        func(n int, swap func(i, j int))
}

// NewFormationService creates a new formation service
func NewFormationService(
	matchRepo repository.MatchRepositoryInterface,
	rosterRepo repository.RosterRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
) *FormationService {
	return &FormationService{
		matchRepo:      matchRepo,
		rosterRepo:     rosterRepo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		shuffle:        rand.Shuffle,
	}
}

// FormationResponse reports the formed teams
type FormationResponse struct {
	MatchID uuid.UUID      `json:"match_id"`
	Teams   []TeamResponse `json:"teams"`
}

// CreateTeams forms teams for a match from the current roster. Admin only,
// once per match. Players are shuffled and dealt round-robin across teams
// named Team A, Team B and so on.
func (s *FormationService) CreateTeams(actorID, matchID uuid.UUID) (*FormationResponse, error) {
	match, err := s.matchRepo.GetByID(matchID)
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
	if match.TeamsCreated {
		return nil, apperrors.ErrTeamsAlreadyCreated
	}

	participants, err := s.rosterRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	if len(participants) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	n := NumberOfTeams(len(participants), match.PlannedTeams, match.MaxPlayersPerTeam)
	names := TeamNames(n)
	order := s.shuffledOrder(participants)

	teams, err := s.teamRepo.FormTeams(matchID, names, order)
	if err != nil {
		return nil, fmt.Errorf("failed to form teams: %w", err)
	}
	return s.buildResponse(matchID, teams)
}

// RandomizeTeams reshuffles the roster across the existing teams. Admin
// only; available between formation and finalization.
func (s *FormationService) RandomizeTeams(actorID, matchID uuid.UUID) (*FormationResponse, error) {
	match, err := s.matchRepo.GetByID(matchID)
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
	if !match.TeamsCreated {
		return nil, apperrors.ErrTeamsNotCreated
	}

	teams, err := s.teamRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	participants, err := s.rosterRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	if len(participants) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	order := s.shuffledOrder(participants)
	assignments := make([]repository.TeamAssignment, len(order))
	for i, id := range order {
		assignments[i] = repository.TeamAssignment{
			MatchPlayerID: id,
			TeamID:        teams[i%len(teams)].ID,
		}
	}
	if err := s.teamRepo.AssignPlayers(matchID, assignments); err != nil {
		return nil, fmt.Errorf("failed to assign players: %w", err)
	}
	return s.buildResponse(matchID, teams)
}

// FinalizeTeams locks the match. Admin only, irreversible.
func (s *FormationService) FinalizeTeams(actorID, matchID uuid.UUID) error {
	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.requireAdmin(match.GroupID, actorID); err != nil {
		return err
	}
	if match.TeamsFinalized {
		return apperrors.ErrMatchFinalized
	}
	if !match.TeamsCreated {
		return apperrors.ErrTeamsNotCreated
	}
	if err := s.matchRepo.Update(matchID, map[string]interface{}{"teams_finalized": true}); err != nil {
		return fmt.Errorf("failed to finalize match: %w", err)
	}
	return nil
}

func (s *FormationService) shuffledOrder(participants []models.MatchPlayer) []uuid.UUID {
	order := make([]uuid.UUID, len(participants))
	for i := range participants {
		order[i] = participants[i].ID
	}
	s.shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

func (s *FormationService) buildResponse(matchID uuid.UUID, teams []models.Team) (*FormationResponse, error) {
	participants, err := s.rosterRepo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	responses := make([]ParticipantResponse, len(participants))
	for i := range participants {
		responses[i] = toParticipant(&participants[i], true)
	}
	return &FormationResponse{
		MatchID: matchID,
		Teams:   buildTeams(teams, responses),
	}, nil
}

func (s *FormationService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

// NumberOfTeams picks how many teams a roster splits into. Under the planned
// capacity it honors the planned count but never puts fewer than three
// players on a team when fewer teams would do; over capacity it grows the
// team count instead of the team size. Never fewer than two teams.
func NumberOfTeams(total, planned, perTeam int) int {
	if total <= planned*perTeam {
		n := (total + 2) / 3
		if n > planned {
			n = planned
		}
		if n < 2 {
			n = 2
		}
		return n
	}
	n := (total + perTeam - 1) / perTeam
	if n < 2 {
		n = 2
	}
	return n
}

// TeamNames yields Team A through Team Z, then Team 27 onwards
func TeamNames(n int) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		if i < 26 {
			names[i] = fmt.Sprintf("Team %c", 'A'+i)
		} else {
			names[i] = fmt.Sprintf("Team %d", i+1)
		}
	}
	return names
}
