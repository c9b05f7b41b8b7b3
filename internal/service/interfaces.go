package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for group service operations
type GroupServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	GetByID(actorID, groupID uuid.UUID) (*GroupStatsResponse, error)
	Update(actorID, groupID uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(actorID, groupID uuid.UUID) error
	ListMine(actorID uuid.UUID) ([]GroupResponse, error)
	Discover(actorID uuid.UUID) ([]GroupResponse, error)
	Join(actorID, groupID uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service operations
type MemberServiceInterface interface {
	List(actorID, groupID uuid.UUID) ([]MemberResponse, error)
	Details(actorID, groupID, userID uuid.UUID) (*MemberDetailsResponse, error)
	UpdateProfile(actorID, groupID, userID uuid.UUID, req *UpdateProfileRequest) error
	Promote(actorID, groupID, userID uuid.UUID) error
	Demote(actorID, groupID, userID uuid.UUID) error
	Remove(actorID, groupID, userID uuid.UUID) error
	Leave(actorID, groupID uuid.UUID) error
	AddGuest(actorID, groupID uuid.UUID, req *AddGuestRequest) (*MemberResponse, error)
	ListGuests(actorID, groupID uuid.UUID) ([]MemberResponse, error)
	Stats(actorID, groupID, userID uuid.UUID) (*PlayerStatsResponse, error)
}

// InviteServiceInterface defines the interface for invite service operations
type InviteServiceInterface interface {
	Create(actorID, groupID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error)
	List(actorID, groupID uuid.UUID) ([]InviteResponse, error)
	Deactivate(actorID, inviteID uuid.UUID) error
	Redeem(actorID uuid.UUID, code string) (*RedeemResponse, error)
	Preview(code string) (*RedeemResponse, error)
}

// MatchServiceInterface defines the interface for match service operations
type MatchServiceInterface interface {
	Create(actorID, groupID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error)
	Get(actorID, matchID uuid.UUID) (*MatchDetailResponse, error)
	ListByGroup(actorID, groupID uuid.UUID) ([]MatchResponse, error)
	Update(actorID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Delete(actorID, matchID uuid.UUID) error
	RecordStat(actorID, matchID uuid.UUID, req *RecordStatRequest) (*StatLineResponse, error)
	ListStats(actorID, matchID uuid.UUID) ([]StatLineResponse, error)
}

// RosterServiceInterface defines the interface for roster service operations
type RosterServiceInterface interface {
	Join(actorID, matchID uuid.UUID) (*JoinResponse, error)
	Leave(actorID, matchID uuid.UUID) error
	AddParticipant(actorID, matchID uuid.UUID, req *AddParticipantRequest) (*JoinResponse, error)
	RemovePlayer(actorID, matchID, matchPlayerID uuid.UUID) error
	WaitingList(actorID, matchID uuid.UUID) ([]WaitingListEntryResponse, error)
}

// FormationServiceInterface defines the interface for formation service operations
type FormationServiceInterface interface {
	CreateTeams(actorID, matchID uuid.UUID) (*FormationResponse, error)
	RandomizeTeams(actorID, matchID uuid.UUID) (*FormationResponse, error)
	FinalizeTeams(actorID, matchID uuid.UUID) error
}

// TransferServiceInterface defines the interface for transfer service operations
type TransferServiceInterface interface {
	Export(actorID, groupID uuid.UUID) (*ExportResponse, error)
	ExportCSV(actorID, groupID uuid.UUID) ([]byte, error)
	Import(actorID, groupID uuid.UUID, records []ImportRecord) (*ImportSummary, error)
}
