package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this group"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGroupNotFound       = &NotFoundError{Entity: "group"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrMemberNotFound      = &NotFoundError{Entity: "group member"}
	ErrPlayerNotFound      = &NotFoundError{Entity: "player profile"}
	ErrMatchNotFound       = &NotFoundError{Entity: "match"}
	ErrMatchPlayerNotFound = &NotFoundError{Entity: "match player"}
	ErrInviteNotFound      = &NotFoundError{Entity: "invite"}
)

// Already Exists Errors
var (
	ErrAlreadyRegistered = &AlreadyExistsError{Entity: "player", Context: "on this match"}
	ErrAlreadyMember     = &AlreadyExistsError{Entity: "member", Context: "in this group"}
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrStatExists        = &AlreadyExistsError{Entity: "stat line", Context: "for this player in this match"}
)

// Match Lifecycle Errors
var (
	ErrMatchFinalized      = errors.New("match is finalized, no changes allowed")
	ErrMatchNotFinalized   = errors.New("match is not finalized, stats are not open yet")
	ErrTeamsLocked         = errors.New("teams have been created, joining and leaving is closed")
	ErrTeamsAlreadyCreated = errors.New("teams have already been created for this match")
	ErrTeamsNotCreated     = errors.New("teams have not been created for this match")
	ErrEmptyRoster         = errors.New("no players registered for this match")
	ErrCapacityExceeded    = errors.New("match capacity exceeded")
)

// Invite Redemption Errors
var (
	ErrInvalidInviteCode = errors.New("invalid or inactive invite code")
	ErrInviteExpired     = errors.New("invite code has expired")
	ErrInviteExhausted   = errors.New("invite code has reached its maximum uses")
	ErrBanned            = errors.New("user is banned from this group")
)

// Role Management Errors
var (
	ErrOwnerImmutable = errors.New("group owner cannot be demoted or removed")
	ErrNotAdmin       = errors.New("user is not an admin of this group")
	ErrGroupPrivate   = errors.New("group is private, an invite is required to join")
)

// Authentication / Authorization Errors
var (
	ErrNotAuthenticated = &AuthenticationError{Message: "not authenticated"}
	ErrNotAuthorized    = &AuthorizationError{Message: "admin privileges required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsLifecycle checks if an error is one of the match lifecycle guards
func IsLifecycle(err error) bool {
	return errors.Is(err, ErrMatchFinalized) ||
		errors.Is(err, ErrMatchNotFinalized) ||
		errors.Is(err, ErrTeamsLocked) ||
		errors.Is(err, ErrTeamsAlreadyCreated) ||
		errors.Is(err, ErrTeamsNotCreated) ||
		errors.Is(err, ErrEmptyRoster) ||
		errors.Is(err, ErrCapacityExceeded)
}

// IsInviteRejection checks if an error is one of the invite redemption failures
func IsInviteRejection(err error) bool {
	return errors.Is(err, ErrInvalidInviteCode) ||
		errors.Is(err, ErrInviteExpired) ||
		errors.Is(err, ErrInviteExhausted) ||
		errors.Is(err, ErrBanned)
}
