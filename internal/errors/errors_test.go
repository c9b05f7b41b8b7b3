package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "match"}
		assert.Equal(t, "match not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "match"}
		err2 := &NotFoundError{Entity: "match"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "match"}
		err2 := &NotFoundError{Entity: "group"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrGroupNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrMatchNotFound)))
		assert.False(t, IsNotFound(ErrAlreadyMember))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "player", Context: "on this match"}
		assert.Equal(t, "player already exists on this match", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "player"}
		assert.Equal(t, "player already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAlreadyRegistered))
		assert.False(t, IsAlreadyExists(ErrGroupNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "rating", Message: "must be between 1 and 10"}
		assert.Equal(t, "validation error: rating - must be between 1 and 10", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Field: "privacy", Message: "bad"}))
		assert.False(t, IsValidation(ErrGroupNotFound))
	})
}

func TestLifecycleHelpers(t *testing.T) {
	t.Run("IsLifecycle covers all guards", func(t *testing.T) {
		for _, err := range []error{
			ErrMatchFinalized,
			ErrMatchNotFinalized,
			ErrTeamsLocked,
			ErrTeamsAlreadyCreated,
			ErrTeamsNotCreated,
			ErrEmptyRoster,
			ErrCapacityExceeded,
		} {
			assert.True(t, IsLifecycle(err), err.Error())
		}
	})

	t.Run("IsLifecycle rejects others", func(t *testing.T) {
		assert.False(t, IsLifecycle(ErrGroupNotFound))
		assert.False(t, IsLifecycle(ErrBanned))
	})

	t.Run("IsLifecycle sees through wrapping", func(t *testing.T) {
		assert.True(t, IsLifecycle(fmt.Errorf("create teams: %w", ErrTeamsLocked)))
	})
}

func TestInviteRejectionHelper(t *testing.T) {
	for _, err := range []error{
		ErrInvalidInviteCode,
		ErrInviteExpired,
		ErrInviteExhausted,
		ErrBanned,
	} {
		assert.True(t, IsInviteRejection(err), err.Error())
	}
	assert.False(t, IsInviteRejection(ErrAlreadyMember))
}

func TestAuthErrors(t *testing.T) {
	t.Run("authentication error message", func(t *testing.T) {
		assert.Equal(t, "not authenticated", ErrNotAuthenticated.Error())
	})

	t.Run("authorization error message", func(t *testing.T) {
		assert.Equal(t, "admin privileges required", ErrNotAuthorized.Error())
	})
}
