package handlers

import (
	"errors"
	"net/http"

	apperrors "matchday-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondError maps application errors onto HTTP statuses. Anything
// unrecognized becomes a 500 with a generic body so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsLifecycle(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsInviteRejection(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), isFieldValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrOwnerImmutable),
		errors.Is(err, apperrors.ErrNotAdmin),
		errors.Is(err, apperrors.ErrGroupPrivate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var authnErr *apperrors.AuthenticationError
		var authzErr *apperrors.AuthorizationError
		if errors.As(err, &authnErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if errors.As(err, &authzErr) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func isFieldValidation(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// actorID pulls the authenticated user out of the request context
func actorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a UUID path parameter, answering 400 on garbage
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
