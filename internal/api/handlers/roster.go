package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RosterHandler handles HTTP requests for match registration
type RosterHandler struct {
	service service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(service service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{service: service}
}

// JoinMatch registers the caller for a match
// @Summary Join match
// @Description Register for a match; a full match queues the caller on the waiting list
// @Tags roster
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.JoinResponse "Registered or waitlisted"
// @Failure 404 {object} ErrorResponse "Match or player not found"
// @Failure 409 {object} ErrorResponse "Already registered or registration closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/join [post]
func (h *RosterHandler) JoinMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.service.Join(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LeaveMatch withdraws the caller from a match
// @Summary Leave match
// @Description Withdraw from a match or its waiting list; closed once teams exist
// @Tags roster
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Withdrawn"
// @Failure 404 {object} ErrorResponse "Match or player not found"
// @Failure 409 {object} ErrorResponse "Registration closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/leave [post]
func (h *RosterHandler) LeaveMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Leave(actor, matchID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddParticipant adds a player or guest to the roster
// @Summary Add participant
// @Description Add a group player or an ad-hoc guest to the roster; admin only
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param participant body service.AddParticipantRequest true "Participant"
// @Success 200 {object} service.JoinResponse "Registered or waitlisted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Already registered or registration closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/players [post]
func (h *RosterHandler) AddParticipant(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.service.AddParticipant(actor, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemovePlayer takes a participant off the roster
// @Summary Remove participant
// @Description Remove a roster entry and promote the longest-waiting player; admin only
// @Tags roster
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param playerID path string true "Match player ID (UUID)"
// @Success 204 "Removed"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Failure 409 {object} ErrorResponse "Match finalized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/players/{playerID} [delete]
func (h *RosterHandler) RemovePlayer(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	playerID, ok := pathUUID(c, "playerID")
	if !ok {
		return
	}
	if err := h.service.RemovePlayer(actor, matchID, playerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWaitingList retrieves the match's waiting list
// @Summary Get waiting list
// @Description List the match's waiting list in queue order
// @Tags roster
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.WaitingListEntryResponse "Waiting list"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/waiting-list [get]
func (h *RosterHandler) GetWaitingList(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	entries, err := h.service.WaitingList(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
