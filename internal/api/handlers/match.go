package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	service service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{service: service}
}

// CreateMatch schedules a match in a group
// @Summary Create match
// @Description Schedule a match; admin only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Created match"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	match, err := h.service.Create(actor, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// ListMatches retrieves the group's matches
// @Summary List matches
// @Description List the group's matches in kickoff order
// @Tags matches
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.MatchResponse "Matches"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	matches, err := h.service.ListByGroup(actor, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch retrieves a match with roster and teams
// @Summary Get match
// @Description Get a match with its roster, waiting list size and teams where visible
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchDetailResponse "Match details"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	match, err := h.service.Get(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateMatch updates match settings
// @Summary Update match
// @Description Update match settings; admin only, closed once finalized
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Match updates"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Match finalized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	match, err := h.service.Update(actor, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// RecordStat records a post-match stat line for a player
// @Summary Record player stat
// @Description Record goals, assists and an optional rating for a rostered player; admin only, finalized matches only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param stat body service.RecordStatRequest true "Stat line"
// @Success 201 {object} service.StatLineResponse "Recorded stat"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Match or player not found"
// @Failure 409 {object} ErrorResponse "Stat already recorded or match not finalized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/stats [post]
func (h *MatchHandler) RecordStat(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RecordStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stat, err := h.service.RecordStat(actor, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stat)
}

// ListStats retrieves the match's recorded stat lines
// @Summary List match stats
// @Description List the stat lines recorded for a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.StatLineResponse "Stat lines"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/stats [get]
func (h *MatchHandler) ListStats(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stats, err := h.service.ListStats(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteMatch deletes a match
// @Summary Delete match
// @Description Delete a match in any state; admin only
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Match deleted"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(actor, matchID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
