package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team formation
type TeamHandler struct {
	service service.FormationServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.FormationServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeams forms teams for a match
// @Summary Create teams
// @Description Shuffle the roster into teams; admin only, once per match
// @Tags teams
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 201 {object} service.FormationResponse "Formed teams"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Teams already created or roster empty"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/teams [post]
func (h *TeamHandler) CreateTeams(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.service.CreateTeams(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RandomizeTeams reshuffles the roster across the existing teams
// @Summary Randomize teams
// @Description Reshuffle players across the existing teams; admin only
// @Tags teams
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.FormationResponse "Reshuffled teams"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Teams not created or match finalized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/teams/randomize [post]
func (h *TeamHandler) RandomizeTeams(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.service.RandomizeTeams(actor, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FinalizeTeams locks the match
// @Summary Finalize teams
// @Description Lock the teams irreversibly; admin only
// @Tags teams
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} map[string]string "Finalized"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Teams not created or already finalized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/teams/finalize [post]
func (h *TeamHandler) FinalizeTeams(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.FinalizeTeams(actor, matchID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "finalized"})
}
