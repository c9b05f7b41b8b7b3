package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for group members
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers retrieves the group's members
// @Summary List group members
// @Description List members with their player profiles
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.MemberResponse "Members"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	members, err := h.service.List(actor, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMember retrieves one member with their stats
// @Summary Get member details
// @Description Get a member's profile and accumulated match statistics
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} service.MemberDetailsResponse "Member details"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	details, err := h.service.Details(actor, groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetMemberStats retrieves a member's accumulated match statistics
// @Summary Get member stats
// @Description Get a member's accumulated goals, assists and average rating
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} service.PlayerStatsResponse "Player stats"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID}/stats [get]
func (h *MemberHandler) GetMemberStats(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	stats, err := h.service.Stats(actor, groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateMember updates a member's player profile
// @Summary Update member profile
// @Description Update rating, position or key player flag; rating and key player are admin fields
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Param profile body service.UpdateProfileRequest true "Profile updates"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateProfile(actor, groupID, userID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// RemoveMember removes a member from the group
// @Summary Remove member
// @Description Remove a member and their roster entries; admin only, owner immune
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Owner cannot be removed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	if err := h.service.Remove(actor, groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PromoteMember grants a member admin rights
// @Summary Promote member
// @Description Grant admin rights; admin only
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} map[string]string "Promoted"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID}/promote [post]
func (h *MemberHandler) PromoteMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	if err := h.service.Promote(actor, groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "promoted"})
}

// DemoteMember revokes a member's admin rights
// @Summary Demote member
// @Description Revoke admin rights; admin only, owner immune
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} map[string]string "Demoted"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 409 {object} ErrorResponse "Owner cannot be demoted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID}/demote [post]
func (h *MemberHandler) DemoteMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}
	if err := h.service.Demote(actor, groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "demoted"})
}

// LeaveGroup removes the caller from the group
// @Summary Leave group
// @Description Leave a group; the owner cannot leave their own group
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Left group"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Failure 409 {object} ErrorResponse "Owner cannot leave"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *MemberHandler) LeaveGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Leave(actor, groupID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddGuest provisions a guest member
// @Summary Add guest
// @Description Create a synthetic guest account and add it to the group; admin only
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param guest body service.AddGuestRequest true "Guest data"
// @Success 201 {object} service.MemberResponse "Guest added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/guests [post]
func (h *MemberHandler) AddGuest(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.AddGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest, err := h.service.AddGuest(actor, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// ListGuests retrieves the group's guest members
// @Summary List guests
// @Description List the group's synthetic guest members
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.MemberResponse "Guests"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/guests [get]
func (h *MemberHandler) ListGuests(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	guests, err := h.service.ListGuests(actor, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
