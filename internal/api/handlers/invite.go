package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for group invites
type InviteHandler struct {
	service service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(service service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{service: service}
}

// RedeemRequest represents the request to redeem an invite code
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// CreateInvite creates an invite for a group
// @Summary Create invite
// @Description Create a redeemable invite code; admin only
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param invite body service.CreateInviteRequest true "Invite settings"
// @Success 201 {object} service.InviteResponse "Created invite"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invite, err := h.service.Create(actor, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// ListInvites retrieves the group's invites
// @Summary List invites
// @Description List the group's invite codes; admin only
// @Tags invites
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.InviteResponse "Invites"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/invites [get]
func (h *InviteHandler) ListInvites(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	invites, err := h.service.List(actor, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// RedeemInvite redeems an invite code
// @Summary Redeem invite
// @Description Join the group behind an invite code
// @Tags invites
// @Accept json
// @Produce json
// @Param code body RedeemRequest true "Invite code"
// @Success 200 {object} service.RedeemResponse "Joined group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Invite rejected"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invites/redeem [post]
func (h *InviteHandler) RedeemInvite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.service.Redeem(actor, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PreviewInvite resolves an invite code without redeeming it
// @Summary Preview invite
// @Description Resolve an invite code to its group without joining
// @Tags invites
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} service.RedeemResponse "Invite target"
// @Failure 409 {object} ErrorResponse "Invite rejected"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invites/{code} [get]
func (h *InviteHandler) PreviewInvite(c *gin.Context) {
	result, err := h.service.Preview(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeactivateInvite disables an invite
// @Summary Deactivate invite
// @Description Disable an invite code; admin only
// @Tags invites
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 204 "Invite deactivated"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invites/{id} [delete]
func (h *InviteHandler) DeactivateInvite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	inviteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Deactivate(actor, inviteID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
