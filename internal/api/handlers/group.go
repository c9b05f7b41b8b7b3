package handlers

import (
	"net/http"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Create a group; the caller becomes its owner and first member
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// ListGroups retrieves the caller's groups
// @Summary List my groups
// @Description List the groups the caller belongs to
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groups, err := h.service.ListMine(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// DiscoverGroups retrieves public groups the caller has not joined
// @Summary Discover public groups
// @Description List public groups open to the caller
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Public groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/public [get]
func (h *GroupHandler) DiscoverGroups(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groups, err := h.service.Discover(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group with its counters
// @Summary Get group by ID
// @Description Get a group with member and match counters
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupStatsResponse "Group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	group, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroup updates a group
// @Summary Update group
// @Description Update group settings; admin only
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "Updated group data"
// @Success 200 {object} service.GroupResponse "Updated group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Description Delete a group and everything in it; owner only
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Group deleted"
// @Failure 403 {object} ErrorResponse "Owner privileges required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// JoinGroup joins a public group
// @Summary Join public group
// @Description Join a public group directly; private groups require an invite
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} map[string]string "Joined"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Already a member or group is private"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Join(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "joined"})
}
