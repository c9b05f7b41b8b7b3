package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxImportBody caps import payloads at 5 MiB
const maxImportBody = 5 << 20

// TransferHandler handles HTTP requests for bulk export and import
type TransferHandler struct {
	service service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(service service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{service: service}
}

// ExportGroup downloads the group's players
// @Summary Export group
// @Description Download the group's players as JSON or CSV; admin only
// @Tags transfer
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param format query string false "Export format" Enums(json, csv) default(json)
// @Success 200 {object} service.ExportResponse "Export payload"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/export [get]
func (h *TransferHandler) ExportGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		data, err := h.service.ExportCSV(actor, groupID)
		if err != nil {
			respondError(c, err)
			return
		}
		filename := fmt.Sprintf("players-%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", data)
		return
	}

	resp, err := h.service.Export(actor, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ImportGroup uploads players into the group
// @Summary Import players
// @Description Bulk import players from JSON or CSV; admin only. Bad records fail individually.
// @Tags transfer
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.ImportSummary "Import summary"
// @Failure 400 {object} ErrorResponse "Malformed payload"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/import [post]
func (h *TransferHandler) ImportGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	records, err := service.ParseImport(body, c.ContentType())
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.service.Import(actor, groupID, records)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
