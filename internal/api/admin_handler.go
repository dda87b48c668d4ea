package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
)

// AdminHandler handles the console overview and the audit trail.
type AdminHandler struct {
	loader  *console.Loader
	auditor core.AuditService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(loader *console.Loader, auditor core.AuditService) *AdminHandler {
	return &AdminHandler{loader: loader, auditor: auditor}
}

// Overview handles GET /admin/overview. The five datasets load concurrently;
// a dataset that failed shows up in the snapshot's Errors map while the rest
// render normally.
func (h *AdminHandler) Overview(c *gin.Context) {
	snapshot := h.loader.Load(c.Request.Context())

	c.JSON(http.StatusOK, OverviewResponse{
		Counts: map[string]int{
			"users":    len(snapshot.Users),
			"projects": len(snapshot.Projects),
			"models":   len(snapshot.Models),
			"plans":    len(snapshot.Plans),
			"payments": len(snapshot.Payments),
		},
		Snapshot: snapshot,
	})
}

// AuditLog handles GET /admin/audit. limit caps the number of events, newest
// first.
func (h *AdminHandler) AuditLog(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	events, err := h.auditor.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("audit listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load audit events"})
		return
	}
	c.JSON(http.StatusOK, events)
}
