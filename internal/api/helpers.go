package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/middleware"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// requireConfirm enforces the confirm=true query parameter on destructive
// endpoints. It stands in for the interactive confirmation prompt of the web
// console; without it the request is rejected before anything is deleted.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Deletion requires the confirm=true query parameter"})
		return false
	}
	return true
}

// currentUserID reads the authenticated user's ID from the Gin context. An
// empty result means the auth middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return userID, true
}

// recordAudit writes one audit event attributed to the calling admin.
// Recording is best effort and never fails the request.
func recordAudit(c *gin.Context, auditor core.AuditService, action, targetType, targetID string, details map[string]interface{}) {
	if auditor == nil {
		return
	}
	auditor.Record(c.Request.Context(), &models.AuditEvent{
		ActorID:    c.GetString(middleware.ContextUserIDKey),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	})
}
