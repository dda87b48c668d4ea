package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// PlanHandler handles the subscription plan endpoints.
type PlanHandler struct {
	plans   core.PlanService
	auditor core.AuditService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans core.PlanService, auditor core.AuditService) *PlanHandler {
	return &PlanHandler{plans: plans, auditor: auditor}
}

// mapPlanErrorToStatus maps errors from core.PlanService to HTTP responses.
func mapPlanErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrPlanNotFound.Error()})
	case errors.Is(err, core.ErrPlanExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrPlanExists.Error()})
	default:
		log.Printf("plan handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListActivePlans handles GET /plans, the catalog shown to signed-in users.
func (h *PlanHandler) ListActivePlans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, console.FilterPlans(plans, true))
}

// ListPlans handles GET /admin/plans. activeOnly=true narrows to plans
// currently offered.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, console.FilterPlans(plans, c.Query("activeOnly") == "true"))
}

// GetPlan handles GET /admin/plans/:planId
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	plan, err := h.plans.Get(c.Request.Context(), planID)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan handles POST /admin/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), req)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "plan.create", "plan", plan.ID, map[string]interface{}{
		"name": plan.Name,
	})
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan handles PUT /admin/plans/:planId
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	var req models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	plan, err := h.plans.Update(c.Request.Context(), planID, req)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "plan.update", "plan", planID, nil)
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /admin/plans/:planId
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}
	if !requireConfirm(c) {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), planID); err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "plan.delete", "plan", planID, nil)
	c.Status(http.StatusNoContent)
}
