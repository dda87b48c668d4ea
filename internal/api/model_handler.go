package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/catalog"
	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// ModelHandler handles the model catalog endpoints: the active-model listing
// for generation clients and the admin management surface including provider
// sync and the legacy status migration.
type ModelHandler struct {
	models   core.ModelService
	engine   *catalog.Engine
	adapters []catalog.ProviderAdapter
	auditor  core.AuditService
}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler(models core.ModelService, engine *catalog.Engine, adapters []catalog.ProviderAdapter, auditor core.AuditService) *ModelHandler {
	return &ModelHandler{models: models, engine: engine, adapters: adapters, auditor: auditor}
}

// SyncResponse reports per-provider sync outcomes. A provider that failed
// outright appears under Errors instead of Results.
type SyncResponse struct {
	Results map[string]catalog.Result `json:"results"`
	Errors  map[string]string         `json:"errors,omitempty"`
}

// mapModelErrorToStatus maps errors from core.ModelService to HTTP responses.
func mapModelErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrModelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrModelNotFound.Error()})
	case errors.Is(err, core.ErrModelExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrModelExists.Error()})
	case errors.Is(err, core.ErrInvalidType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidType.Error(), Details: err.Error()})
	default:
		log.Printf("model handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListActiveModels handles GET /models. Generation clients see only entries
// an admin has switched on; an optional type parameter narrows further.
func (h *ModelHandler) ListActiveModels(c *gin.Context) {
	entries, err := h.models.List(c.Request.Context())
	if err != nil {
		mapModelErrorToStatus(c, err)
		return
	}

	filtered := console.FilterModels(entries, "", models.ModelType(c.Query("type")), models.ModelStatusActive)
	c.JSON(http.StatusOK, filtered)
}

// ListModels handles GET /admin/models with optional q, type and status
// filters.
func (h *ModelHandler) ListModels(c *gin.Context) {
	entries, err := h.models.List(c.Request.Context())
	if err != nil {
		mapModelErrorToStatus(c, err)
		return
	}

	filtered := console.FilterModels(entries,
		c.Query("q"),
		models.ModelType(c.Query("type")),
		models.ModelStatus(c.Query("status")))
	c.JSON(http.StatusOK, filtered)
}

// GetModel handles GET /admin/models/:modelId
func (h *ModelHandler) GetModel(c *gin.Context) {
	modelID := c.Param("modelId")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Model ID is required"})
		return
	}

	entry, err := h.models.Get(c.Request.Context(), modelID)
	if err != nil {
		mapModelErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateModel handles POST /admin/models for manual catalog registrations.
func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req models.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	entry, err := h.models.Create(c.Request.Context(), req)
	if err != nil {
		mapModelErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "model.create", "model", entry.ID, map[string]interface{}{
		"provider": entry.Provider,
		"type":     entry.Type,
	})
	c.JSON(http.StatusCreated, entry)
}

// UpdateModel handles PUT /admin/models/:modelId. This is the only write
// path that changes a model's activation status.
func (h *ModelHandler) UpdateModel(c *gin.Context) {
	modelID := c.Param("modelId")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Model ID is required"})
		return
	}

	var req models.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	entry, err := h.models.Update(c.Request.Context(), modelID, req)
	if err != nil {
		mapModelErrorToStatus(c, err)
		return
	}

	details := map[string]interface{}{}
	if req.Status != nil {
		details["status"] = *req.Status
	}
	recordAudit(c, h.auditor, "model.update", "model", modelID, details)
	c.JSON(http.StatusOK, entry)
}

// DeleteModel handles DELETE /admin/models/:modelId
func (h *ModelHandler) DeleteModel(c *gin.Context) {
	modelID := c.Param("modelId")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Model ID is required"})
		return
	}
	if !requireConfirm(c) {
		return
	}

	if err := h.models.Delete(c.Request.Context(), modelID); err != nil {
		mapModelErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "model.delete", "model", modelID, nil)
	c.Status(http.StatusNoContent)
}

// SyncModels handles POST /admin/models/sync. An empty provider in the body
// syncs every registered provider; failures are reported per provider so one
// provider cannot block the others.
func (h *ModelHandler) SyncModels(c *gin.Context) {
	// An empty body means "sync everything".
	var req models.SyncModelsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
			return
		}
	}

	selected := make([]catalog.ProviderAdapter, 0, len(h.adapters))
	for _, adapter := range h.adapters {
		if req.Provider == "" || adapter.Name() == req.Provider {
			selected = append(selected, adapter)
		}
	}
	if len(selected) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown provider", Details: req.Provider})
		return
	}

	resp := SyncResponse{Results: make(map[string]catalog.Result)}
	for _, adapter := range selected {
		result, err := h.engine.SyncProvider(c.Request.Context(), adapter)
		if err != nil {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}
			resp.Errors[adapter.Name()] = err.Error()
			continue
		}
		resp.Results[adapter.Name()] = result
	}

	recordAudit(c, h.auditor, "model.sync", "catalog", req.Provider, map[string]interface{}{
		"results": resp.Results,
	})

	status := http.StatusOK
	if len(resp.Results) == 0 {
		status = http.StatusBadGateway
	}
	c.JSON(status, resp)
}

// MigrateStatus handles POST /admin/models/migrate-status, converting
// legacy boolean activation flags to the structured status field. Safe to
// run repeatedly.
func (h *ModelHandler) MigrateStatus(c *gin.Context) {
	result, err := h.engine.MigrateLegacyStatus(c.Request.Context())
	if err != nil {
		log.Printf("status migration failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Status migration failed", Details: err.Error()})
		return
	}

	recordAudit(c, h.auditor, "model.migrate-status", "catalog", "", map[string]interface{}{
		"examined": result.Examined,
		"migrated": result.Migrated,
		"failed":   result.Failed,
	})
	c.JSON(http.StatusOK, result)
}
