package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// keyInvalidator drops a cached provider key after a config change. The
// generation dispatcher implements it.
type keyInvalidator interface {
	InvalidateKey(provider string)
}

// ProviderConfigHandler handles provider API key configuration: the admin
// management endpoints and the read endpoint generation clients use.
type ProviderConfigHandler struct {
	configs     core.ProviderConfigService
	invalidator keyInvalidator
	auditor     core.AuditService
}

// NewProviderConfigHandler creates a new ProviderConfigHandler.
func NewProviderConfigHandler(configs core.ProviderConfigService, invalidator keyInvalidator, auditor core.AuditService) *ProviderConfigHandler {
	return &ProviderConfigHandler{configs: configs, invalidator: invalidator, auditor: auditor}
}

// mapProviderConfigErrorToStatus maps provider config errors to HTTP responses.
func mapProviderConfigErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUnknownProvider):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUnknownProvider.Error(), Details: err.Error()})
	default:
		log.Printf("provider config handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GenerationConfig handles GET /generation/config. Authenticated clients
// receive both provider settings, keys included, so the browser can call
// providers directly.
func (h *ProviderConfigHandler) GenerationConfig(c *gin.Context) {
	openRouter, err := h.configs.Get(c.Request.Context(), models.ProviderOpenRouter)
	if err != nil {
		mapProviderConfigErrorToStatus(c, err)
		return
	}
	fal, err := h.configs.Get(c.Request.Context(), models.ProviderFalAI)
	if err != nil {
		mapProviderConfigErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerationConfigResponse{
		OpenRouter: ProviderConfigView{APIKey: openRouter.APIKey, Enabled: openRouter.Enabled},
		Fal:        ProviderConfigView{APIKey: fal.APIKey, Enabled: fal.Enabled},
	})
}

// GetConfig handles GET /admin/providers/:provider/config
func (h *ProviderConfigHandler) GetConfig(c *gin.Context) {
	provider := c.Param("provider")

	cfg, err := h.configs.Get(c.Request.Context(), provider)
	if err != nil {
		mapProviderConfigErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig handles PUT /admin/providers/:provider/config. A successful
// update drops the dispatcher's cached key so the change takes effect on the
// next generation call.
func (h *ProviderConfigHandler) UpdateConfig(c *gin.Context) {
	provider := c.Param("provider")

	var req models.UpdateProviderConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	cfg, err := h.configs.Update(c.Request.Context(), provider, req)
	if err != nil {
		mapProviderConfigErrorToStatus(c, err)
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateKey(provider)
	}

	// The key itself stays out of the audit trail.
	details := map[string]interface{}{"enabled": cfg.Enabled}
	if req.APIKey != nil {
		details["keyChanged"] = true
	}
	recordAudit(c, h.auditor, "provider.config.update", "provider", provider, details)

	c.JSON(http.StatusOK, cfg)
}
