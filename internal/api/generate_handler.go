package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/generate"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// GenerateHandler handles POST /generate, the server-side generation
// dispatch path.
type GenerateHandler struct {
	dispatcher *generate.Dispatcher
	users      core.UserService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(dispatcher *generate.Dispatcher, users core.UserService) *GenerateHandler {
	return &GenerateHandler{dispatcher: dispatcher, users: users}
}

// mapGenerateErrorToStatus maps dispatch errors to HTTP responses. Upstream
// provider messages pass through verbatim.
func mapGenerateErrorToStatus(c *gin.Context, err error) {
	var providerErr *generate.ProviderError

	switch {
	case errors.Is(err, generate.ErrModelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: generate.ErrModelNotFound.Error()})
	case errors.Is(err, generate.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: generate.ErrNotConfigured.Error(), Details: err.Error()})
	case errors.Is(err, generate.ErrUnsupportedModelType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: generate.ErrUnsupportedModelType.Error(), Details: err.Error()})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Provider request failed", Details: providerErr.Message})
	default:
		log.Printf("generate handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// Generate handles POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := h.dispatcher.Generate(c.Request.Context(), generate.Request{
		Prompt:      req.Prompt,
		ModelID:     req.ModelID,
		Temperature: req.Temperature,
	})
	if err != nil {
		mapGenerateErrorToStatus(c, err)
		return
	}

	// Usage accounting must not fail a generation that already succeeded.
	if err := h.users.RecordAPICall(c.Request.Context(), userID); err != nil {
		log.Printf("failed to record api call for user %s: %v", userID, err)
	}

	c.JSON(http.StatusOK, result)
}
