package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/authgw"
	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// UserHandler handles the self-service profile endpoints and the admin user
// management endpoints.
type UserHandler struct {
	users   core.UserService
	gateway *authgw.Gateway
	auditor core.AuditService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users core.UserService, gateway *authgw.Gateway, auditor core.AuditService) *UserHandler {
	return &UserHandler{users: users, gateway: gateway, auditor: auditor}
}

// mapUserErrorToStatus maps errors from core.UserService to HTTP responses.
func mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	case errors.Is(err, core.ErrUserExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrUserExists.Error()})
	case errors.Is(err, core.ErrUnknownTier):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrUnknownTier.Error(), Details: err.Error()})
	case errors.Is(err, authgw.ErrEmailExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: authgw.ErrEmailExists.Error()})
	default:
		log.Printf("user handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /admin/users. An optional q parameter filters by
// email or display name.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, console.FilterUsers(users, c.Query("q")))
}

// GetUser handles GET /admin/users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /admin/users. The gateway provisions the auth
// account and the profile document together.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.gateway.CreateAccount(c.Request.Context(), req)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "user.create", "user", user.ID, map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /admin/users/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), userID, req)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "user.update", "user", userID, nil)
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:userId. Removes both the auth
// account and the profile document.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}
	if !requireConfirm(c) {
		return
	}

	if err := h.gateway.DeleteAccount(c.Request.Context(), userID); err != nil {
		mapUserErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "user.delete", "user", userID, nil)
	c.Status(http.StatusNoContent)
}
