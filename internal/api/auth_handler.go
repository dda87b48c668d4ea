package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/authgw"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/middleware"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// AuthHandler handles the authentication endpoints. Responses use the
// {success, data|error} envelope the web client expects.
type AuthHandler struct {
	gateway *authgw.Gateway
	users   core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gateway *authgw.Gateway, users core.UserService) *AuthHandler {
	return &AuthHandler{gateway: gateway, users: users}
}

func authOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, AuthResponse{Success: true, Data: data})
}

func authFail(c *gin.Context, status int, message string) {
	c.JSON(status, AuthResponse{Success: false, Error: message})
}

// mapAuthErrorToStatus renders a normalized auth failure.
func mapAuthErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authgw.ErrEmailExists):
		authFail(c, http.StatusConflict, authgw.ErrEmailExists.Error())
	case errors.Is(err, authgw.ErrInvalidCredentials):
		authFail(c, http.StatusUnauthorized, authgw.ErrInvalidCredentials.Error())
	case errors.Is(err, authgw.ErrUserDisabled):
		authFail(c, http.StatusForbidden, authgw.ErrUserDisabled.Error())
	case errors.Is(err, authgw.ErrInvalidToken):
		authFail(c, http.StatusUnauthorized, authgw.ErrInvalidToken.Error())
	case errors.Is(err, core.ErrUserNotFound):
		authFail(c, http.StatusNotFound, core.ErrUserNotFound.Error())
	default:
		log.Printf("auth internal error: %v", err)
		authFail(c, http.StatusInternalServerError, "An unexpected internal server error occurred.")
	}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authFail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.gateway.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	authOK(c, http.StatusCreated, user)
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authFail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	session, err := h.gateway.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	authOK(c, http.StatusOK, session)
}

// Session handles POST /auth/session. The client sends an ID token obtained
// from a federated popup sign-in; the backend verifies it and makes sure the
// profile document exists.
func (h *AuthHandler) Session(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authFail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, created, err := h.gateway.SessionFromToken(c.Request.Context(), req.IDToken)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	authOK(c, status, user)
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		authFail(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.gateway.SignOut(c.Request.Context(), userID); err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	authOK(c, http.StatusOK, gin.H{"message": "Signed out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		authFail(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	authOK(c, http.StatusOK, user)
}
