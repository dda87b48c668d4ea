package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys populated by VerifyToken for downstream handlers.
const (
	ContextUserIDKey      = "userID"
	ContextUserEmailKey   = "userEmail"
	ContextDisplayNameKey = "userDisplayName"
)

// ErrorResponse mirrors the API error envelope. Defined locally to avoid an
// import cycle with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware verifies Firebase ID tokens on incoming requests.
type AuthMiddleware struct {
	authClient *auth.Client
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance. The auth client is
// a hard dependency; authenticated routes cannot function without it.
func NewAuthMiddleware(authClient *auth.Client, logger *zap.Logger) *AuthMiddleware {
	if authClient == nil {
		panic("AuthMiddleware requires an initialized Firebase Auth client")
	}
	return &AuthMiddleware{authClient: authClient, logger: logger}
}

// VerifyToken checks the Authorization header for a valid Firebase ID token
// and stores the caller's identity in the Gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		token, err := m.authClient.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			// Detail stays server-side; the client gets a generic message.
			m.logger.Warn("rejected ID token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set(ContextUserIDKey, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ContextUserEmailKey, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(ContextDisplayNameKey, name)
		}

		c.Next()
	}
}
