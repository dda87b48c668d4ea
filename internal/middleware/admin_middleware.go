package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const adminLookupTimeout = 5 * time.Second

// profileLoader is the slice of the user service the admin gate needs.
type profileLoader interface {
	Get(ctx context.Context, userID string) (*models.User, error)
}

// AdminMiddleware restricts routes to users whose stored profile grants
// console access. The check reads the profile document rather than trusting
// a token claim, so revoking admin access takes effect on the next request.
type AdminMiddleware struct {
	users  profileLoader
	logger *zap.Logger
}

// NewAdminMiddleware creates a new AdminMiddleware instance.
func NewAdminMiddleware(users profileLoader, logger *zap.Logger) *AdminMiddleware {
	return &AdminMiddleware{users: users, logger: logger}
}

// RequireAdmin rejects the request unless the authenticated caller's profile
// has the admin role. It must run after VerifyToken.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserIDKey)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), adminLookupTimeout)
		defer cancel()

		user, err := m.users.Get(ctx, userID)
		if err != nil {
			m.logger.Warn("admin check failed to load profile",
				zap.String("userId", userID),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "User profile not found"})
			return
		}
		if !user.HasAdminAccess() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}

		c.Next()
	}
}
