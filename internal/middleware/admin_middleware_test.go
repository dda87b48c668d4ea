package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubProfileLoader struct {
	profiles map[string]*models.User
	err      error
}

func (s *stubProfileLoader) Get(ctx context.Context, userID string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.profiles[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func adminTestRouter(loader *stubProfileLoader, userID string) *gin.Engine {
	mw := NewAdminMiddleware(loader, zap.NewNop())

	router := gin.New()
	router.GET("/admin",
		func(c *gin.Context) {
			if userID != "" {
				c.Set(ContextUserIDKey, userID)
			}
			c.Next()
		},
		mw.RequireAdmin(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func getAdmin(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_NoSession(t *testing.T) {
	loader := &stubProfileLoader{profiles: map[string]*models.User{}}
	router := adminTestRouter(loader, "")

	w := getAdmin(router)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	loader := &stubProfileLoader{profiles: map[string]*models.User{
		"uid-1": {ID: "uid-1", Role: models.RoleUser},
	}}
	router := adminTestRouter(loader, "uid-1")

	w := getAdmin(router)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	loader := &stubProfileLoader{profiles: map[string]*models.User{
		"uid-1": {ID: "uid-1", Role: models.RoleAdmin},
	}}
	router := adminTestRouter(loader, "uid-1")

	w := getAdmin(router)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_LegacyAdminFlag(t *testing.T) {
	loader := &stubProfileLoader{profiles: map[string]*models.User{
		"uid-1": {ID: "uid-1", Role: models.RoleUser, IsAdmin: true},
	}}
	router := adminTestRouter(loader, "uid-1")

	w := getAdmin(router)
	assert.Equal(t, http.StatusOK, w.Code,
		"profiles written before the role field must keep their access")
}

func TestRequireAdmin_ProfileLookupFailure(t *testing.T) {
	loader := &stubProfileLoader{err: errors.New("store down")}
	router := adminTestRouter(loader, "uid-1")

	w := getAdmin(router)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
