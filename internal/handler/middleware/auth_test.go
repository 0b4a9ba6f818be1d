//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/handler/middleware"
	"deal-marketplace/internal/pkg/jwt"
	"deal-marketplace/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-0123456789"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	auth := middleware.NewAuthMiddleware(jwt.NewService(testSecret, time.Hour))
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter(t)
	id := uuid.New()

	valid, err := jwt.NewService(testSecret, time.Hour).GenerateToken(id, user.RoleOwner)
	require.NoError(t, err)
	foreign, err := jwt.NewService("some-other-secret-0123456789", time.Hour).GenerateToken(id, user.RoleAdmin)
	require.NoError(t, err)
	expired, err := jwt.NewService(testSecret, -time.Minute).GenerateToken(id, user.RoleOwner)
	require.NoError(t, err)
	badRole, err := jwt.NewService(testSecret, time.Hour).GenerateToken(id, user.Role("superuser"))
	require.NoError(t, err)

	t.Run("valid token exposes the actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, valid)

		var got struct {
			ID   uuid.UUID `json:"id"`
			Role string    `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "owner", got.Role)
	})

	rejected := []struct {
		name  string
		token string
		msg   string
	}{
		{"missing token", "", "Access token required"},
		{"token signed with another key", foreign, "Invalid or expired token"},
		{"expired token", expired, "Invalid or expired token"},
		{"unknown role claim", badRole, "Invalid or expired token"},
		{"garbage", "not.a.jwt", "Invalid or expired token"},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tc.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.msg)
		})
	}
}

func TestGetActor_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)

	_, ok := middleware.GetActor(c)

	assert.False(t, ok)
}
