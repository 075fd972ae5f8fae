package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-fieldops/internal/middleware"
	"go-fieldops/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Minute).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	assert.NoError(t, err)
	return token
}

// Wired the way BuildApp mounts things: ContextLogger on the engine,
// AuthMiddleware on the group. The actor id must still reach the request
// context that services see.
func TestAuthMiddleware_UserIDReachesRequestContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	userID := uuid.New().String()

	router := gin.New()
	router.Use(middleware.ContextLogger(zap.NewNop()))

	var seenByService string
	group := router.Group("/api/v1")
	group.Use(middleware.AuthMiddleware())
	group.GET("/whoami", func(c *gin.Context) {
		seenByService = contextutil.GetUserID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "operator"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seenByService)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ContextLogger(zap.NewNop()))

	group := router.Group("/api/v1")
	group.Use(middleware.AuthMiddleware())
	group.GET("/whoami", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware_GatesByRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("manager", "admin"))
	group.GET("/payroll", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed role", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New().String(), "manager"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden role", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New().String(), "operator"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
