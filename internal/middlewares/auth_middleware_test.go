package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
	authService := services.NewAuthService(repository.NewUserRepository(db), cfg)

	r := gin.New()
	r.GET("/private", AuthMiddleware(authService), func(ctx *gin.Context) {
		userID, ok := CurrentUserID(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return r, authService
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, w.Body.String())
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("x-auth-token", "broken-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, w.Body.String())
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, authService := setupAuthTest(t)

	token, err := authService.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
