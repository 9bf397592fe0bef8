package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"banarts/database"
	"banarts/internal/auth"
	"banarts/internal/models"
	"banarts/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("middleware-test-secret", time.Hour)
}

func tokenFor(t *testing.T, tokens *auth.TokenManager, id uint, role models.UserRole) string {
	t.Helper()
	token, err := tokens.GenerateToken(&models.User{ID: id, Email: "someone@banarts.com", Role: role})
	require.NoError(t, err)
	return token
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens()
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{
			"id":    GetUserID(c),
			"role":  role,
			"email": c.GetString(contextkeys.EmailKey),
		})
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		w := serve(r, http.MethodGet, "/me", tokenFor(t, other, 1, models.UserRoleUser))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", tokenFor(t, tokens, 7, models.UserRoleUser))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"role":"user","email":"someone@banarts.com"}`, w.Body.String())
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := newTokens()
	r := gin.New()
	r.DELETE("/things/:id", AuthMiddleware(tokens), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/open", RequireRoles(models.UserRoleUser), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodDelete, "/things/1", tokenFor(t, tokens, 2, models.UserRoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodDelete, "/things/1", tokenFor(t, tokens, 1, models.UserRoleAdmin))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// no AuthMiddleware in front means no role on the context
	w = serve(r, http.MethodGet, "/open", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermission(t *testing.T) {
	tokens := newTokens()
	r := gin.New()
	r.GET("/dashboard", AuthMiddleware(tokens), RequirePermission(auth.PermDashboardView), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.POST("/things", AuthMiddleware(tokens), RequirePermission(auth.PermContentWrite), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	user := tokenFor(t, tokens, 2, models.UserRoleUser)
	admin := tokenFor(t, tokens, 1, models.UserRoleAdmin)

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/dashboard", user).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/dashboard", admin).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/things", user).Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimitMiddleware(NewRateLimiter(1, 2)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/login", "").Code)
}

func TestDBMiddleware(t *testing.T) {
	db, err := database.Open("sqlite", "file:middleware_db?mode=memory&cache=shared")
	require.NoError(t, err)
	r := gin.New()
	r.Use(DBMiddleware(db))
	r.GET("/", func(c *gin.Context) {
		v, ok := c.Get(string(contextkeys.DBContextKey))
		require.True(t, ok)
		_, isDB := v.(*gorm.DB)
		assert.True(t, isDB)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://banarts.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://banarts.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://banarts.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
