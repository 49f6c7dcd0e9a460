package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"houdeapp/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", SessionMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet("userId")})
	})
	return router
}

func TestSessionMiddlewareNoCookie(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddlewareValidCookie(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := newTestRouter()

	token, err := services.CreateSessionToken("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestSessionMiddlewareBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddlewareTokenFromOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "other-secret")
	token, err := services.CreateSessionToken("user-42")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
