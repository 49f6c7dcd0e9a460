package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", func(c *gin.Context) { Login(c, nil) })

	// Only missing fields are a 400; a malformed email goes through the
	// normal lookup and reads as invalid credentials.
	for _, body := range []string{
		`{}`,
		`{"email":"a@b.com"}`,
		`{"password":"secret"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Empty(t, w.Result().Cookies(), "no cookie may be set on failure")
	}
}

func TestRegisterValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/register", func(c *gin.Context) { Register(c, nil) })

	for _, body := range []string{
		`{}`,
		`{"name":"Ann","email":"bad email","password":"secret"}`,
		`{"name":"Ann","password":"secret"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}
