package project

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"houdeapp/middleware"
	"houdeapp/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectValidation(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/projects", middleware.SessionMiddleware(), func(c *gin.Context) {
		CreateProject(c, nil)
	})

	token, err := services.CreateSessionToken("user-1")
	require.NoError(t, err)

	for _, body := range []string{
		`{}`,
		`{"title":"Catalog"}`,
		`{"description":"Bag catalog site"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.JSONEq(t, `{"error": "Title and description are required."}`, w.Body.String())
	}
}
