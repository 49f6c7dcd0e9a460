package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContactRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ContactController(router)
	return router
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestContactMissingFields(t *testing.T) {
	router := newContactRouter()

	for _, body := range []string{
		`{}`,
		`{"name":"Ann"}`,
		`{"name":"Ann","email":"ann@example.com"}`,
		`{"name":"  ","email":"ann@example.com","inquiry":"hello"}`,
		`not json`,
	} {
		w := postContact(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestContactInvalidEmail(t *testing.T) {
	router := newContactRouter()

	w := postContact(router, `{"name":"Ann","email":"not-an-email","inquiry":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email")
}

func TestContactSMTPNotConfigured(t *testing.T) {
	t.Setenv("RENDER", "true")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")
	router := newContactRouter()

	w := postContact(router, `{"name":"Ann","email":"ann@example.com","inquiry":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
