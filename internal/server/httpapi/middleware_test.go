package httpapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodOptions, "/api/vote", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")

	w = do(r, http.MethodGet, "/health", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelDebug)

	r := gin.New()
	r.Use(RequestID(), Recovery(l))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelDebug)

	r := gin.New()
	r.Use(RequestID(), WithLogging(l))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	do(r, http.MethodGet, "/x", "")
	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "status=418")
}
