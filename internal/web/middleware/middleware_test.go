package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movierecommender/internal/web/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.SessionID(c))
	})
	return r
}

func TestSession_AssignsNewID(t *testing.T) {
	r := setupSessionRouter()

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Body.String()
	assert.NoError(t, uuid.Validate(id))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	r := setupSessionRouter()
	id := uuid.New().String()

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestSession_ReplacesGarbageCookie(t *testing.T) {
	r := setupSessionRouter()

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "not-a-uuid", w.Body.String())
	assert.NoError(t, uuid.Validate(w.Body.String()))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.GET("/missing", func(c *gin.Context) {
		c.String(http.StatusNotFound, middleware.RequestID(c))
	})

	t.Run("GeneratesID", func(t *testing.T) {
		buf.Reset()
		req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NoError(t, uuid.Validate(id))
		assert.Equal(t, id, w.Body.String())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, "/missing", entry["path"])
		assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	})

	t.Run("KeepsUpstreamID", func(t *testing.T) {
		buf.Reset()
		req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-123", w.Header().Get(middleware.RequestIDHeader))
	})
}
