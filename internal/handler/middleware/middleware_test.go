//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"breakfast-deals/internal/handler/httperr"
	"breakfast-deals/internal/handler/middleware"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(discard))
	engine.Use(middleware.LoggingMiddleware(discard))
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	engine := newEngine()
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})

		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-123"})
		assert.Equal(t, "req-123", seen)
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/public", func(c *gin.Context) {
		httperr.Record(c, http.StatusTeapot, errors.New("teapot"), "short and stout", nil)
	})
	engine.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden detail"))
	})
	engine.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, nil, "Already taken", nil)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/public", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusTeapot, "short and stout")

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/private", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "hidden detail")

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/aborted", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Already taken")
}

func TestRecordedErrorKeepsMeta(t *testing.T) {
	engine := newEngine()
	var recorded *gin.Error
	engine.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("slot full"), "Time slot is fully booked", nil)
		recorded = c.Errors.Last()
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/conflict", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "fully booked")

	require.NotNil(t, recorded)
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok, "meta should carry the response body")
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.EqualError(t, recorded.Err, "slot full")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}, discard))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil,
		map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t,
		strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")),
		strings.ToLower(middleware.RequestIDHeader),
	)
}

func TestNewLogger(t *testing.T) {
	l := middleware.NewLogger(config.LogConfig{Level: "debug", TimeZone: "UTC", TimeFormat: "2006-01-02"})
	require.NotNil(t, l.GetSlogLogger())
	assert.True(t, l.GetSlogLogger().Enabled(t.Context(), slog.LevelDebug))
}
