package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/proxis-hn/proxis/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	cfg := &config.Config{}
	assert.False(t, Enabled(cfg))

	cfg.Telemetry.Enabled = true
	assert.False(t, Enabled(cfg), "an endpoint is required too")

	cfg.Telemetry.OtlpEndpoint = "localhost:4317"
	assert.True(t, Enabled(cfg))
}

func TestSetupTracing_Disabled(t *testing.T) {
	tp, err := SetupTracing(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestGinMiddleware_SkipsNonAPIPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware("test"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/health", "/api/v1/ping"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestTraceIDMiddleware_NoSpanNoHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/api/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Trace-Id"))
}
