package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/todos", http.StatusOK, 15*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/todos", http.StatusOK, 5*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/todos", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/todos", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("POST", "/todos", "400")))
}

func TestCollector_RecordAuthAttempt(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthAttempt("login", false)
	c.RecordAuthAttempt("login", false)
	c.RecordAuthAttempt("register", true)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.authAttempts.WithLabelValues("login", "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.authAttempts.WithLabelValues("register", "success")))
}

func TestMiddleware_RecordsRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	e := echo.New()
	e.Use(Middleware(c))
	e.GET("/todos/:id", func(ctx echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "todo not found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos/abc", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/todos/:id", "404")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordAuthAttempt("login", true)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dayboard_auth_attempts_total"))
}
