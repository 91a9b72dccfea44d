package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordTransition(t *testing.T) {
	m := New(&config.Config{})

	m.RecordTransition("claim", service.OutcomeSuccess)
	m.RecordTransition("claim", service.OutcomeConflict)
	m.RecordTransition("claim", service.OutcomeConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("claim", service.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("claim", service.OutcomeConflict)))
}

func TestMetrics_MiddlewareUsesRouteTemplate(t *testing.T) {
	m := New(&config.Config{})
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/donations/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET(m.Path(), echo.WrapHandler(m.Handler()))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/donations/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/donations/:id", "204")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "foodbridge_http_requests_total"))
}

func TestMetrics_RegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := New(&config.Config{})
	require.NoError(t, m.RegisterDB(db))
	assert.Error(t, m.RegisterDB(db), "the same pool must not be registered twice")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "go_sql_max_open_connections")
}
