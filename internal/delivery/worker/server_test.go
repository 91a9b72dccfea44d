package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbridge/config"
	"foodbridge/internal/delivery/worker/handler"
	"foodbridge/internal/infra/metrics"
	mockUsecase "foodbridge/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) http.Handler {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(cfg),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:         cfg,
			Logger:         logger,
			NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
		}),
	})
}

func TestWorkerRoutes(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	// Malformed push bodies are rejected before any dispatch.
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`"nope"`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `foodbridge_http_requests_total{method="POST",route="/push",status="400"} 1`)
}
