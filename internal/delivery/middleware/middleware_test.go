package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "keeps a well-formed client id",
			header: "req-42",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "req-42", id)
			},
		},
		{
			name:   "replaces a malformed client id",
			header: "bad id\nwith newline",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces a client id containing a space",
			header: "req 42",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces an over-long client id",
			header: strings.Repeat("a", 129),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name: "generates an id when none is sent",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInCtx string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenInCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			tt.expectID(t, id)
			assert.Equal(t, id, seenInCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	run := func(debug bool, status int) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/donations?status=active", nil), httptest.NewRecorder())
		handler := NewLoggerMiddleware(newBufferLogger(&buf), cfg).Handle(func(c echo.Context) error {
			return c.NoContent(status)
		})
		require.NoError(t, handler(c))

		return buf.String()
	}

	assert.Empty(t, run(false, http.StatusOK))
	assert.Contains(t, run(true, http.StatusOK), `"status":200`)

	out := run(false, http.StatusConflict)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"query":"status=active"`)

	assert.True(t, strings.Contains(run(false, http.StatusInternalServerError), `"level":"ERROR"`))
}

func TestLoggerMiddleware_ResolvesHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	handler := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{}).Handle(func(echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
}
