package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Check(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		last:   sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond},
	}

	w.check(context.Background(), sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond})
	assert.Empty(t, buf.String())

	w.check(context.Background(), sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond, MaxOpenConnections: 20})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	buf.Reset()

	w.check(context.Background(), sql.DBStats{WaitCount: 7, WaitDuration: 120 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avg_wait=100ms")
}
