package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"foodbridge/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestQueryLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `UPDATE "donations" SET "status"='claimed'`, 0 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "fast query is quiet outside debug", want: ""},
		{name: "debug logs every query", debug: true, want: "level=DEBUG msg=Query"},
		{name: "record not found is not an error", err: gorm.ErrRecordNotFound, want: ""},
		{name: "unique violation is a warning", err: &pgconn.PgError{Code: "23505"}, want: "level=WARN msg=\"Query hit unique constraint\""},
		{name: "other failures are errors", err: errors.New("connection reset"), want: "level=ERROR msg=\"Query failed\""},
		{name: "slow query", elapsed: time.Second, want: "level=WARN msg=\"Slow query\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newQueryLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "donations")
		})
	}
}
