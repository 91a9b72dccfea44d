package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodbridge/config"
	logs "foodbridge/internal/infra/log"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends GORM output to slog. Queries are logged through the request logger when the
// context carries one, so every statement shows the request id of the call that issued it.
type queryLogger struct {
	base    *slog.Logger
	level   gormlogger.LogLevel
	slowSQL time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{base: base, level: level, slowSQL: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < enabledAt {
		return
	}
	logs.FromContext(ctx, l.base).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode everything else.
// A missing row is not an error here. A unique violation is reported as a warning
// because duplicate e-mails and double claims surface to callers as 409s.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Warn && isUniqueConstraintViolation(err):
		level, msg = slog.LevelWarn, "Query hit unique constraint"
		extra = append(extra, slog.String("error", err.Error()))
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "Query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case l.slowSQL > 0 && elapsed > l.slowSQL && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "Slow query"
		extra = append(extra, slog.Duration("threshold", l.slowSQL))
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "Query"
	default:
		return
	}

	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)
	logs.FromContext(ctx, l.base).LogAttrs(ctx, level, msg, attrs...)
}
