package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/lifecycle"
	"foodbridge/internal/infra/metrics"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the dependencies of the database client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary and replica pool described by config. The pool is pinged on start,
// watched for connection waits while running, and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres pool")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDB(sqlDB); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			w := &poolWatcher{logger: params.Logger, db: sqlDB, last: sqlDB.Stats()}
			go w.run(watchCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatching()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher logs when requests had to wait for a free connection since the previous check.
type poolWatcher struct {
	logger *slog.Logger
	db     *sql.DB
	last   sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx, w.db.Stats())
		}
	}
}

func (w *poolWatcher) check(ctx context.Context, now sql.DBStats) {
	waits := now.WaitCount - w.last.WaitCount
	waited := now.WaitDuration - w.last.WaitDuration
	w.last = now
	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", now.OpenConnections),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}
