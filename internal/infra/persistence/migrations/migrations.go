// Package migrations owns the database schema. The embedded sql/ directory uses golang-migrate's
// {version}_{title}.up.sql / .down.sql naming and is applied with migrate/v4 over the pgx driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var files embed.FS

const sourceName = "iofs"

// Source returns the embedded migrations as a migrate source driver.
func Source() (source.Driver, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return src, nil
}

// schema is the subset of *migrate.Migrate the Migrator drives.
type schema interface {
	Up() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// Migrator applies the embedded schema to one database.
type Migrator struct {
	schema schema
	stop   chan bool
	logger *slog.Logger
}

// New prepares a Migrator on db. Close releases the connection it holds and closes db with it,
// so callers close it only once they are done with db.
func New(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open migration driver")
	}

	m, err := migrate.NewWithInstance(sourceName, src, "pgx5", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}
	m.Log = migrateLogger{logger: logger}

	return &Migrator{schema: m, stop: m.GracefulStop, logger: logger}, nil
}

// Up applies every pending migration and returns the resulting schema version.
// Cancelling ctx stops after the migration in flight.
func (mg *Migrator) Up(ctx context.Context) (uint, error) {
	if mg.stop != nil {
		stopAfter := context.AfterFunc(ctx, func() {
			select {
			case mg.stop <- true:
			default:
			}
		})
		defer stopAfter()
	}

	err := mg.schema.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		mg.logger.Info("Schema already up to date")
	case err != nil:
		return 0, errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := mg.schema.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read schema version")
	}
	if dirty {
		return version, errors.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}

// Close releases the source and the database.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.schema.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "failed to close migration source")
	}

	return errors.Wrap(dbErr, "failed to close migration database")
}

// migrateLogger routes migrate's printf output into slog.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
