package migrations

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ListsEmbeddedVersions(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	r, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()
	body, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, "init", identifier)
	assert.Contains(t, string(body), "donations_claimant_matches_status")
	assert.Contains(t, string(body), "BETWEEN 1 AND 48")

	down, _, err := src.ReadDown(next)
	require.NoError(t, err)
	down.Close()
}

type fakeSchema struct {
	upErr      error
	version    uint
	dirty      bool
	versionErr error
	upCalls    int
}

func (f *fakeSchema) Up() error {
	f.upCalls++

	return f.upErr
}

func (f *fakeSchema) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}

func (f *fakeSchema) Close() (error, error) {
	return nil, nil
}

func TestMigrator_Up(t *testing.T) {
	tests := []struct {
		name        string
		schema      *fakeSchema
		wantVersion uint
		wantErr     string
	}{
		{
			name:        "applies pending migrations",
			schema:      &fakeSchema{version: 2},
			wantVersion: 2,
		},
		{
			name:        "nothing to apply",
			schema:      &fakeSchema{upErr: migrate.ErrNoChange, version: 2},
			wantVersion: 2,
		},
		{
			name:   "empty database without migrations",
			schema: &fakeSchema{upErr: migrate.ErrNoChange, versionErr: migrate.ErrNilVersion},
		},
		{
			name:    "failed migration",
			schema:  &fakeSchema{upErr: errors.New("syntax error at or near CREAT")},
			wantErr: "failed to apply migrations: syntax error",
		},
		{
			name:        "dirty version",
			schema:      &fakeSchema{version: 1, dirty: true},
			wantVersion: 1,
			wantErr:     "schema version 1 is dirty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mg := &Migrator{schema: tt.schema, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

			version, err := mg.Up(context.Background())

			assert.Equal(t, 1, tt.schema.upCalls)
			assert.Equal(t, tt.wantVersion, version)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMigrator_CancelRequestsGracefulStop(t *testing.T) {
	stop := make(chan bool, 1)
	ctx, cancel := context.WithCancel(context.Background())
	schema := &fakeSchema{version: 1}
	mg := &Migrator{schema: schema, stop: stop, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cancel()
	_, err := mg.Up(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(stop) == 1 }, time.Second, 10*time.Millisecond)
}

func TestMigrateLogger(t *testing.T) {
	var buf bytes.Buffer
	l := migrateLogger{logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Printf("1/u init (%v)\n", "12ms")

	assert.True(t, l.Verbose())
	assert.Contains(t, buf.String(), `"msg":"1/u init (12ms)"`)
	assert.Contains(t, buf.String(), `"component":"migrate"`)
}
