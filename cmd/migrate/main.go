// Command migrate applies pending schema migrations and creates the bootstrap admin account.
package main

import (
	"context"
	"log/slog"
	"os"

	"foodbridge/config"
	"foodbridge/internal/domain/lifecycle"
	"foodbridge/internal/infra/auth"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/infra/persistence/migrations"
	"foodbridge/internal/infra/persistence/postgres"
	"foodbridge/internal/usecase"
	"foodbridge/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
		),
		fx.Invoke(registerMigration),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs after the database hook has verified the connection.
func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrate(ctx, params)
		},
	})
}

func migrate(ctx context.Context, params migrateParams) (err error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	migrator, err := migrations.New(sqlDB, params.Logger)
	if err != nil {
		return err
	}
	// Closing the migrator closes sqlDB too, so it waits for the bootstrap admin.
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	version, err := migrator.Up(ctx)
	if err != nil {
		return err
	}
	params.Logger.Info("Schema up to date", slog.Uint64("version", uint64(version)))

	bootstrap := params.Config.Bootstrap
	if bootstrap == nil || bootstrap.AdminEmail == "" || bootstrap.AdminPassword == "" {
		params.Logger.Info("No bootstrap admin configured")

		return nil
	}

	created, err := params.AuthUC.EnsureAdmin(ctx, usecase.BootstrapAdminInput{
		Email:    bootstrap.AdminEmail,
		Password: bootstrap.AdminPassword,
		Name:     bootstrap.AdminName,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}
	params.Logger.Info("Bootstrap admin checked",
		slog.String("email", bootstrap.AdminEmail),
		slog.Bool("created", created),
	)

	return nil
}
