package main

import (
	"context"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	root "bangsafe"
	"bangsafe/internal/config"
	"bangsafe/pkg/logger"
	"bangsafe/pkg/storage"
	"bangsafe/pkg/storage/jsonfile"
	"bangsafe/pkg/storage/postgres"
	"bangsafe/pkg/storage/sqlite"
)

// migrator is implemented by the SQL backends.
type migrator interface {
	Migrate(ctx context.Context, migrations fs.FS) error
}

// openStorage opens the report storage selected by cfg.Storage.Driver.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return jsonfile.New(ctx, jsonfile.Options{Path: cfg.Storage.File.Path})
	case config.DriverSQLite:
		return sqlite.New(ctx, sqlite.Options{DSN: cfg.Storage.SQLite.DSN})
	case config.DriverPostgres:
		return postgres.New(ctx, postgres.Options{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// migrateStorage applies the embedded migrations of the configured driver.
// Backends without a schema are left untouched.
func migrateStorage(ctx context.Context, cfg *config.Config, strg storage.Storage) error {
	m, ok := strg.(migrator)
	if !ok {
		logger.Info(ctx, "storage has no migrations", zap.String("driver", cfg.Storage.Driver))

		return nil
	}

	migrations, err := root.MigrationsFor(cfg.Storage.Driver)
	if err != nil {
		return err
	}
	if err = m.Migrate(ctx, migrations); err != nil {
		return fmt.Errorf("could not migrate %s storage: %w", cfg.Storage.Driver, err)
	}

	return nil
}

// closeStorage closes strg, logging instead of failing.
func closeStorage(ctx context.Context, strg storage.Storage) {
	logger.Info(ctx, "closing storage...")
	if err := strg.Close(); err != nil {
		logger.Warn(ctx, "could not close storage", zap.Error(err))
	}
}
