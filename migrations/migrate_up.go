package migrations

import (
	"context"
	"embed"
	"log/slog"

	"tracking-number-generator/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const migrationsTable = "schema_migrations_tracking"

//go:embed *.sql
var migrationFiles embed.FS

// RunMigrationsUp applies all pending up migrations using the embedded files.
func RunMigrationsUp(ctx context.Context, pool *pgxpool.Pool) error {
	sourceDriver, err := iofs.New(migrationFiles, ".")
	if err != nil {
		return errs.Wrap(err, "failed to create iofs driver")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		_ = sqlDB.Close()
	}()

	dbDriver, err := pgx.WithInstance(sqlDB, &pgx.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return errs.Wrap(err, "failed to create pgx driver")
	}
	defer func() {
		_ = dbDriver.Close()
	}()

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "pgx5", dbDriver)
	if err != nil {
		return errs.Wrap(err, "failed to create migrate instance")
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return errs.Wrap(err, "failed to get current version")
	}
	if dirty {
		return errs.Newf("migration version %d is dirty, fix it before proceeding", version)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errs.Wrap(err, "migration failed")
	}

	newVersion, _, _ := m.Version()
	slog.InfoContext(ctx, "database migrations applied", "from_version", version, "to_version", newVersion)
	return nil
}
