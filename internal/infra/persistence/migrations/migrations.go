// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

// Dir is the migration directory inside FS.
const Dir = "sql"

const runTimeout = time.Minute

// Runner applies embedded migrations to a PostgreSQL database.
type Runner struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRunner configures goose for the embedded PostgreSQL migrations.
func NewRunner(db *sql.DB, logger *slog.Logger) (*Runner, error) {
	if db == nil {
		return nil, errors.New("nil database provided")
	}
	if logger == nil {
		logger = slog.Default()
	}

	goose.SetBaseFS(FS)
	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return nil, errors.Wrap(err, "configure goose")
	}

	return &Runner{db: db, logger: logger}, nil
}

// Up applies all pending migrations.
func (r *Runner) Up(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	r.logger.Info("Applying migrations")
	if err := goose.UpContext(runCtx, r.db, Dir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	r.logger.Info("Migrations applied")

	return nil
}

// Down rolls back the latest migration, or down to targetVersion when it is positive.
func (r *Runner) Down(ctx context.Context, targetVersion int64) error {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if targetVersion > 0 {
		r.logger.Info("Rolling back migrations", slog.Int64("target", targetVersion))
		if err := goose.DownToContext(runCtx, r.db, Dir, targetVersion); err != nil {
			return errors.Wrapf(err, "rollback to version %d", targetVersion)
		}

		return nil
	}

	r.logger.Info("Rolling back latest migration")
	if err := goose.DownContext(runCtx, r.db, Dir); err != nil {
		return errors.Wrap(err, "rollback latest migration")
	}

	return nil
}

// Status prints applied and pending migrations through goose's logger.
func (r *Runner) Status(ctx context.Context) error {
	return errors.Wrap(goose.StatusContext(ctx, r.db, Dir), "migration status")
}

// Version returns the current schema version.
func (r *Runner) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, r.db)
	if err != nil {
		return 0, errors.Wrap(err, "read schema version")
	}

	return version, nil
}
