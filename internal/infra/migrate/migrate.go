package migrate

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"reservation-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/*.sql
var files embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Apply runs every embedded migration not yet recorded in schema_migrations, each
// in its own transaction, in file-name order.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, createVersionTable); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := applyOne(ctx, pool, name)
		if err != nil {
			return err
		}
		if applied {
			logger.Info("Migration applied", slog.String("version", name))
		}
	}
	return nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name string) (bool, error) {
	body, err := files.ReadFile(name)
	if err != nil {
		return false, errs.Wrap(err, "failed to read "+name)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, errs.Wrap(err, "failed to begin migration")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback migration", "version", name, "error", rollbackErr)
		}
	}()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists); err != nil {
		return false, errs.Wrap(err, "failed to check migration "+name)
	}
	if exists {
		return false, nil
	}

	if _, err := tx.Exec(ctx, string(body)); err != nil {
		return false, errs.Wrap(err, "failed to apply "+name)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		return false, errs.Wrap(err, "failed to record "+name)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, errs.Wrap(err, "failed to commit "+name)
	}
	return true, nil
}
