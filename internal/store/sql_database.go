package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/automoney/accountd/internal/config"
	"github.com/automoney/accountd/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the pooled *sql.DB with the pieces that differ per backend:
// the squirrel statement builder (placeholder format) and the goose
// dialect used for migrations.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

// Dialect returns the goose dialect name of the underlying driver
// ("pgx" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}

// NewConnect opens the credential store connection for the configured DSN.
// A postgres:// or postgresql:// scheme selects the PostgreSQL backend;
// any other value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
