// Package storage opens the relational store behind the repositories, applies the
// embedded schema migrations and classifies constraint violations for both the
// networked PostgreSQL driver and the embedded SQLite driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/sbilibin2017/gw-storefront/internal/config"
	"github.com/sbilibin2017/gw-storefront/internal/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names registered with database/sql.
const (
	PgxDriver    = "pgx"
	SQLiteDriver = "sqlite"
)

func init() {
	sqlx.BindDriver(SQLiteDriver, sqlx.QUESTION)
}

// Open connects to the store selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN(), cfg.PostgresMaxOpenConns, cfg.PostgresMaxIdleConns)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.StorageDriver)
	}
}

// OpenPostgres connects to PostgreSQL through the pgx stdlib driver.
func OpenPostgres(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, PgxDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	return db, nil
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
// Use ":memory:" for a private in-memory database.
//
// SQLite allows a single writer, so the pool is pinned to one connection;
// this also keeps an in-memory database alive for the lifetime of db.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sqlx.Open(SQLiteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	return db, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded migrations matching the driver of db.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dialect, dir, err := migrationSet(db.DriverName())
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}
	return nil
}

func migrationSet(driverName string) (dialect, dir string, err error) {
	switch driverName {
	case PgxDriver:
		return "postgres", "postgres", nil
	case SQLiteDriver:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", config.ErrUnknownDriver, driverName)
	}
}
