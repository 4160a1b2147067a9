// Package sqlite implements storage.Storage on an embedded SQLite database
// (modernc.org/sqlite) or a remote libSQL/Turso database, chosen by DSN.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // goqu sqlite3 dialect
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // remote libSQL driver
	_ "modernc.org/sqlite"                               // local SQLite driver

	"bangsafe/pkg/storage"
)

// DefaultDSN is used when Options.DSN is empty.
const DefaultDSN = "file:bangsafe.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

const (
	sqliteDriver = "sqlite"
	libsqlDriver = "libsql"
)

// Options defines the configuration parameters for the SQLite store.
type Options struct {
	// DSN is either a local SQLite DSN (e.g. "file:bangsafe.db" or ":memory:")
	// or a libSQL URL starting with "libsql://" or "wss://".
	DSN string
}

// SQLite implements storage.Storage using database/sql and goqu.
type SQLite struct {
	// DB is the underlying database handle. It holds a single open connection.
	DB *sql.DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder *goqu.Database
}

var _ storage.Storage = (*SQLite)(nil)

// DriverFor returns the database/sql driver name serving dsn.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		return libsqlDriver
	}

	return sqliteDriver
}

// New opens the database and verifies the connection.
func New(ctx context.Context, options Options) (*SQLite, error) {
	dsn := options.DSN
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := sql.Open(DriverFor(dsn), dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db: %w", err)
	}

	// a single connection serializes writers and keeps ":memory:" databases alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not ping sqlite db: %w", err)
	}

	return &SQLite{
		DB:      db,
		Builder: goqu.Dialect("sqlite3").DB(db),
	}, nil
}

// Migrate applies all pending goose migrations found at the root of migrations.
func (s *SQLite) Migrate(ctx context.Context, migrations fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.DB, migrations)
	if err != nil {
		return fmt.Errorf("could not create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("could not close sqlite db: %w", err)
	}

	return nil
}
