package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// ErrNoDatabaseURL is returned by the first statement executed against a
// handle opened without a database URL.
var ErrNoDatabaseURL = errors.New("database URL is not configured")

const (
	driverLibSQL = "libsql"
	driverSQLite = "sqlite3"
)

type DB struct {
	*sql.DB
	driver string
}

// New opens the storage client shared by every request.
// Remote URLs (libsql://, https://, wss://...) use the libSQL driver with
// authToken attached; file: URLs and plain paths use a local SQLite file.
func New(databaseURL, authToken string) (*DB, error) {
	if databaseURL == "" {
		return &DB{DB: sql.OpenDB(unconfiguredConnector{}), driver: ""}, nil
	}

	driverName, dsn, err := resolveDSN(databaseURL, authToken)
	if err != nil {
		return nil, err
	}

	if driverName == driverSQLite {
		if dir := filepath.Dir(sqlitePath(dsn)); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driverName == driverSQLite {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)

		// WAL lets readers proceed while an insert is in flight
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &DB{DB: db, driver: driverName}, nil
}

// DriverName reports which SQL driver backs the handle ("" when unconfigured).
func (db *DB) DriverName() string {
	return db.driver
}

// Migrate creates the notes table if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

func resolveDSN(databaseURL, authToken string) (string, string, error) {
	scheme, _, hasScheme := strings.Cut(databaseURL, "://")
	if !hasScheme {
		// file:notes.db, ./data/notes.db, :memory:
		return driverSQLite, databaseURL, nil
	}

	switch strings.ToLower(scheme) {
	case "libsql", "https", "http", "wss", "ws":
	case "file":
		return driverSQLite, databaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme %q", scheme)
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid database URL: %w", err)
	}

	if authToken != "" {
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
	}

	return driverLibSQL, u.String(), nil
}

func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file://")
	path = strings.TrimPrefix(path, "file:")
	path, _, _ = strings.Cut(path, "?")
	if path == ":memory:" {
		return ""
	}
	return path
}

// unconfiguredConnector lets sql.DB be constructed without a URL and
// defers the failure to the first connection attempt.
type unconfiguredConnector struct{}

func (unconfiguredConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, ErrNoDatabaseURL
}

func (unconfiguredConnector) Driver() driver.Driver {
	return unconfiguredDriver{}
}

type unconfiguredDriver struct{}

func (unconfiguredDriver) Open(string) (driver.Conn, error) {
	return nil, ErrNoDatabaseURL
}
