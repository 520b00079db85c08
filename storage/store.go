package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	// ErrUnknownDriver is returned for a store driver other than sqlite or postgres.
	ErrUnknownDriver = errors.New("unknown store driver")
	// ErrInvalidTable is returned when a table name is not a plain identifier.
	ErrInvalidTable = errors.New("invalid table name")

	identRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Store names a relational database. It holds no connection: every
// operation opens the database and closes it again.
type Store struct {
	Driver string
	DSN    string

	dialect dialect
}

// NewStore validates the driver and returns a Store for dsn.
func NewStore(driver, dsn string) (*Store, error) {
	var d dialect
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
		d = sqliteDialect{}
	case "postgres", "postgresql":
		d = postgresDialect{}
	default:
		return nil, fmt.Errorf("store: %q: %w", driver, ErrUnknownDriver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store: DSN must not be empty")
	}
	return &Store{Driver: d.driverName(), DSN: dsn, dialect: d}, nil
}

// Open connects to the database and verifies the connection. The caller
// must close the returned handle.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	if s.Driver == "sqlite" {
		if dir := filepath.Dir(s.DSN); dir != "." && !strings.HasPrefix(s.DSN, "file:") {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("store: create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open(s.Driver, s.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return db, nil
}

// Rebind adapts a query written with ? placeholders to the store's driver.
func (s *Store) Rebind(query string) string {
	return s.dialect.rebind(query)
}

// ValidateTable rejects table names that cannot be used as bare identifiers.
func ValidateTable(name string) error {
	if !identRegexp.MatchString(name) {
		return fmt.Errorf("store: %q: %w", name, ErrInvalidTable)
	}
	return nil
}
