package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dfryer1193/postapi/shared/db"
	_ "modernc.org/sqlite"
)

// Config holds the connection settings for the SQLite store.
type Config struct {
	// DSN is a file path or file: URI understood by the sqlite driver.
	DSN string
}

// SQLiteDB implements the db.Database interface for SQLite
type SQLiteDB struct {
	dsn string
	db  *sql.DB
}

// New creates a SQLite database instance for the given config.
func New(cfg *Config) *SQLiteDB {
	return &SQLiteDB{
		dsn: cfg.DSN,
	}
}

// Connect opens the database, verifies it is reachable, applies pragmas,
// and runs pending migrations.
func (s *SQLiteDB) Connect() error {
	if s.db != nil {
		return fmt.Errorf("database already connected")
	}

	conn, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds if database is locked
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = conn

	if err := runMigrations(conn); err != nil {
		conn.Close()
		s.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying *sql.DB instance
func (s *SQLiteDB) DB() *sql.DB {
	return s.db
}

var _ db.Database = (*SQLiteDB)(nil)
