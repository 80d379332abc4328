// Package database provides the SQLite-backed SIG record store for HydraSIG.
//
// Each record is kept as its uncompressed wire RDATA, which is the source of
// truth on read, alongside indexed columns for lookups:
//   - owner and covered type
//   - signer name and key tag
//   - validity window (expiration, inception) as Unix seconds
//
// The schema is versioned with golang-migrate; migrations are embedded in the
// binary and applied by Open.
package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DB wraps a SQLite database connection with thread-safe operations.
type DB struct {
	conn *sql.DB
	mu   sync.RWMutex // Protects record reads/writes
}

// Open opens or creates a SQLite database at the given path and migrates it
// to the latest schema.
func Open(path string) (*DB, error) {
	// Use WAL mode for better concurrency
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set reasonable connection pool limits
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := migrateUp(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Health checks database connectivity.
func (db *DB) Health() error {
	return db.conn.Ping()
}
