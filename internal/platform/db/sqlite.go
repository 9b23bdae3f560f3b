// Package db owns the embedded SQLite database file: opening it with
// foreign-key enforcement, creating the schema, mapping driver errors to
// the application's error taxonomy, and the native backup/restore flow.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the single shared connection to the hospital database file.
type DB struct {
	*sql.DB
	path string
}

// Querier is the subset of database/sql used by repositories. It is
// satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens (creating if absent) the database file at path with foreign
// keys enforced and WAL journaling.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	sdb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// A single local user; one connection keeps statement ordering
	// predictable and avoids SQLITE_BUSY between handles.
	sdb.SetMaxOpenConns(1)

	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	return &DB{DB: sdb, path: path}, nil
}

// Path returns the filesystem path of the live database file.
func (d *DB) Path() string {
	return d.path
}
