// Package sqlite provides the embedded single-file backend used by the
// CLI tools when no PostgreSQL instance is configured. It mirrors the
// postgres adapter's shape: a querier abstraction plus a context-carried
// transaction manager.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

const schema = `
CREATE TABLE IF NOT EXISTS semantic_constants (
    id              TEXT PRIMARY KEY,
    constant_id     TEXT NOT NULL UNIQUE,
    canonical_label TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    domains         TEXT NOT NULL DEFAULT '[]',
    status          TEXT NOT NULL CHECK (status IN ('PROVISIONAL', 'CURATED')),
    created_from    TEXT NOT NULL DEFAULT '[]',
    created_at      TIMESTAMP NOT NULL,
    curated_at      TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_semantic_constants_match_order
    ON semantic_constants (created_at, constant_id);
`

// Open opens (creating if necessary) the database file at path and
// bootstraps the schema. The registry's check-then-insert requires real
// transactional isolation, hence foreign keys and a busy timeout rather
// than relying on driver defaults.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// A single writer avoids SQLITE_BUSY churn between the tools.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap sqlite schema: %w", err)
	}

	return db, nil
}
