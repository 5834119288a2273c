package ledger

import (
	"context"
	"fmt"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS passes (
    id TEXT PRIMARY KEY,
    archive_version INTEGER NOT NULL,
    started_at TEXT NOT NULL,
    finished_at TEXT,
    resolved_count INTEGER NOT NULL DEFAULT 0,
    unresolved_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pass_id TEXT NOT NULL REFERENCES passes(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    title TEXT NOT NULL,
    file TEXT,
    prefixes TEXT,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_pass_status ON entries(pass_id, status);
`

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply ledger schema: %w", err)
	}

	var version int
	row := s.db.QueryRowContext(ctx, `SELECT version FROM schema_info LIMIT 1`)
	if err := row.Scan(&version); err != nil {
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}
	if version != schemaVersion {
		return fmt.Errorf("ledger schema version %d is not supported (want %d); delete %s to start fresh", version, schemaVersion, s.path)
	}
	return nil
}
