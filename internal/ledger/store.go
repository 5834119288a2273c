package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry statuses recorded per classified cell.
const (
	StatusResolved   = "resolved"
	StatusUnresolved = "unresolved"
)

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one recorded row outcome.
type Entry struct {
	ID        int64     `json:"id"`
	PassID    string    `json:"pass_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	File      string    `json:"file,omitempty"`
	Prefixes  []string  `json:"prefixes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PassSummary aggregates one reconciliation pass.
type PassSummary struct {
	ID              string     `json:"id"`
	ArchiveVersion  int        `json:"archive_version"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	ResolvedCount   int        `json:"resolved_count"`
	UnresolvedCount int        `json:"unresolved_count"`
}

// Open initializes or connects to the ledger database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Pass is an open reconciliation pass accepting entry records.
type Pass struct {
	ID    string
	store *Store
}

// BeginPass inserts a new pass row and returns a handle for recording.
func (s *Store) BeginPass(ctx context.Context, archiveVersion int) (*Pass, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO passes (id, archive_version, started_at) VALUES (?, ?, ?)`,
		id,
		archiveVersion,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert pass: %w", err)
	}
	return &Pass{ID: id, store: s}, nil
}

// RecordResolved stores a successfully bound row.
func (p *Pass) RecordResolved(ctx context.Context, category, title, file string) error {
	return p.store.insertEntry(ctx, p.ID, category, title, file, nil, StatusResolved)
}

// RecordUnresolved stores a row no pool filename satisfied, together with the
// candidate prefixes that were attempted.
func (p *Pass) RecordUnresolved(ctx context.Context, category, title string, prefixes []string) error {
	return p.store.insertEntry(ctx, p.ID, category, title, "", prefixes, StatusUnresolved)
}

// Finish stamps the pass with its completion time and outcome counts.
func (p *Pass) Finish(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := p.store.db.ExecContext(
		ctx,
		`UPDATE passes SET
            finished_at = ?,
            resolved_count = (SELECT COUNT(1) FROM entries WHERE pass_id = ? AND status = ?),
            unresolved_count = (SELECT COUNT(1) FROM entries WHERE pass_id = ? AND status = ?)
         WHERE id = ?`,
		now,
		p.ID, StatusResolved,
		p.ID, StatusUnresolved,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("finish pass: %w", err)
	}
	return nil
}

func (s *Store) insertEntry(ctx context.Context, passID, category, title, file string, prefixes []string, status string) error {
	var prefixesJSON any
	if len(prefixes) > 0 {
		encoded, err := json.Marshal(prefixes)
		if err != nil {
			return fmt.Errorf("marshal prefixes: %w", err)
		}
		prefixesJSON = string(encoded)
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO entries (pass_id, category, title, file, prefixes, status, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		passID,
		category,
		title,
		nullableString(file),
		prefixesJSON,
		status,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// LastPass returns the most recently started pass, or nil when the ledger is
// empty.
func (s *Store) LastPass(ctx context.Context) (*PassSummary, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, archive_version, started_at, finished_at, resolved_count, unresolved_count
         FROM passes ORDER BY started_at DESC LIMIT 1`,
	)
	summary, err := scanPass(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last pass: %w", err)
	}
	return summary, nil
}

// Unresolved returns the unresolved entries of a pass in record order.
func (s *Store) Unresolved(ctx context.Context, passID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, pass_id, category, title, file, prefixes, status, created_at
         FROM entries WHERE pass_id = ? AND status = ? ORDER BY id`,
		passID,
		StatusUnresolved,
	)
	if err != nil {
		return nil, fmt.Errorf("query unresolved: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanPass(scanner interface{ Scan(dest ...any) error }) (*PassSummary, error) {
	var (
		id          string
		version     int
		startedRaw  string
		finishedRaw sql.NullString
		resolved    int
		unresolved  int
	)
	if err := scanner.Scan(&id, &version, &startedRaw, &finishedRaw, &resolved, &unresolved); err != nil {
		return nil, err
	}
	summary := &PassSummary{
		ID:              id,
		ArchiveVersion:  version,
		ResolvedCount:   resolved,
		UnresolvedCount: unresolved,
	}
	if started, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
		summary.StartedAt = started
	}
	if finishedRaw.Valid {
		if finished, err := time.Parse(time.RFC3339Nano, finishedRaw.String); err == nil {
			summary.FinishedAt = &finished
		}
	}
	return summary, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		id          int64
		passID      string
		category    string
		title       string
		file        sql.NullString
		prefixesRaw sql.NullString
		status      string
		createdRaw  string
	)
	if err := scanner.Scan(&id, &passID, &category, &title, &file, &prefixesRaw, &status, &createdRaw); err != nil {
		return Entry{}, err
	}
	entry := Entry{
		ID:       id,
		PassID:   passID,
		Category: category,
		Title:    title,
		File:     file.String,
		Status:   status,
	}
	if prefixesRaw.Valid && prefixesRaw.String != "" {
		if err := json.Unmarshal([]byte(prefixesRaw.String), &entry.Prefixes); err != nil {
			return Entry{}, fmt.Errorf("decode prefixes: %w", err)
		}
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
