// Package journal provides a local SQLite log of admin mutations for
// diagnostics. Recording is best-effort: a journal failure is logged and
// never fails the mutation it describes.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Entry is one recorded mutation attempt.
type Entry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"`
	Operation string    `json:"operation"`
	TargetID  int       `json:"targetId"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// Journal is the SQLite-backed mutation log.
type Journal struct {
	db  *sql.DB
	log *logrus.Logger
}

// Open opens (or creates) the journal database at path.
func Open(path string, log *logrus.Logger) (*Journal, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{db: db, log: log}
	if err := j.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) initialize() error {
	schema := `
	-- Mutation log (append-only)
	CREATE TABLE IF NOT EXISTS mutations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		entity TEXT NOT NULL,
		operation TEXT NOT NULL,
		target_id INTEGER DEFAULT 0,
		ok BOOLEAN NOT NULL,
		error TEXT
	);

	-- Small key-value store (last-used filters, etc.)
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_mutations_entity ON mutations(entity);
	`

	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("create journal schema: %w", err)
	}
	return nil
}

// RecordMutation satisfies query.Recorder. Failures are swallowed after
// logging so the mutation outcome is unaffected.
func (j *Journal) RecordMutation(entity, operation string, targetID int, cause error) {
	ok := cause == nil
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	_, err := j.db.Exec(
		"INSERT INTO mutations (entity, operation, target_id, ok, error) VALUES (?, ?, ?, ?, ?)",
		entity, operation, targetID, ok, msg,
	)
	if err != nil && j.log != nil {
		j.log.WithError(err).Warn("failed to record mutation in journal")
	}
}

// Recent returns the latest limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		"SELECT id, timestamp, entity, operation, target_id, ok, error FROM mutations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Entity, &e.Operation, &e.TargetID, &e.OK, &e.Error); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Timestamp = parseTimestamp(ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetValue gets a value from the key-value store.
func (j *Journal) GetValue(key string) (string, error) {
	var value string
	err := j.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetValue sets a value in the key-value store.
func (j *Journal) SetValue(key, value string) error {
	_, err := j.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?",
		key, value, value,
	)
	return err
}

// parseTimestamp parses a timestamp string from SQLite in various formats.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
