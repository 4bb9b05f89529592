package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/vocadrill/vocadrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for progress and session history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			word TEXT PRIMARY KEY,
			seen INTEGER NOT NULL,
			known INTEGER NOT NULL,
			unknown INTEGER NOT NULL,
			starred INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			words_seen INTEGER NOT NULL,
			known INTEGER NOT NULL,
			unknown INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadProgress returns the stored progress for every word ever drilled.
func (s *Store) LoadProgress(ctx context.Context) (map[model.WordID]model.Progress, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, seen, known, unknown, starred FROM progress`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	progress := map[model.WordID]model.Progress{}
	for rows.Next() {
		var word string
		var p model.Progress
		var starred int
		if err := rows.Scan(&word, &p.Seen, &p.Known, &p.Unknown, &starred); err != nil {
			return nil, err
		}
		p.Starred = starred != 0
		progress[model.WordID(word)] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return progress, nil
}

// SaveProgress upserts the full progress map in one transaction.
func (s *Store) SaveProgress(ctx context.Context, progress map[model.WordID]model.Progress) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO progress (word, seen, known, unknown, starred)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET
			seen = excluded.seen,
			known = excluded.known,
			unknown = excluded.unknown,
			starred = excluded.starred`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for id, p := range progress {
		starred := 0
		if p.Starred {
			starred = 1
		}
		if _, err = stmt.ExecContext(ctx, string(id), p.Seen, p.Known, p.Unknown, starred); err != nil {
			return err
		}
	}
	err = tx.Commit()
	return err
}

// RecordSession stores one finished learning session.
func (s *Store) RecordSession(ctx context.Context, rec model.SessionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, mode, words_seen, known, unknown)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Mode,
		rec.WordsSeen,
		rec.Known,
		rec.Unknown,
	)
	return err
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]model.SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT started_at, ended_at, mode, words_seen, known, unknown
		 FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var startedAt, endedAt string
		if err := rows.Scan(&startedAt, &endedAt, &rec.Mode, &rec.WordsSeen, &rec.Known, &rec.Unknown); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
