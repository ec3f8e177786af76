// Package trash keeps an append-only record of deleted tasks in a local
// SQLite database, so a task removed long ago can still be recovered by hand.
package trash

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"dudu/internal/task"
)

// Entry is one archived deletion.
type Entry struct {
	ID        int
	Task      task.Task
	DeletedAt time.Time
}

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("trash db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS trash (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	description TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	by_date TEXT DEFAULT NULL,
	from_date TEXT DEFAULT NULL,
	to_date TEXT DEFAULT NULL,
	deleted_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Add archives a deleted task. Rows are never removed by the application;
// undoing a delete re-inserts into the list but leaves the archive row.
func (s *Store) Add(t task.Task) error {
	done := 0
	if t.Done {
		done = 1
	}
	var by, from, to sql.NullString
	switch t.Kind {
	case task.KindDeadline:
		by = sql.NullString{String: t.By.String(), Valid: true}
	case task.KindEvent:
		from = sql.NullString{String: t.From.String(), Valid: true}
		to = sql.NullString{String: t.To.String(), Valid: true}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO trash (kind, description, done, by_date, from_date, to_date, deleted_at) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		string(t.Kind), t.Description, done, by, from, to, now)
	return err
}

// Recent returns up to limit archived deletions, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, description, done, by_date, from_date, to_date, deleted_at FROM trash ORDER BY id DESC LIMIT ?;`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind string
		var done int
		var by, from, to sql.NullString
		var deletedStr string
		if err := rows.Scan(&e.ID, &kind, &e.Task.Description, &done, &by, &from, &to, &deletedStr); err != nil {
			return nil, err
		}
		if kind == "" || !task.Kind(kind[0]).Valid() {
			continue
		}
		e.Task.Kind = task.Kind(kind[0])
		e.Task.Done = done == 1
		if by.Valid {
			if d, err := task.ParseDate(by.String); err == nil {
				e.Task.By = d
			}
		}
		if from.Valid {
			if d, err := task.ParseDate(from.String); err == nil {
				e.Task.From = d
			}
		}
		if to.Valid {
			if d, err := task.ParseDate(to.String); err == nil {
				e.Task.To = d
			}
		}
		if deleted, err := time.Parse(time.RFC3339, deletedStr); err == nil {
			e.DeletedAt = deleted
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
