// Package storage persists the task list as a line-oriented text snapshot,
// one pipe-delimited record per task.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dudu/internal/task"
)

// Store reads and rewrites the snapshot file at a fixed path. Every save
// overwrites the full file, so the on-disk state is always a complete
// snapshot of the current list.
type Store struct {
	path string
}

// Open ensures the parent directory and the snapshot file exist so Load and
// Save never have to create them.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("storage path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load decodes every line of the snapshot. The first malformed line aborts
// the whole load; skipping lines would silently drop user data.
func (s *Store) Load() ([]task.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tasks []task.Task
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := DecodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, lineNo, err)
		}
		tasks = append(tasks, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save rewrites the snapshot with the given tasks in order.
func (s *Store) Save(tasks []task.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(EncodeLine(t))
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}

// EncodeLine renders one task in storage form:
//
//	T | 0 | read book
//	D | 1 | return book | 2026-06-06
//	E | 0 | project meeting | 2026-08-06 | 2026-08-07
func EncodeLine(t task.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	switch t.Kind {
	case task.KindDeadline:
		return fmt.Sprintf("D | %s | %s | %s", done, t.Description, t.By)
	case task.KindEvent:
		return fmt.Sprintf("E | %s | %s | %s | %s", done, t.Description, t.From, t.To)
	default:
		return fmt.Sprintf("T | %s | %s", done, t.Description)
	}
}

// DecodeLine parses one storage line back into a task, validating in order:
// the type tag, the done flag, the field count for the tag, then the dates.
func DecodeLine(line string) (task.Task, error) {
	fields := strings.Split(line, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	if len(fields) < 3 {
		return task.Task{}, fmt.Errorf("%w: want at least 3 fields, got %d", task.ErrInvalidFormat, len(fields))
	}

	var kind task.Kind
	switch fields[0] {
	case "T":
		kind = task.KindToDo
	case "D":
		kind = task.KindDeadline
	case "E":
		kind = task.KindEvent
	default:
		return task.Task{}, fmt.Errorf("%w: unknown task type %q", task.ErrInvalidFormat, fields[0])
	}

	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return task.Task{}, fmt.Errorf("%w: done flag must be 0 or 1, got %q", task.ErrInvalidFormat, fields[1])
	}

	t, err := decodeByKind(kind, fields)
	if err != nil {
		return task.Task{}, err
	}
	if done {
		t.Mark()
	}
	return t, nil
}

func decodeByKind(kind task.Kind, fields []string) (task.Task, error) {
	switch kind {
	case task.KindToDo:
		if len(fields) != 3 {
			return task.Task{}, fieldCountError("T", 3, len(fields))
		}
		return newStoredTask(task.NewToDo(fields[2]))
	case task.KindDeadline:
		if len(fields) != 4 {
			return task.Task{}, fieldCountError("D", 4, len(fields))
		}
		by, err := task.ParseDate(fields[3])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidFormat, err)
		}
		return newStoredTask(task.NewDeadline(fields[2], by))
	default:
		if len(fields) != 5 {
			return task.Task{}, fieldCountError("E", 5, len(fields))
		}
		from, err := task.ParseDate(fields[3])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidFormat, err)
		}
		to, err := task.ParseDate(fields[4])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidFormat, err)
		}
		return newStoredTask(task.NewEvent(fields[2], from, to))
	}
}

func newStoredTask(t task.Task, err error) (task.Task, error) {
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidFormat, err)
	}
	return t, nil
}

func fieldCountError(tag string, want, got int) error {
	return fmt.Errorf("%w: %s record wants %d fields, got %d", task.ErrInvalidFormat, tag, want, got)
}
