package command

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dudu/internal/storage"
	"dudu/internal/task"
	"dudu/internal/trash"
)

// testSink records every call so tests can assert on what the user saw.
type testSink struct {
	lists    [][]task.Task
	found    [][]task.Task
	messages []string
	errs     []error
}

func (s *testSink) ShowWelcome() {}
func (s *testSink) ShowGoodbye() {}
func (s *testSink) ShowList(tasks []task.Task) { s.lists = append(s.lists, tasks) }
func (s *testSink) ShowAdded(task.Task, int) {}
func (s *testSink) ShowMarked(task.Task) {}
func (s *testSink) ShowUnmarked(task.Task) {}
func (s *testSink) ShowRemoved(task.Task, int) {}
func (s *testSink) ShowFound(matches []task.Task) { s.found = append(s.found, matches) }
func (s *testSink) ShowTrash([]trash.Entry) {}
func (s *testSink) ShowMessage(msg string) { s.messages = append(s.messages, msg) }
func (s *testSink) ShowError(err error) { s.errs = append(s.errs, err) }

func (s *testSink) lastError(t *testing.T) error {
	t.Helper()
	if len(s.errs) == 0 {
		t.Fatal("expected an error to be shown")
	}
	return s.errs[len(s.errs)-1]
}

func newTestSession(t *testing.T) (*Session, *testSink, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "dudu.txt"))
	if err != nil {
		t.Fatalf("storage.Open error = %v", err)
	}
	sink := &testSink{}
	return NewSession(task.NewList(nil), store, nil, sink), sink, store
}

func snapshot(t *testing.T, store *storage.Store) string {
	t.Helper()
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	return string(data)
}

func TestAddMarkUndoScenario(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)

	sess.Run("todo buy milk")
	sess.Run("list")
	if len(sink.lists) != 1 || len(sink.lists[0]) != 1 {
		t.Fatalf("list after add showed %v", sink.lists)
	}
	if got := sink.lists[0][0].String(); got != "[T][ ] buy milk" {
		t.Errorf("list shows %q, want [T][ ] buy milk", got)
	}

	sess.Run("mark 1")
	sess.Run("list")
	if got := sink.lists[1][0].String(); got != "[T][X] buy milk" {
		t.Errorf("list after mark shows %q", got)
	}

	sess.Run("undo")
	sess.Run("list")
	if got := sink.lists[2][0].String(); got != "[T][ ] buy milk" {
		t.Errorf("list after undo shows %q", got)
	}
	if len(sink.errs) != 0 {
		t.Errorf("scenario produced errors: %v", sink.errs)
	}
}

func TestMarkUnmarkRestoresSnapshotBytes(t *testing.T) {
	t.Parallel()

	sess, _, store := newTestSession(t)
	sess.Run("todo buy milk")
	before := snapshot(t, store)

	sess.Run("mark 1")
	if snapshot(t, store) == before {
		t.Fatal("mark did not change the snapshot")
	}
	sess.Run("unmark 1")
	if got := snapshot(t, store); got != before {
		t.Errorf("snapshot after mark+unmark = %q, want %q", got, before)
	}
}

func TestUndoDeleteRestoresPositionAndState(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)
	sess.Run("todo first")
	sess.Run("todo second")
	sess.Run("todo third")
	sess.Run("mark 2")

	sess.Run("delete 2")
	if sess.List().Len() != 2 {
		t.Fatalf("Len after delete = %d", sess.List().Len())
	}

	sess.Run("undo")
	restored, err := sess.List().Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if restored.Description != "second" || !restored.Done {
		t.Errorf("restored task = %v, want marked %q at index 1", restored, "second")
	}
	if len(sink.errs) != 0 {
		t.Errorf("unexpected errors: %v", sink.errs)
	}
}

func TestUndoWithEmptyHistoryIsNoOp(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)
	sess.Run("todo only")
	sess.Run("undo")
	if sess.List().Len() != 0 {
		t.Fatalf("Len after undo = %d, want 0", sess.List().Len())
	}

	// The stack is empty now; a second undo must not redo the add.
	sess.Run("undo")
	if sess.List().Len() != 0 {
		t.Errorf("second undo changed the list, Len = %d", sess.List().Len())
	}
	last := sink.messages[len(sink.messages)-1]
	if !strings.Contains(last, "Nothing to undo") {
		t.Errorf("second undo message = %q", last)
	}
	if len(sink.errs) != 0 {
		t.Errorf("empty undo reported errors: %v", sink.errs)
	}
}

func TestFindDoesNotMutateOrSave(t *testing.T) {
	t.Parallel()

	sess, sink, store := newTestSession(t)
	sess.Run("todo buy milk")
	before := snapshot(t, store)

	// A sentinel makes any rewrite detectable even if the content matches.
	if err := os.WriteFile(store.Path(), []byte(before+"# sentinel\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	sess.Run("find MILK")
	if len(sink.found) != 1 || len(sink.found[0]) != 1 {
		t.Fatalf("find results = %v", sink.found)
	}
	if got := snapshot(t, store); !strings.Contains(got, "# sentinel") {
		t.Error("find rewrote the snapshot")
	}
	if sess.List().Len() != 1 {
		t.Errorf("find changed the list, Len = %d", sess.List().Len())
	}
}

func TestDeleteOutOfRangeLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)
	sess.Run("todo only")
	sess.Run("delete 5")
	if !errors.Is(sink.lastError(t), task.ErrInvalidIndex) {
		t.Errorf("delete 5 error = %v, want ErrInvalidIndex", sink.lastError(t))
	}
	if sess.List().Len() != 1 {
		t.Errorf("failed delete changed the list, Len = %d", sess.List().Len())
	}

	// A failed mutation must not be undoable.
	sess.Run("undo")
	if sess.List().Len() != 0 {
		t.Errorf("undo after failed delete should undo the add, Len = %d", sess.List().Len())
	}
}

func TestMutationsAreSaved(t *testing.T) {
	t.Parallel()

	sess, _, store := newTestSession(t)
	sess.Run("todo buy milk")
	sess.Run("deadline return book /by 2026-06-06")

	want := "T | 0 | buy milk\nD | 0 | return book | 2026-06-06\n"
	if got := snapshot(t, store); got != want {
		t.Errorf("snapshot = %q, want %q", got, want)
	}

	sess.Run("delete 1")
	want = "D | 0 | return book | 2026-06-06\n"
	if got := snapshot(t, store); got != want {
		t.Errorf("snapshot after delete = %q, want %q", got, want)
	}
}

func TestByeTerminatesAndInvalidDoesNot(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)
	if done := sess.Run("gibberish input"); done {
		t.Error("invalid command terminated the session")
	}
	if len(sink.messages) == 0 || !strings.Contains(sink.messages[0], "help") {
		t.Errorf("invalid command message = %v, want a help hint", sink.messages)
	}
	if done := sess.Run("bye"); !done {
		t.Error("bye did not terminate the session")
	}
}

func TestParseErrorsAreShownNotFatal(t *testing.T) {
	t.Parallel()

	sess, sink, _ := newTestSession(t)
	if done := sess.Run("deadline /by 2026-06-06"); done {
		t.Error("parse error terminated the session")
	}
	if !errors.Is(sink.lastError(t), task.ErrMissingDescription) {
		t.Errorf("error = %v, want ErrMissingDescription", sink.lastError(t))
	}
}
