package task

import (
	"errors"
	"testing"
)

func sampleList(t *testing.T) *List {
	t.Helper()
	l := NewList(nil)
	todo, _ := NewToDo("buy milk")
	deadline, _ := NewDeadline("return Book", mustDate(t, "2026-06-06"))
	event, _ := NewEvent("book club", mustDate(t, "2026-08-06"), mustDate(t, "2026-08-07"))
	l.Add(todo)
	l.Add(deadline)
	l.Add(event)
	return l
}

func TestAddReportsNewSize(t *testing.T) {
	t.Parallel()

	l := NewList(nil)
	todo, _ := NewToDo("a")
	if size := l.Add(todo); size != 1 {
		t.Errorf("Add size = %d, want 1", size)
	}
	if size := l.Add(todo); size != 2 {
		t.Errorf("Add size = %d, want 2", size)
	}
}

func TestIndexOperationsRejectOutOfRange(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	for _, i := range []int{-1, 3, 99} {
		if _, err := l.Get(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Get(%d) error = %v, want ErrInvalidIndex", i, err)
		}
		if _, err := l.Remove(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Remove(%d) error = %v, want ErrInvalidIndex", i, err)
		}
		if _, err := l.Mark(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Mark(%d) error = %v, want ErrInvalidIndex", i, err)
		}
	}
	if l.Len() != 3 {
		t.Errorf("failed operations changed the list, Len = %d", l.Len())
	}
}

func TestRemoveReturnsTaskAndShifts(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	removed, err := l.Remove(1)
	if err != nil {
		t.Fatalf("Remove error = %v", err)
	}
	if removed.Description != "return Book" {
		t.Errorf("removed %q, want the deadline", removed.Description)
	}
	if l.Len() != 2 {
		t.Fatalf("Len = %d after remove, want 2", l.Len())
	}
	second, _ := l.Get(1)
	if second.Description != "book club" {
		t.Errorf("index 1 holds %q after remove, want the event", second.Description)
	}
}

func TestInsertRestoresPosition(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	removed, _ := l.Remove(1)
	if err := l.Insert(1, removed); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	want := []string{"buy milk", "return Book", "book club"}
	for i, desc := range want {
		got, _ := l.Get(i)
		if got.Description != desc {
			t.Errorf("index %d holds %q, want %q", i, got.Description, desc)
		}
	}

	if err := l.Insert(4, removed); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Insert past end error = %v, want ErrInvalidIndex", err)
	}
}

func TestMarkAndUnmarkToggle(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	marked, err := l.Mark(0)
	if err != nil {
		t.Fatalf("Mark error = %v", err)
	}
	if !marked.Done {
		t.Error("Mark returned a task that is not done")
	}
	unmarked, err := l.Unmark(0)
	if err != nil {
		t.Fatalf("Unmark error = %v", err)
	}
	if unmarked.Done {
		t.Error("Unmark returned a task that is still done")
	}
}

func TestFindIsCaseInsensitiveAndOrdered(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	matches := l.Find("BOOK")
	if len(matches) != 2 {
		t.Fatalf("Find(BOOK) returned %d tasks, want 2", len(matches))
	}
	if matches[0].Description != "return Book" || matches[1].Description != "book club" {
		t.Errorf("Find order = %q, %q; want list order", matches[0].Description, matches[1].Description)
	}
	if l.Len() != 3 {
		t.Errorf("Find changed the list, Len = %d", l.Len())
	}
	if got := l.Find("nothing matches this"); len(got) != 0 {
		t.Errorf("Find(no match) = %d tasks, want 0", len(got))
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	t.Parallel()

	l := sampleList(t)
	snapshot := l.Tasks()
	snapshot[0].Description = "mutated"
	got, _ := l.Get(0)
	if got.Description == "mutated" {
		t.Error("Tasks() shares backing storage with the list")
	}
}
