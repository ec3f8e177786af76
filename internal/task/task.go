// Package task holds the task variants, the ordered task list, and the
// error vocabulary shared by the parser and the storage codec.
package task

import (
	"fmt"
	"strings"
)

// Kind tags the three task variants. The set is closed; every switch over
// Kind handles all three.
type Kind byte

const (
	KindToDo     Kind = 'T'
	KindDeadline Kind = 'D'
	KindEvent    Kind = 'E'
)

func (k Kind) Valid() bool {
	return k == KindToDo || k == KindDeadline || k == KindEvent
}

// Task is one trackable item. Date fields are only meaningful for the kind
// that declares them: By for deadlines, From/To for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	By          Date
	From        Date
	To          Date
}

// NewToDo builds a plain to-do. The description is trimmed and must be
// non-empty afterwards.
func NewToDo(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, fmt.Errorf("%w: todo needs a description", ErrMissingDescription)
	}
	return Task{Kind: KindToDo, Description: description}, nil
}

// NewDeadline builds a task due by a single calendar date.
func NewDeadline(description string, by Date) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, fmt.Errorf("%w: deadline needs a description", ErrMissingDescription)
	}
	return Task{Kind: KindDeadline, Description: description, By: by}, nil
}

// NewEvent builds a task spanning from one calendar date to another.
func NewEvent(description string, from, to Date) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, fmt.Errorf("%w: event needs a description", ErrMissingDescription)
	}
	return Task{Kind: KindEvent, Description: description, From: from, To: to}, nil
}

func (t *Task) Mark()   { t.Done = true }
func (t *Task) Unmark() { t.Done = false }

// String renders the task for display: [T][X] buy milk,
// [D][ ] report (by: 2026-09-01), [E][ ] camp (from: a to: b).
func (t Task) String() string {
	checkbox := "[ ]"
	if t.Done {
		checkbox = "[X]"
	}
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("[D]%s %s (by: %s)", checkbox, t.Description, t.By)
	case KindEvent:
		return fmt.Sprintf("[E]%s %s (from: %s to: %s)", checkbox, t.Description, t.From, t.To)
	default:
		return fmt.Sprintf("[T]%s %s", checkbox, t.Description)
	}
}

// Equal is structural: kind, description, completion, and whichever date
// fields the kind carries.
func (t Task) Equal(other Task) bool {
	if t.Kind != other.Kind || t.Description != other.Description || t.Done != other.Done {
		return false
	}
	switch t.Kind {
	case KindDeadline:
		return t.By.Equal(other.By)
	case KindEvent:
		return t.From.Equal(other.From) && t.To.Equal(other.To)
	default:
		return true
	}
}
