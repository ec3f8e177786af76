package task

import (
	"fmt"
	"strings"
)

// List is an ordered, index-addressed collection of tasks. It owns its
// backing slice; callers only see copies.
type List struct {
	tasks []Task
}

func NewList(tasks []Task) *List {
	owned := make([]Task, len(tasks))
	copy(owned, tasks)
	return &List{tasks: owned}
}

func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends and reports the new size.
func (l *List) Add(t Task) int {
	l.tasks = append(l.tasks, t)
	return len(l.tasks)
}

// Insert places t at index i, shifting later tasks up. i == Len() appends.
func (l *List) Insert(i int, t Task) error {
	if i < 0 || i > len(l.tasks) {
		return l.rangeError(i)
	}
	l.tasks = append(l.tasks, Task{})
	copy(l.tasks[i+1:], l.tasks[i:])
	l.tasks[i] = t
	return nil
}

func (l *List) Get(i int) (Task, error) {
	if err := l.checkRange(i); err != nil {
		return Task{}, err
	}
	return l.tasks[i], nil
}

// Mark sets the task at i to done and returns the updated task.
func (l *List) Mark(i int) (Task, error) {
	if err := l.checkRange(i); err != nil {
		return Task{}, err
	}
	l.tasks[i].Mark()
	return l.tasks[i], nil
}

// Unmark clears the done flag at i and returns the updated task.
func (l *List) Unmark(i int) (Task, error) {
	if err := l.checkRange(i); err != nil {
		return Task{}, err
	}
	l.tasks[i].Unmark()
	return l.tasks[i], nil
}

// Remove deletes the task at i and returns it, so the caller can rebuild it
// elsewhere (undo re-inserts at the original position).
func (l *List) Remove(i int) (Task, error) {
	if err := l.checkRange(i); err != nil {
		return Task{}, err
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// Find returns tasks whose description contains query, case-insensitively,
// in list order. The list is never modified.
func (l *List) Find(query string) []Task {
	query = strings.ToLower(query)
	var matches []Task
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description), query) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Tasks returns a snapshot copy in list order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) checkRange(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return l.rangeError(i)
	}
	return nil
}

func (l *List) rangeError(i int) error {
	return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidIndex, i+1, len(l.tasks))
}
