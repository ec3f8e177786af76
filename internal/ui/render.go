package ui

import (
	"fmt"
	"strings"

	"dudu/internal/task"
	"dudu/internal/trash"
)

// Plain-text renderings shared by the console sink and the interactive UI.

const (
	welcomeText = "Hello! I'm dudu\nWhat can I do for you?"
	goodbyeText = "Bye. Hope to see you again soon!"
)

func renderList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "No tasks"
	}
	var b strings.Builder
	b.WriteString("Here are the tasks in your list:")
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}

func renderAdded(t task.Task, total int) string {
	return fmt.Sprintf("Got it. I've added this task:\n    %s\nNow you have %d %s in the list.",
		t, total, plural(total, "task"))
}

func renderMarked(t task.Task) string {
	return fmt.Sprintf("Nice! I've marked this task as done:\n    %s", t)
}

func renderUnmarked(t task.Task) string {
	return fmt.Sprintf("OK, I've marked this task as not done yet:\n    %s", t)
}

func renderRemoved(t task.Task, total int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n    %s\nNow you have %d %s in the list.",
		t, total, plural(total, "task"))
}

func renderFound(matches []task.Task) string {
	if len(matches) == 0 {
		return "No matching tasks found"
	}
	var b strings.Builder
	b.WriteString("Here are the matching tasks in your list:")
	for i, t := range matches {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}

func renderTrash(entries []trash.Entry) string {
	if len(entries) == 0 {
		return "The trash is empty"
	}
	var b strings.Builder
	b.WriteString("Recently deleted tasks:")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s  %s", e.DeletedAt.Format("2006-01-02"), e.Task)
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
