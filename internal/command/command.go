// Package command turns input lines into typed commands and applies them to
// the task list, persisting after every mutation and recording inverses for
// undo.
package command

import (
	"dudu/internal/task"
	"dudu/internal/trash"
)

// Command is the closed set of things a user can ask for. Parsing yields
// exactly one variant; the Session type-switches over all of them.
type Command interface {
	isCommand()
}

type (
	// Bye ends the session.
	Bye struct{}
	// List shows every task in order.
	List struct{}
	// Help shows the command grammar.
	Help struct{}
	// Add appends a new task.
	Add struct{ Task task.Task }
	// Mark sets the task at Index (0-based) to done.
	Mark struct{ Index int }
	// Unmark sets the task at Index to not done.
	Unmark struct{ Index int }
	// Delete removes the task at Index.
	Delete struct{ Index int }
	// Insert puts a task back at a specific position. It is never produced
	// by the parser; it only exists as the inverse of Delete.
	Insert struct {
		Index int
		Task  task.Task
	}
	// Find searches descriptions case-insensitively.
	Find struct{ Query string }
	// Undo reverses the most recent mutating command.
	Undo struct{}
	// Trash lists recently deleted tasks from the archive.
	Trash struct{}
	// Invalid carries an unrecognized input line for diagnostics.
	Invalid struct{ Input string }
)

func (Bye) isCommand() {}
func (List) isCommand() {}
func (Help) isCommand() {}
func (Add) isCommand() {}
func (Mark) isCommand() {}
func (Unmark) isCommand() {}
func (Delete) isCommand() {}
func (Insert) isCommand() {}
func (Find) isCommand() {}
func (Undo) isCommand() {}
func (Trash) isCommand() {}
func (Invalid) isCommand() {}

// Sink is where the session sends everything the user should see. It only
// ever receives rendered values, never raw errors from lower layers.
type Sink interface {
	ShowWelcome()
	ShowGoodbye()
	ShowList(tasks []task.Task)
	ShowAdded(t task.Task, total int)
	ShowMarked(t task.Task)
	ShowUnmarked(t task.Task)
	ShowRemoved(t task.Task, total int)
	ShowFound(matches []task.Task)
	ShowTrash(entries []trash.Entry)
	ShowMessage(msg string)
	ShowError(err error)
}
