package command

import (
	"fmt"

	"dudu/internal/storage"
	"dudu/internal/task"
	"dudu/internal/trash"
)

const helpText = `Commands:
  list                                              show all tasks
  todo <description>                                add a to-do
  deadline <description> /by <yyyy-mm-dd>           add a deadline
  event <description> /from <yyyy-mm-dd> /to <yyyy-mm-dd>
                                                    add an event
  mark <n> / unmark <n>                             toggle completion
  delete <n>                                        remove a task
  find <query>                                      search descriptions
  undo                                              reverse the last change
  trash                                             show recently deleted tasks
  help                                              this text
  bye                                               exit`

const trashListLimit = 10

// Session applies commands to the task list, rewrites the snapshot after
// every mutation, and keeps the stack of inverse commands that makes undo
// work. It is single-writer state; one command runs to completion before the
// next line is read.
type Session struct {
	list    *task.List
	store   *storage.Store
	archive *trash.Store // nil disables the deletion archive
	sink    Sink
	history []Command // inverses of applied mutations, last in first out
}

func NewSession(list *task.List, store *storage.Store, archive *trash.Store, sink Sink) *Session {
	return &Session{list: list, store: store, archive: archive, sink: sink}
}

func (s *Session) List() *task.List {
	return s.list
}

// SetSink swaps the output sink, used when the interactive UI takes over
// rendering from the console.
func (s *Session) SetSink(sink Sink) {
	s.sink = sink
}

// Run parses and executes one input line. It reports true when the session
// should end.
func (s *Session) Run(line string) bool {
	cmd, err := Parse(line)
	if err != nil {
		s.sink.ShowError(err)
		return false
	}
	return s.Execute(cmd)
}

// Execute applies one command. Parse never produces Insert, but Execute
// accepts it so undo can reuse the same path.
func (s *Session) Execute(cmd Command) bool {
	switch c := cmd.(type) {
	case Bye:
		s.sink.ShowGoodbye()
		return true
	case List:
		s.sink.ShowList(s.list.Tasks())
	case Help:
		s.sink.ShowMessage(helpText)
	case Find:
		s.sink.ShowFound(s.list.Find(c.Query))
	case Trash:
		s.showTrash()
	case Invalid:
		s.sink.ShowMessage(fmt.Sprintf("I don't understand %q. Use help to see the commands.", c.Input))
	case Undo:
		s.undo()
	case Add, Mark, Unmark, Delete, Insert:
		s.mutate(cmd, true)
	}
	return false
}

// mutate applies one of the list-changing commands, shows the confirmation,
// pushes the inverse when record is set, and rewrites the snapshot. A failed
// save is reported but the in-memory change stands.
func (s *Session) mutate(cmd Command, record bool) {
	var inverse Command
	switch c := cmd.(type) {
	case Add:
		size := s.list.Add(c.Task)
		s.sink.ShowAdded(c.Task, size)
		inverse = Delete{Index: size - 1}
	case Mark:
		t, err := s.list.Mark(c.Index)
		if err != nil {
			s.sink.ShowError(err)
			return
		}
		s.sink.ShowMarked(t)
		inverse = Unmark{Index: c.Index}
	case Unmark:
		t, err := s.list.Unmark(c.Index)
		if err != nil {
			s.sink.ShowError(err)
			return
		}
		s.sink.ShowUnmarked(t)
		inverse = Mark{Index: c.Index}
	case Delete:
		removed, err := s.list.Remove(c.Index)
		if err != nil {
			s.sink.ShowError(err)
			return
		}
		s.sink.ShowRemoved(removed, s.list.Len())
		s.archiveRemoved(removed)
		inverse = Insert{Index: c.Index, Task: removed}
	case Insert:
		if err := s.list.Insert(c.Index, c.Task); err != nil {
			s.sink.ShowError(err)
			return
		}
		s.sink.ShowAdded(c.Task, s.list.Len())
		inverse = Delete{Index: c.Index}
	}

	if record {
		s.history = append(s.history, inverse)
	}
	s.save()
}

// undo pops the recorded inverse and applies it without recording, so a
// second undo does not bounce the change back.
func (s *Session) undo() {
	if len(s.history) == 0 {
		s.sink.ShowMessage("Nothing to undo.")
		return
	}
	inverse := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.sink.ShowMessage("Undoing the last change:")
	s.mutate(inverse, false)
}

func (s *Session) save() {
	if err := s.store.Save(s.list.Tasks()); err != nil {
		s.sink.ShowError(fmt.Errorf("saving tasks failed, your change may not persist: %w", err))
	}
}

func (s *Session) archiveRemoved(t task.Task) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Add(t); err != nil {
		s.sink.ShowError(fmt.Errorf("archiving deleted task failed: %w", err))
	}
}

func (s *Session) showTrash() {
	if s.archive == nil {
		s.sink.ShowMessage("The trash archive is disabled.")
		return
	}
	entries, err := s.archive.Recent(trashListLimit)
	if err != nil {
		s.sink.ShowError(fmt.Errorf("reading the trash archive failed: %w", err))
		return
	}
	s.sink.ShowTrash(entries)
}
