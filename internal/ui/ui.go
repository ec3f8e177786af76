package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dudu/internal/command"
	"dudu/internal/task"
	"dudu/internal/trash"
)

const transcriptLimit = 8

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Faint(true)
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// recorder collects rendered session output so the Update loop can append it
// to the transcript after each command.
type recorder struct {
	blocks []string
}

func (r *recorder) take() []string {
	blocks := r.blocks
	r.blocks = nil
	return blocks
}

func (r *recorder) add(text string) { r.blocks = append(r.blocks, text) }

func (r *recorder) ShowWelcome() { r.add(welcomeText) }
func (r *recorder) ShowGoodbye() { r.add(goodbyeText) }
func (r *recorder) ShowList(tasks []task.Task) { r.add(renderList(tasks)) }
func (r *recorder) ShowAdded(t task.Task, total int) { r.add(renderAdded(t, total)) }
func (r *recorder) ShowMarked(t task.Task) { r.add(renderMarked(t)) }
func (r *recorder) ShowUnmarked(t task.Task) { r.add(renderUnmarked(t)) }
func (r *recorder) ShowRemoved(t task.Task, total int) { r.add(renderRemoved(t, total)) }
func (r *recorder) ShowFound(matches []task.Task) { r.add(renderFound(matches)) }
func (r *recorder) ShowTrash(entries []trash.Entry) { r.add(renderTrash(entries)) }
func (r *recorder) ShowMessage(msg string) { r.add(msg) }
func (r *recorder) ShowError(err error) { r.add(errorStyle.Render(err.Error())) }

// Model is the interactive terminal UI: a task pane on top, a transcript of
// recent responses, and a command prompt that feeds the same session the
// plain console mode uses.
type Model struct {
	session    *command.Session
	rec        *recorder
	input      textinput.Model
	transcript []string
	status     string
}

// RunTUI attaches an interactive UI to the session and blocks until the user
// leaves with bye, esc, or ctrl+c.
func RunTUI(session *command.Session) error {
	rec := &recorder{}
	session.SetSink(rec)

	ti := textinput.New()
	ti.Placeholder = "type a command, e.g. todo read book"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	m := Model{
		session:    session,
		rec:        rec,
		input:      ti,
		transcript: []string{welcomeText},
		status:     "Type help for the command list.",
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	done := m.session.Run(line)
	m.transcript = append(m.transcript, promptStyle.Render("> "+line))
	m.transcript = append(m.transcript, m.rec.take()...)
	if len(m.transcript) > transcriptLimit {
		m.transcript = m.transcript[len(m.transcript)-transcriptLimit:]
	}
	m.status = fmt.Sprintf("%d %s in the list", m.session.List().Len(), plural(m.session.List().Len(), "task"))
	if done {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("dudu"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskPane())
	b.WriteString("\n---\n")
	b.WriteString(strings.Join(m.transcript, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(m.status + " • enter to run • esc to quit"))

	return b.String()
}

func (m Model) renderTaskPane() string {
	tasks := m.session.List().Tasks()
	if len(tasks) == 0 {
		return "No tasks yet. Try: todo read book"
	}
	var b strings.Builder
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, t)
		if t.Done {
			line = doneStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
