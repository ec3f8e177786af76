// Package ui renders session output, either as framed console text or
// through an interactive terminal UI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dudu/internal/task"
	"dudu/internal/trash"
)

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Console writes word-wrapped, framed blocks to a writer, one block per
// session response.
type Console struct {
	w     io.Writer
	width int
}

func NewConsole(w io.Writer, width int) *Console {
	if width <= 0 {
		width = 72
	}
	return &Console{w: w, width: width}
}

func (c *Console) ShowWelcome() { c.block(welcomeText) }
func (c *Console) ShowGoodbye() { c.block(goodbyeText) }

func (c *Console) ShowList(tasks []task.Task) { c.block(renderList(tasks)) }

func (c *Console) ShowAdded(t task.Task, total int) { c.block(renderAdded(t, total)) }

func (c *Console) ShowMarked(t task.Task) { c.block(renderMarked(t)) }
func (c *Console) ShowUnmarked(t task.Task) { c.block(renderUnmarked(t)) }

func (c *Console) ShowRemoved(t task.Task, total int) { c.block(renderRemoved(t, total)) }

func (c *Console) ShowFound(matches []task.Task) { c.block(renderFound(matches)) }

func (c *Console) ShowTrash(entries []trash.Entry) { c.block(renderTrash(entries)) }

func (c *Console) ShowMessage(msg string) { c.block(msg) }

func (c *Console) ShowError(err error) {
	c.block(errorStyle.Render(Wrap(err.Error(), c.width)))
}

func (c *Console) block(text string) {
	divider := dividerStyle.Render(strings.Repeat("_", c.width))
	fmt.Fprintf(c.w, "%s\n%s\n%s\n", divider, Wrap(text, c.width), divider)
}
