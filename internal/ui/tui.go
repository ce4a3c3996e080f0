// Package ui provides the full-screen terminal task browser.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/service"
	"todo/internal/task"
)

// ErrNotTTY is returned by Run when the output is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// Run starts the browser over svc and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, svc service.Service, in io.Reader, out io.Writer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}
	program := tea.NewProgram(NewModel(svc),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

// Model is the bubbletea model for the browser.
type Model struct {
	svc    service.Service
	tasks  []*task.Task
	cursor int
	mode   mode
	input  []rune
	status string
}

// NewModel returns a model showing the current contents of svc.
func NewModel(svc service.Service) *Model {
	m := &Model{svc: svc}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == modeAdd {
		return m.updateAdd(key)
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case " ", "x":
		m.toggle()
	case "d":
		m.deleteSelected()
	case "a":
		m.mode = modeAdd
		m.input = m.input[:0]
		m.status = ""
	}
	return m, nil
}

func (m *Model) updateAdd(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input = m.input[:0]
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m *Model) submit() {
	t, err := m.svc.Add(string(m.input), nil)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.mode = modeBrowse
	m.input = m.input[:0]
	m.status = fmt.Sprintf("Added task %d.", t.ID())
	m.refresh()
	m.cursor = len(m.tasks) - 1
}

func (m *Model) toggle() {
	t := m.selected()
	if t == nil {
		return
	}
	mark := m.svc.MarkComplete
	if t.Completed() {
		mark = m.svc.MarkIncomplete
	}
	if _, err := mark(t.ID()); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = ""
	m.refresh()
}

func (m *Model) deleteSelected() {
	t := m.selected()
	if t == nil {
		return
	}
	deleted, err := m.svc.Delete(t.ID())
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if !deleted {
		m.status = fmt.Sprintf("Error: task %d not found", t.ID())
	} else {
		m.status = fmt.Sprintf("Deleted task %d.", t.ID())
	}
	m.refresh()
}

func (m *Model) selected() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// refresh reloads the task list and keeps the cursor in range.
func (m *Model) refresh() {
	m.tasks = m.svc.List()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	title := "Todo"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks found.\n")
	}
	for i, t := range m.tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
		}
		b.WriteString(pointer + t.String() + "\n")
	}
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString("New task: " + string(m.input) + "_\n")
		b.WriteString("enter add | esc cancel\n")
	} else {
		b.WriteString("a add | space toggle | d delete | q quit\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	return b.String()
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
