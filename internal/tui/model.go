// Package tui implements the interactive task list: a bubbletea model
// with a view mode, three input modes and the test-and-commit action.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jnord/tcrdo/internal/store"
	"github.com/jnord/tcrdo/internal/vcs"
)

// Config holds everything the model needs at startup.
type Config struct {
	// TaskFile is the markdown task list path.
	TaskFile string

	// ExportFile is the JSON export path.
	ExportFile string

	// TestCommand seeds the in-session test command.
	TestCommand string

	// Dir is the working directory for git operations.
	Dir string

	// Logger receives mutation and failure logs. Required.
	Logger *log.Logger
}

// Model is the main bubbletea model.
type Model struct {
	tasks    store.List
	selected int

	mode        Mode
	input       textinput.Model
	testCommand string

	taskFile   string
	exportFile string
	git        *vcs.Client
	logger     *log.Logger

	status   string
	statusOK bool
	quitting bool

	width  int
	height int
	keys   KeyMap
	help   help.Model
}

// New loads the task file and builds the initial model.
func New(cfg Config) (Model, error) {
	tasks, err := store.Load(cfg.TaskFile)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	return Model{
		tasks:       tasks,
		mode:        ModeView,
		input:       ti,
		testCommand: cfg.TestCommand,
		taskFile:    cfg.TaskFile,
		exportFile:  cfg.ExportFile,
		git:         vcs.New(dir),
		logger:      cfg.Logger,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}, nil
}

// Tasks returns a copy of the current task list.
func (m Model) Tasks() store.List {
	out := make(store.List, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Each key event maps to one atomic state
// transition; unrecognized keys fall through with no effect.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		// Status messages are transient; any key clears the previous one.
		m.status = ""
		if m.mode.IsInput() {
			return m.updateInput(msg)
		}
		return m.updateView(msg)

	case tcrDoneMsg:
		return m.finishTCR(msg), nil
	}

	return m, nil
}

// updateView routes view-mode keys.
func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keys.Add):
		m.enterInput(ModeAdd, "")

	case key.Matches(msg, m.keys.Edit):
		if len(m.tasks) > 0 {
			m.enterInput(ModeEdit, m.tasks[m.selected].Description)
		}

	case key.Matches(msg, m.keys.SetCommand):
		m.enterInput(ModeSetCommand, m.testCommand)

	case key.Matches(msg, m.keys.Toggle):
		if len(m.tasks) > 0 {
			m.tasks.CycleStatus(m.selected)
			if m.persist() {
				t := m.tasks[m.selected]
				m.logger.Info("cycled status", "task", t.Description, "status", t.Status)
			}
		}

	case key.Matches(msg, m.keys.Export):
		m.exportTasks()

	case key.Matches(msg, m.keys.Test):
		return m.startTCR()
	}

	return m, nil
}

// updateInput routes keys while one of the input modes is active.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.confirmInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// enterInput switches to an input mode with the buffer seeded.
func (m *Model) enterInput(mode Mode, seed string) {
	m.mode = mode
	m.input.SetValue(seed)
	m.input.CursorEnd()
	m.input.Focus()
}

// leaveInput returns to view mode, discarding the buffer.
func (m *Model) leaveInput() {
	m.mode = ModeView
	m.input.Blur()
	m.input.Reset()
}

// confirmInput applies the buffer according to the active mode. A failed
// add or edit keeps the input mode active so the text can be corrected.
func (m *Model) confirmInput() {
	value := m.input.Value()

	switch m.mode {
	case ModeAdd:
		if err := m.tasks.Add(value); err != nil {
			m.warn(err)
			return
		}
		m.selected = clamp(m.selected, len(m.tasks))
		if m.persist() {
			m.logger.Info("added task", "task", value)
			m.setStatus("added %q", value)
		}

	case ModeEdit:
		if err := m.tasks.Edit(m.selected, value); err != nil {
			m.warn(err)
			return
		}
		if m.persist() {
			m.logger.Info("edited task", "task", value)
			m.setStatus("updated task")
		}

	case ModeSetCommand:
		// Any text, including whitespace, is accepted verbatim.
		m.testCommand = value
		m.logger.Info("set test command", "command", value)
		m.setStatus("test command set")
	}

	m.leaveInput()
}

// deleteSelected removes the selected task and clamps the selection.
func (m *Model) deleteSelected() {
	if len(m.tasks) == 0 {
		return
	}
	desc := m.tasks[m.selected].Description
	m.tasks.Remove(m.selected)
	m.selected = clamp(m.selected, len(m.tasks))
	if m.persist() {
		m.logger.Info("deleted task", "task", desc)
		m.setStatus("deleted %q", desc)
	}
}

// exportTasks writes the JSON export file.
func (m *Model) exportTasks() {
	if err := store.Export(m.exportFile, m.tasks); err != nil {
		m.fail(err)
		return
	}
	m.logger.Info("exported tasks", "path", m.exportFile, "count", len(m.tasks))
	m.setStatus("exported %d tasks to %s", len(m.tasks), m.exportFile)
}

// persist rewrites the task file. A write failure aborts the calling
// operation with a visible diagnostic; the in-memory list keeps the
// mutation so nothing typed is lost.
func (m *Model) persist() bool {
	if err := store.Save(m.taskFile, m.tasks); err != nil {
		m.fail(err)
		return false
	}
	return true
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusOK = true
}

func (m *Model) warn(err error) {
	var msg string
	if errors.Is(err, store.ErrEmptyDescription) {
		msg = "description cannot be empty"
	} else {
		msg = err.Error()
	}
	m.status = msg
	m.statusOK = false
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.statusOK = false
	m.logger.Error("operation failed", "err", err)
}

// clamp keeps a selection index inside [0, n-1], or 0 for an empty list.
func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
