package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jnord/tcrdo/internal/store"
)

// Color palette
var (
	primaryColor = lipgloss.Color("205") // Pink
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("78")  // Green
	warningColor = lipgloss.Color("214") // Orange
	errorColor   = lipgloss.Color("196") // Red
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	pendingMarkStyle = lipgloss.NewStyle().Foreground(mutedColor)
	workingMarkStyle = lipgloss.NewStyle().Foreground(warningColor)
	doneMarkStyle    = lipgloss.NewStyle().Foreground(successColor)

	doneTextStyle   = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	emptyStyle      = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(successColor).Padding(0, 1)
	inputTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor).Padding(0, 1)

	statusInfoStyle = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	statusWarnStyle = lipgloss.NewStyle().Foreground(errorColor).Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Padding(0, 1)
)

// statusMark returns the styled checklist marker for a status.
func statusMark(s store.Status) string {
	switch s {
	case store.StatusDone:
		return doneMarkStyle.Render("[x]")
	case store.StatusWorking:
		return workingMarkStyle.Render("[~]")
	default:
		return pendingMarkStyle.Render("[ ]")
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("tcrdo · %s", m.taskFile)))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(emptyStyle.Render("No tasks. Press a to add one."))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		line := fmt.Sprintf("%s %s", statusMark(t.Status), m.taskText(t))
		if i == m.selected {
			cursor = selectedStyle.Render("▶ ")
			line = selectedStyle.Render(fmt.Sprintf("[%s] %s", markerChar(t.Status), t.Description))
		}
		b.WriteString(" " + cursor + line + "\n")
	}
	b.WriteString("\n")

	if m.mode.IsInput() {
		b.WriteString(inputTitleStyle.Render(m.mode.InputTitle()))
		b.WriteString("\n")
		b.WriteString(inputBoxStyle.Width(max(20, m.width-4)).Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := statusWarnStyle
		if m.statusOK {
			style = statusInfoStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.renderHelp()))
	return b.String()
}

func (m Model) taskText(t store.Task) string {
	if t.Status == store.StatusDone {
		return doneTextStyle.Render(t.Description)
	}
	return t.Description
}

func markerChar(s store.Status) string {
	switch s {
	case store.StatusDone:
		return "x"
	case store.StatusWorking:
		return "~"
	default:
		return " "
	}
}

func (m Model) renderHelp() string {
	if m.mode.IsInput() {
		return m.help.View(inputKeyMap{Confirm: m.keys.Confirm, Cancel: m.keys.Cancel})
	}
	return m.help.View(m.keys)
}
