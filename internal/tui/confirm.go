package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no prompt.
type ConfirmModel struct {
	title  string
	styles Styles

	value   bool
	done    bool
	aborted bool
}

// NewConfirmModel creates a confirm prompt with a default answer.
func NewConfirmModel(title string, def bool, styles Styles) ConfirmModel {
	return ConfirmModel{title: title, styles: styles, value: def}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update handles y/n/enter.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.value = !m.value
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt with the pending answer highlighted.
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := "yes", "no"
	if m.value {
		yes = m.styles.Cursor.Render("[yes]")
		no = m.styles.Muted.Render(" no ")
	} else {
		yes = m.styles.Muted.Render(" yes ")
		no = m.styles.Cursor.Render("[no]")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("? " + m.title))
	sb.WriteString("  ")
	sb.WriteString(yes)
	sb.WriteString(" / ")
	sb.WriteString(no)
	sb.WriteString("\n")
	return sb.String()
}

// Value returns the answer.
func (m ConfirmModel) Value() bool { return m.value }

// Aborted reports whether the operator backed out.
func (m ConfirmModel) Aborted() bool { return m.aborted }
