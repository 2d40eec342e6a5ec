package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectModel is a single-choice list prompt.
type SelectModel struct {
	title  string
	items  []string
	styles Styles

	cursor  int
	choice  int
	done    bool
	aborted bool
}

// NewSelectModel creates a list prompt over items.
func NewSelectModel(title string, items []string, styles Styles) SelectModel {
	return SelectModel{title: title, items: items, styles: styles, choice: -1}
}

func (m SelectModel) Init() tea.Cmd { return nil }

// Update handles navigation keys.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = m.cursor
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the list.
func (m SelectModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("? " + m.title))
	sb.WriteString("\n")
	for i, item := range m.items {
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render(fmt.Sprintf("> %s", item)))
		} else {
			sb.WriteString(m.styles.Body.Render(fmt.Sprintf("  %s", item)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render("(up/down to move, enter to choose, esc to go back)"))
	sb.WriteString("\n")
	return sb.String()
}

// Choice returns the selected index, or -1 when aborted.
func (m SelectModel) Choice() int {
	if m.aborted {
		return -1
	}
	return m.choice
}

// Aborted reports whether the operator backed out.
func (m SelectModel) Aborted() bool { return m.aborted }
