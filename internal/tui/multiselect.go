package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MultiSelectModel is a checkbox-list prompt. Confirming with nothing
// checked is the "exit" gesture, matching the menus this tool grew up with.
type MultiSelectModel struct {
	title  string
	items  []string
	styles Styles

	cursor  int
	checked map[int]bool
	done    bool
	aborted bool
}

// NewMultiSelectModel creates a checkbox prompt over items.
func NewMultiSelectModel(title string, items []string, styles Styles) MultiSelectModel {
	return MultiSelectModel{title: title, items: items, styles: styles, checked: make(map[int]bool)}
}

func (m MultiSelectModel) Init() tea.Cmd { return nil }

// Update handles navigation and toggling.
func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
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
	case " ", "x":
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "a":
		for i := range m.items {
			m.checked[i] = true
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the checkbox list.
func (m MultiSelectModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("? " + m.title))
	sb.WriteString("\n")
	for i, item := range m.items {
		mark := "[ ]"
		style := m.styles.Body
		if m.checked[i] {
			mark = "[x]"
			style = m.styles.Selected
		}
		line := fmt.Sprintf("%s %s", mark, item)
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render("> " + line))
		} else {
			sb.WriteString(style.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render("(space to toggle, a for all, enter to confirm, esc to go back)"))
	sb.WriteString("\n")
	return sb.String()
}

// Checked returns the checked indices in item order.
func (m MultiSelectModel) Checked() []int {
	out := make([]int, 0, len(m.checked))
	for i := range m.items {
		if m.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Aborted reports whether the operator backed out.
func (m MultiSelectModel) Aborted() bool { return m.aborted }
