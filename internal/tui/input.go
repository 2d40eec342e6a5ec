package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Validator checks a submitted input line. A non-nil error keeps the prompt
// open with the message displayed, so the operator can correct and resubmit.
type Validator func(string) error

// InputModel is a one-line validated text prompt.
type InputModel struct {
	title    string
	styles   Styles
	input    textinput.Model
	validate Validator

	errMsg  string
	done    bool
	aborted bool
}

// NewInputModel creates a text prompt with an optional default value.
func NewInputModel(title, def string, validate Validator, styles Styles) InputModel {
	ti := textinput.New()
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	return InputModel{title: title, styles: styles, input: ti, validate: validate}
}

func (m InputModel) Init() tea.Cmd { return textinput.Blink }

// Update handles editing and submit; invalid values re-prompt inline.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt line plus any validation error.
func (m InputModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("? " + m.title))
	sb.WriteString(" ")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString(m.styles.Error.Render("  " + m.errMsg))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Value returns the submitted line, trimmed.
func (m InputModel) Value() string { return strings.TrimSpace(m.input.Value()) }

// Aborted reports whether the operator backed out.
func (m InputModel) Aborted() bool { return m.aborted }
