package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted reports that the operator backed out of a prompt; flows treat
// it as "return to the main menu", not as a failure.
var ErrAborted = errors.New("tui: prompt aborted")

// Prompter asks the operator questions. Flows depend on this interface so
// tests can script answers without a terminal.
type Prompter interface {
	// Select returns the chosen index.
	Select(title string, items []string) (int, error)
	// MultiSelect returns the checked indices in item order.
	MultiSelect(title string, items []string) ([]int, error)
	// Input returns a validated line.
	Input(title, def string, validate Validator) (string, error)
	// Confirm returns a yes/no answer.
	Confirm(title string, def bool) (bool, error)
	// Say prints a line to the operator outside any prompt.
	Say(format string, args ...any)
	// Warn prints a highlighted warning line.
	Warn(format string, args ...any)
	// Render prints a table.
	Render(t *Table)
}

// TerminalPrompter runs each prompt as its own bubbletea program, one
// question at a time, the way the session flows read.
type TerminalPrompter struct {
	Styles Styles
}

// NewTerminalPrompter creates a Prompter with default styles.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{Styles: DefaultStyles()}
}

func (p *TerminalPrompter) run(model tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// Select implements Prompter.
func (p *TerminalPrompter) Select(title string, items []string) (int, error) {
	final, err := p.run(NewSelectModel(title, items, p.Styles))
	if err != nil {
		return -1, err
	}
	m := final.(SelectModel)
	if m.Aborted() {
		return -1, ErrAborted
	}
	return m.Choice(), nil
}

// MultiSelect implements Prompter.
func (p *TerminalPrompter) MultiSelect(title string, items []string) ([]int, error) {
	final, err := p.run(NewMultiSelectModel(title, items, p.Styles))
	if err != nil {
		return nil, err
	}
	m := final.(MultiSelectModel)
	if m.Aborted() {
		return nil, ErrAborted
	}
	return m.Checked(), nil
}

// Input implements Prompter.
func (p *TerminalPrompter) Input(title, def string, validate Validator) (string, error) {
	final, err := p.run(NewInputModel(title, def, validate, p.Styles))
	if err != nil {
		return "", err
	}
	m := final.(InputModel)
	if m.Aborted() {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(title string, def bool) (bool, error) {
	final, err := p.run(NewConfirmModel(title, def, p.Styles))
	if err != nil {
		return false, err
	}
	m := final.(ConfirmModel)
	if m.Aborted() {
		return false, ErrAborted
	}
	return m.Value(), nil
}

// Say implements Prompter.
func (p *TerminalPrompter) Say(format string, args ...any) {
	fmt.Println(p.Styles.Body.Render(fmt.Sprintf(format, args...)))
}

// Warn implements Prompter.
func (p *TerminalPrompter) Warn(format string, args ...any) {
	fmt.Println(p.Styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Render implements Prompter.
func (p *TerminalPrompter) Render(t *Table) {
	fmt.Print(t.View(p.Styles))
}
