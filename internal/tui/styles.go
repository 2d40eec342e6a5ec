// Package tui implements the interactive prompt session: menus, checkbox
// lists, validated inputs, and tabular rendering.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the prompt components.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Body     lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Body:     lipgloss.NewStyle(),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
