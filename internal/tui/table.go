package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows with padded columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given title and headers.
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	total := 0
	for i, h := range t.Headers {
		sb.WriteString(styles.Bold.Render(pad(h, widths[i])))
		total += widths[i]
		if i < len(t.Headers)-1 {
			sb.WriteString(styles.Muted.Render("  "))
			total += 2
		}
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			sb.WriteString(styles.Body.Render(pad(cell, widths[i])))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
