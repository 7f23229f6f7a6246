package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var tableStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// maxColumnWidth caps a summary column; longer values are truncated
const maxColumnWidth = 60

// ConversionResult is the outcome of one file in a batch
type ConversionResult struct {
	Input string
	Dest  string
	Err   error
}

// RenderSummary draws a table of batch results, one row per input
func RenderSummary(results []ConversionResult) string {
	headers := []string{"Input", "Output", "Status"}
	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		dest, status := r.Dest, "✓ converted"
		if r.Err != nil {
			dest, status = "-", "✗ "+r.Err.Error()
		}
		rows = append(rows, table.Row{r.Input, dest, status})
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	// no row is selected in a static summary
	ts.Selected = lipgloss.NewStyle()
	t.SetStyles(ts)

	return tableStyle.Render(t.View())
}
