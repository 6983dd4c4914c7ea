// Package render produces plain-text tables for the non-interactive
// print mode.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"babysched/internal/analyzer"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	countStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	noteStyle   = lipgloss.NewStyle().Bold(true)
)

// Report renders the day table and, when present, the hidden-events
// summary below it.
func Report(rep *analyzer.Report) string {
	if len(rep.Rows) == 0 {
		return "No events found.\n"
	}

	var b strings.Builder
	b.WriteString(dayTable(rep))
	b.WriteString("\n")

	if len(rep.Hidden) > 0 {
		b.WriteString("\n")
		b.WriteString(noteStyle.Render("Hidden Events (no occurrences in the last days)"))
		b.WriteString("\n")
		b.WriteString(hiddenTable(rep.Hidden))
		b.WriteString("\n")
	}

	return b.String()
}

// dayTable renders one row per date: the short date, one count cell per
// regular event, and the pre-aligned Other block
func dayTable(rep *analyzer.Report) string {
	headers := make([]string, 0, len(rep.Columns)+2)
	headers = append(headers, "Date")
	headers = append(headers, rep.Columns...)
	headers = append(headers, "Other")

	rows := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.ShortDate())
		for _, c := range row.Counts {
			cells = append(cells, strconv.Itoa(c))
		}
		cells = append(cells, row.Other)
		rows = append(rows, cells)
	}

	lastCol := len(headers) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0 && col < lastCol:
				return countStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

// hiddenTable renders the stale-event summary
func hiddenTable(hidden []analyzer.HiddenEvent) string {
	rows := make([][]string, 0, len(hidden))
	for _, h := range hidden {
		rows = append(rows, []string{h.Label, strconv.Itoa(h.Count)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return countStyle
			default:
				return cellStyle
			}
		}).
		Headers("Event", "Total Count").
		Rows(rows...).
		Render()
}
