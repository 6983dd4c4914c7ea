package tui

import (
	"os"
	"strconv"
	"strings"

	"babysched/internal/analyzer"
	"babysched/internal/sample"
	"babysched/internal/watch"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewDays   ViewMode = iota // per-day event table
	ViewHidden                 // hidden-events summary
)

// ModelOptions configures the initial TUI state
type ModelOptions struct {
	// Source is the log file to analyze and watch; empty uses the
	// built-in sample data
	Source string

	// Options are the analysis options (threshold, window, hiding)
	Options analyzer.Options

	// Theme is the catppuccin theme name
	Theme string
}

// Model represents the application state
type Model struct {
	// Core state
	source   string
	opts     analyzer.Options
	report   *analyzer.Report
	watcher  *watch.Watcher
	viewMode ViewMode

	// UI components
	dayTable    table.Model
	hiddenTable table.Model
	styles      styles

	// UI dimensions
	width  int
	height int

	// Error state
	err error
}

// NewModel creates a new Model with initialized state
func NewModel(opts ModelOptions) Model {
	m := Model{
		source:   opts.Source,
		opts:     opts.Options,
		viewMode: ViewDays,
		styles:   newStyles(opts.Theme),
	}

	if opts.Source != "" {
		if w, err := watch.New(opts.Source); err == nil {
			m.watcher = w
			w.Start()
		}
	}

	m.dayTable = table.New(table.WithFocused(true), table.WithStyles(m.styles.table))
	m.hiddenTable = table.New(table.WithStyles(m.styles.table))

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.analyzeCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.watchCmd())
	}
	return tea.Batch(cmds...)
}

// Message types
type (
	reportMsg *analyzer.Report // analysis finished
	reloadMsg struct{}         // watched file changed
	errMsg    struct{ error }  // analysis or watcher error
)

// analyzeCmd reads the source and runs the analysis pipeline
func (m Model) analyzeCmd() tea.Cmd {
	source := m.source
	opts := m.opts
	return func() tea.Msg {
		data, err := readSource(source)
		if err != nil {
			return errMsg{err}
		}
		rep, err := analyzer.Analyze(data, opts)
		if err != nil {
			return errMsg{err}
		}
		return reportMsg(rep)
	}
}

// watchCmd returns a command that waits for the next file change
func (m Model) watchCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.watcher.Events:
			return reloadMsg{}
		case err := <-m.watcher.Errors:
			return errMsg{err}
		}
	}
}

// readSource loads the log text to analyze
func readSource(source string) (string, error) {
	if source == "" {
		return sample.Data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// rebuildTables regenerates both table components from the report
func (m Model) rebuildTables() Model {
	if m.report == nil {
		return m
	}

	m.dayTable = table.New(
		table.WithColumns(m.dayColumns()),
		table.WithRows(m.dayRows()),
		table.WithFocused(true),
		table.WithStyles(m.styles.table),
	)

	hiddenRows := make([]table.Row, 0, len(m.report.Hidden))
	for _, h := range m.report.Hidden {
		hiddenRows = append(hiddenRows, table.Row{h.Label, strconv.Itoa(h.Count)})
	}
	m.hiddenTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Event", Width: 24},
			{Title: "Total Count", Width: 12},
		}),
		table.WithRows(hiddenRows),
		table.WithStyles(m.styles.table),
	)

	return m.resizeTables()
}

// dayColumns sizes one column per regular event plus Date and Other
func (m Model) dayColumns() []table.Column {
	columns := make([]table.Column, 0, len(m.report.Columns)+2)

	dateWidth := len("Date")
	for _, row := range m.report.Rows {
		if w := len(row.ShortDate()); w > dateWidth {
			dateWidth = w
		}
	}
	columns = append(columns, table.Column{Title: "Date", Width: dateWidth})

	for _, label := range m.report.Columns {
		w := len(label)
		if w < 3 {
			w = 3
		}
		columns = append(columns, table.Column{Title: label, Width: w})
	}

	otherWidth := len("Other")
	for _, row := range m.report.Rows {
		if w := len(condenseOther(row.Other)); w > otherWidth {
			otherWidth = w
		}
	}
	if otherWidth > 48 {
		otherWidth = 48
	}
	columns = append(columns, table.Column{Title: "Other", Width: otherWidth})

	return columns
}

// dayRows builds single-line table rows; the full aligned Other block
// for the selected day is shown in the detail pane instead
func (m Model) dayRows() []table.Row {
	rows := make([]table.Row, 0, len(m.report.Rows))
	for _, row := range m.report.Rows {
		cells := make(table.Row, 0, len(m.report.Columns)+2)
		cells = append(cells, row.ShortDate())
		for _, c := range row.Counts {
			cells = append(cells, strconv.Itoa(c))
		}
		cells = append(cells, condenseOther(row.Other))
		rows = append(rows, cells)
	}
	return rows
}

// condenseOther flattens the multi-line aligned Other block into one line
func condenseOther(other string) string {
	if other == "" {
		return ""
	}
	lines := strings.Split(other, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " | ")
}

// resizeTables updates table dimensions based on terminal size
func (m Model) resizeTables() Model {
	// Reserve space for header (1), tabs (1), detail pane (6), help (1),
	// margins (2)
	tableHeight := m.height - 11
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.dayTable.SetHeight(tableHeight)
	m.hiddenTable.SetHeight(tableHeight)
	if m.width > 4 {
		m.dayTable.SetWidth(m.width - 2)
		m.hiddenTable.SetWidth(m.width - 2)
	}

	return m
}

// selectedRow returns the report row under the cursor, or nil
func (m Model) selectedRow() *analyzer.Row {
	if m.report == nil || len(m.report.Rows) == 0 {
		return nil
	}
	idx := m.dayTable.Cursor()
	if idx < 0 || idx >= len(m.report.Rows) {
		return nil
	}
	return &m.report.Rows[idx]
}
