package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.err != nil {
		return m.styles.errorText.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderViewTabs())
	b.WriteString("\n")

	switch m.viewMode {
	case ViewDays:
		b.WriteString(m.renderDays())
	case ViewHidden:
		b.WriteString(m.renderHidden())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders the top header bar
func (m Model) renderHeader() string {
	title := m.styles.title.Render("Baby Schedule Analyzer")

	var status string
	switch {
	case m.report == nil:
		status = m.styles.status.Render("analyzing...")
	case len(m.report.Rows) == 0:
		status = m.styles.status.Render("No events found")
	default:
		status = m.styles.status.Render(fmt.Sprintf(
			"%d days | %d regular events | %d hidden",
			len(m.report.Rows),
			len(m.report.Columns),
			len(m.report.Hidden),
		))
	}

	var hideFlag string
	if m.opts.HideStaleEvents {
		hideFlag = m.styles.hideFlag.Render(" [hiding stale]")
	} else {
		hideFlag = m.styles.showFlag.Render(" [showing all]")
	}

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(status) - lipgloss.Width(hideFlag) - 4
	if spacing < 1 {
		spacing = 1
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacing),
		status,
		hideFlag,
	)
}

// renderViewTabs renders the tab bar for view modes
func (m Model) renderViewTabs() string {
	tabs := []struct {
		name string
		mode ViewMode
		key  string
	}{
		{"Days", ViewDays, "1"},
		{"Hidden", ViewHidden, "2"},
	}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%s %s", t.key, t.name)
		if t.mode == m.viewMode {
			rendered[i] = m.styles.activeTab.Render(label)
		} else {
			rendered[i] = m.styles.inactiveTab.Render(label)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	gap := strings.Repeat("─", max(0, m.width-lipgloss.Width(row)-2))

	return row + m.styles.tabGap.Render(gap)
}

// renderDays renders the per-day table with a detail pane for the
// selected day's Other events
func (m Model) renderDays() string {
	var b strings.Builder
	b.WriteString(m.dayTable.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	return b.String()
}

// renderDetail shows the selected day's aligned Other block in full
func (m Model) renderDetail() string {
	row := m.selectedRow()
	if row == nil {
		return m.styles.muted.Render("  (no days)")
	}

	title := m.styles.detailTitle.Render("Other — " + row.ShortDate())
	if row.Other == "" {
		return title + "\n" + m.styles.muted.Render("  (none)")
	}

	return title + "\n" + m.styles.detailBody.Render(row.Other)
}

// renderHidden renders the stale-event summary table
func (m Model) renderHidden() string {
	if m.report == nil || len(m.report.Hidden) == 0 {
		return m.styles.muted.Render("  No hidden events.")
	}
	return m.hiddenTable.View()
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	help := []string{
		"j/k:navigate",
		"1/2:view",
		"tab:switch view",
		"s:toggle stale hiding",
		"r:reload",
		"q:quit",
	}
	return m.styles.help.Render(strings.Join(help, " | "))
}
