package tui

import tea "github.com/charmbracelet/bubbletea"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.resizeTables(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reportMsg:
		m.report = msg
		m.err = nil
		return m.rebuildTables(), nil

	case reloadMsg:
		return m, tea.Batch(m.analyzeCmd(), m.watchCmd())

	case errMsg:
		m.err = msg.error
		if m.watcher != nil {
			// Keep listening so a later file change can recover
			return m, m.watchCmd()
		}
		return m, nil
	}

	return m.updateTables(msg)
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if m.watcher != nil {
			_ = m.watcher.Stop()
		}
		return m, tea.Quit

	case "1":
		m.viewMode = ViewDays
		return m, nil

	case "2":
		m.viewMode = ViewHidden
		return m, nil

	case "h", "l", "tab":
		if m.viewMode == ViewDays {
			m.viewMode = ViewHidden
		} else {
			m.viewMode = ViewDays
		}
		return m, nil

	case "s":
		m.opts.HideStaleEvents = !m.opts.HideStaleEvents
		return m, m.analyzeCmd()

	case "r":
		return m, m.analyzeCmd()
	}

	return m.updateTables(msg)
}

// updateTables forwards navigation messages to the visible table
func (m Model) updateTables(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDays:
		m.dayTable, cmd = m.dayTable.Update(msg)
	case ViewHidden:
		m.hiddenTable, cmd = m.hiddenTable.Update(msg)
	}
	return m, cmd
}
