package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ProfileLoadedMsg:
		m.profile = msg.Profile
		m.initSliders()
		m.loading = true
		return m, analyzeCmd(m.engine, m.whatIfProfile(), m.mode)

	case AnalysisCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.report = msg.Report
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "down", "j":
		m.focus = (m.focus + 1) % focusCount
		return m, nil

	case "shift+tab", "up", "k":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil

	case "left", "h":
		return m.adjustFocused(false)

	case "right", "l":
		return m.adjustFocused(true)

	case "r":
		// Reload the profile from disk, discarding what-if edits.
		m.loading = true
		return m, loadProfileCmd(m.profilePath)
	}

	return m, nil
}

// adjustFocused steps the focused slider and reruns the analysis.
func (m Model) adjustFocused(up bool) (tea.Model, tea.Cmd) {
	s := m.sliders[m.focus]
	if s == nil || m.profile == nil {
		return m, nil
	}
	if up {
		s.Increment()
	} else {
		s.Decrement()
	}
	m.loading = true
	return m, analyzeCmd(m.engine, m.whatIfProfile(), m.mode)
}
