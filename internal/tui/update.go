package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input; anything not bound goes to the focused field
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.ToggleSenior):
		m.isSenior = !m.isSenior
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.ToggleVDA):
		m.hasVDA = !m.hasVDA
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.isSenior, m.hasVDA, m.capitalGains = false, false, nil
		m.recompute()
		return m, m.setFocus(0)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}
