package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateAdd handles the task-creation form. A blank name after trimming
// makes the save inert: no task, no navigation, no error message.
func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.input.SetValue("")
		m.nav.Pop()
		return m, nil

	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}
		if added, err := m.store.Add(name); err != nil {
			m.fail("add task", err)
		} else {
			m.cursor = m.store.Len() - 1
			m.logger.Info("task added", "id", added.ID)
		}
		m.input.SetValue("")
		m.nav.Pop()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) viewAdd() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("New task") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.theme.Help.Render("enter save · esc cancel"))
	return m.theme.Input.Render(b.String())
}
