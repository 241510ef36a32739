package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const appAuthor = "the taskpad authors"

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.nav.Pop()

	case key.Matches(msg, m.keys.Toggle):
		m.setTheme(!m.theme.Dark)
	}

	return m, nil
}

// setTheme persists the flag first, then swaps the style set so the
// whole tree re-renders in the new scheme. A failed write leaves the
// theme unchanged.
func (m *Model) setTheme(dark bool) {
	if err := m.prefs.SetBool(ThemeKey, dark); err != nil {
		m.fail("save theme", err)
		return
	}
	m.theme = ThemeFor(dark)
	m.logger.Info("theme changed", "dark", dark)
}

func (m *Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Settings") + "\n\n")

	checkbox := "[ ]"
	if m.theme.Dark {
		checkbox = "[x]"
	}
	b.WriteString(m.theme.Item.Render(fmt.Sprintf("%s Dark theme", checkbox)) + "\n\n")

	b.WriteString(m.theme.Hint.Render(fmt.Sprintf("taskpad %s", m.version)) + "\n")
	b.WriteString(m.theme.Hint.Render("A tiny terminal to-do list.") + "\n")
	b.WriteString(m.theme.Hint.Render("by "+appAuthor) + "\n\n")

	b.WriteString(m.theme.Help.Render("enter toggle · esc back"))
	return m.theme.Screen.Render(b.String())
}
