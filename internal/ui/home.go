package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/task"
)

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Tasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quitting")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(tasks) {
			if _, err := m.store.ToggleDone(tasks[m.cursor].ID); err != nil {
				m.fail("toggle task", err)
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(tasks) {
			if err := m.store.Remove(tasks[m.cursor].ID); err != nil {
				m.fail("delete task", err)
			} else if m.cursor >= m.store.Len() && m.cursor > 0 {
				m.cursor--
			}
		}

	case key.Matches(msg, m.keys.Add):
		m.input.SetValue("")
		m.input.Focus()
		m.nav.Push(ScreenAdd)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Settings):
		m.nav.Push(ScreenSettings)
	}

	return m, nil
}

func (m *Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("taskpad") + "\n\n")

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.theme.Hint.Render("No tasks yet. Press a to add one.") + "\n")
	} else {
		for i, t := range tasks {
			b.WriteString(m.renderTask(t, i == m.cursor) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render(m.help.View(m.keys)))
	return m.theme.Screen.Render(b.String())
}

func (m *Model) renderTask(t task.Task, selected bool) string {
	checkbox := "[ ]"
	style := m.theme.Item
	if t.Done {
		checkbox = "[x]"
		style = m.theme.ItemDone
	}

	if selected {
		style = style.Background(m.theme.Selected.GetBackground())
	}

	line := style.Render(fmt.Sprintf("%s %s", checkbox, t.Name))
	if selected {
		return m.theme.Cursor.Render("> ") + line
	}
	return "  " + line
}
