package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/agenda/internal/export"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.mode {
	case ModeEditing:
		return m.updateEditing(msg)
	case ModePriority, ModeFilter:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleGridKey(msg)
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.slot > 0 {
			m.slot--
		}
	case key.Matches(msg, m.keys.Down):
		if int(m.slot) < models.SlotsPerDay-1 {
			m.slot++
		}
	case key.Matches(msg, m.keys.Left):
		if m.day > 0 {
			m.day--
		}
	case key.Matches(msg, m.keys.Right):
		if int(m.day) < models.DaysPerWeek-1 {
			m.day++
		}

	case key.Matches(msg, m.keys.Filter):
		choice := m.week.Filter()
		m.choice = &choice
		m.form = newFilterForm(m.choice)
		m.mode = ModeFilter
		return m, m.form.Init()
	case key.Matches(msg, m.keys.ClearFilter):
		m.week.SetFilter(models.PriorityNone)
	case key.Matches(msg, m.keys.Reset):
		m.week.Reset()
		m.status = "Semana reiniciada"
	case key.Matches(msg, m.keys.Export):
		m.status = m.export()
	}

	// Cells hidden by the filter have no controls.
	if !m.week.Visible(m.day, m.slot) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		m.input.SetValue(m.week.Entry(m.day, m.slot).Text)
		m.input.CursorEnd()
		m.mode = ModeEditing
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		m.week.ToggleDone(m.day, m.slot)
	case key.Matches(msg, m.keys.Priority):
		choice := m.week.Entry(m.day, m.slot).Priority
		m.choice = &choice
		m.form = newPriorityForm(m.choice)
		m.mode = ModePriority
		return m, m.form.Init()
	case key.Matches(msg, m.keys.SetPriority):
		m.week.SetPriority(m.day, m.slot, digitPriority(msg.String()))
	}
	return m, nil
}

// digitPriority maps 0 to none and 1..3 to the levels in selector order.
func digitPriority(s string) models.Priority {
	n := int(s[0] - '0')
	if n <= 0 || n > len(models.Priorities) {
		return models.PriorityNone
	}
	return models.Priorities[n-1]
}

// updateEditing forwards keys to the text input and stores every change as
// it happens.
func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Close) {
		m.input.Blur()
		m.mode = ModeGrid
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.week.SetText(m.day, m.slot, after)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.mode == ModeFilter {
			m.week.SetFilter(*m.choice)
		} else {
			m.week.SetPriority(m.day, m.slot, *m.choice)
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.choice = nil
	m.mode = ModeGrid
}

func (m Model) export() string {
	path, err := export.ToFile(m.opts.ExportDir, m.week.Schedule(), m.week.Filter(), m.opts.Now())
	if err != nil {
		logger.Warn("Export failed", "error", err)
		return fmt.Sprintf("Export failed: %v", err)
	}
	return "Exported: " + path
}
