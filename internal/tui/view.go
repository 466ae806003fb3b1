package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/models"
)

const barWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Agenda semanal"),
		m.viewProgress(),
		m.viewGrid(),
	}

	switch m.mode {
	case ModeGrid:
		sections = append(sections, m.viewDetail())
	case ModeEditing:
		label := fmt.Sprintf("%s %s: ", m.day, m.slot)
		sections = append(sections, label+m.input.View())
	case ModePriority, ModeFilter:
		if m.form != nil {
			sections = append(sections, m.form.View())
		}
	}

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewProgress() string {
	p := m.week.Progress()
	filled := p.Percent * barWidth / 100
	bar := barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	filter := constants.LabelAllPriorities
	if f := m.week.Filter(); f != models.PriorityNone {
		filter = string(f)
	}
	return fmt.Sprintf("%s  %s %d%%  (%d/%d)   %s: %s",
		constants.LabelProgress, bar, p.Percent, p.Done, p.Total, constants.LabelNoPriority, filter)
}

// viewDetail describes the selected cell below the grid.
func (m Model) viewDetail() string {
	parts := []string{m.day.Label(), m.slot.Label()}
	if m.week.Visible(m.day, m.slot) {
		e := m.week.Entry(m.day, m.slot)
		if e.Priority != models.PriorityNone {
			parts = append(parts, string(e.Priority))
		}
		if e.Done {
			parts = append(parts, constants.LabelDone)
		}
	}
	return detailStyle.Render(strings.Join(parts, " · "))
}

// cellText is what a visible cell shows; hidden cells stay empty in place.
func (m Model) cellText(day models.Day, slot models.Slot) string {
	if !m.week.Visible(day, slot) {
		return ""
	}
	e := m.week.Entry(day, slot)
	if e.Blank() {
		if day == m.day && slot == m.slot {
			return constants.LabelPlaceholder
		}
		return placeholderStyle.Render(constants.LabelPlaceholder)
	}

	text := truncate(strings.TrimSpace(e.Text), cellWidth-2)
	if e.Done {
		return doneStyle.Render(text)
	}
	return text
}

func (m Model) viewGrid() string {
	headers := []string{""}
	for _, d := range models.Days() {
		headers = append(headers, d.Label())
	}

	rows := make([][]string, 0, models.SlotsPerDay)
	for _, sl := range models.Slots() {
		row := []string{sl.Label()}
		for _, d := range models.Days() {
			row = append(row, m.cellText(d, sl))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return slotStyle
			}
			day, slot := models.Day(col-1), models.Slot(row)
			selected := day == m.day && slot == m.slot
			p := models.PriorityNone
			if m.week.Visible(day, slot) {
				p = m.week.Entry(day, slot).Priority
			}
			return cellStyleFor(p, selected)
		}).
		Render()
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
