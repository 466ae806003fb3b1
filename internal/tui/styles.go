package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/agenda/internal/models"
)

const cellWidth = 16

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(cellWidth).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Faint(true)

	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var priorityColors = map[models.Priority]lipgloss.Color{
	models.PriorityHigh:   lipgloss.Color("196"),
	models.PriorityMedium: lipgloss.Color("220"),
	models.PriorityLow:    lipgloss.Color("42"),
}

// cellStyleFor colours a cell by priority and highlights the cursor.
func cellStyleFor(p models.Priority, selected bool) lipgloss.Style {
	s := cellStyle
	if c, ok := priorityColors[p]; ok {
		s = s.Foreground(c)
	}
	if selected {
		s = s.Reverse(true).Bold(true)
	}
	return s
}
