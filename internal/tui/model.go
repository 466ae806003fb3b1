// Package tui is the interactive week planner built on bubbletea.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/models"
	"github.com/julianstephens/agenda/internal/schedule"
)

type Mode int

const (
	ModeGrid Mode = iota
	ModeEditing
	ModePriority
	ModeFilter
)

type Options struct {
	// ExportDir receives printable copies written with the export key.
	ExportDir string
	Now       func() time.Time
}

// Model holds only UI state; the week and the filter live in the store.
type Model struct {
	week     *schedule.Store
	opts     Options
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	form     *huh.Form
	choice   *models.Priority
	mode     Mode
	day      models.Day
	slot     models.Slot
	status   string
	quitting bool
	width    int
	height   int
}

func New(week *schedule.Store, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = constants.LabelPlaceholder
	ti.CharLimit = 0 // entries have no length limit
	ti.Width = 40

	return Model{
		week:  week,
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: ti,
		mode:  ModeGrid,
		day:   models.Monday,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Mode() Mode {
	return m.mode
}

// Cursor returns the selected cell.
func (m Model) Cursor() (models.Day, models.Slot) {
	return m.day, m.slot
}

func (m Model) Status() string {
	return m.status
}

func (m Model) ShortHelp() []key.Binding {
	if m.mode == ModeEditing {
		return []key.Binding{m.keys.Close}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	if m.mode == ModeEditing {
		return [][]key.Binding{{m.keys.Close}}
	}
	return m.keys.FullHelp()
}

func newPriorityForm(choice *models.Priority) *huh.Form {
	options := []huh.Option[models.Priority]{huh.NewOption(constants.LabelNoPriority, models.PriorityNone)}
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(string(p), p))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Priority]().
				Title(constants.LabelNoPriority).
				Options(options...).
				Value(choice),
		),
	).WithShowHelp(false)
}

func newFilterForm(choice *models.Priority) *huh.Form {
	options := []huh.Option[models.Priority]{huh.NewOption(constants.LabelAllPriorities, models.PriorityNone)}
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(string(p), p))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Priority]().
				Title("Filtrar por prioridad").
				Options(options...).
				Value(choice),
		),
	).WithShowHelp(false)
}
