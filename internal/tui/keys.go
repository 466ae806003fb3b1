package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/julianstephens/agenda/internal/constants"
)

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Edit        key.Binding
	Toggle      key.Binding
	Priority    key.Binding
	SetPriority key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Reset       key.Binding
	Export      key.Binding
	Help        key.Binding
	Quit        key.Binding
	Close       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Priority, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Toggle, k.Priority, k.SetPriority},
		{k.Filter, k.ClearFilter, k.Reset, k.Export},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "earlier slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "later slot"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle done"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		SetPriority: key.NewBinding(
			key.WithKeys("0", "1", "2", "3"),
			key.WithHelp("0-3", "none/alta/media/baja"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "show all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", constants.LabelReset),
		),
		Export: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", constants.LabelExport),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
	}
}
