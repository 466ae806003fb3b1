package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/agenda/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	week, err := ctx.Week()
	if err != nil {
		return err
	}

	// Snapshot file stores once per session, after a successful load.
	ctx.AutoBackup()

	model := tui.New(week, tui.Options{
		ExportDir: ExportDir(ctx.Config),
		Now:       ctx.Now,
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
