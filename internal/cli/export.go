package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/export"
)

type ExportCmd struct {
	Output string `help:"Directory to write into, or '-' for stdout. Defaults to the exports directory next to the storage." short:"o"`
	Filter string `help:"Only print entries with this priority (alta, media, baja)." short:"f"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	filter, err := parseFilter(c.Filter)
	if err != nil {
		return err
	}
	week, err := ctx.Week()
	if err != nil {
		return err
	}

	if c.Output == "-" {
		return export.Write(ctx.Out, week.Schedule(), filter)
	}

	dir := c.Output
	if dir == "" {
		dir = ExportDir(ctx.Config)
	} else if dir, err = expandPath(dir); err != nil {
		return err
	}

	path, err := export.ToFile(dir, week.Schedule(), filter, ctx.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "✓ Week exported: %s\n", path)
	return nil
}

// ExportDir is the default destination for printable copies.
func ExportDir(config string) string {
	return filepath.Join(ConfigDir(config), constants.ExportDirName)
}
