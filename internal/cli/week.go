package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/export"
	"github.com/julianstephens/agenda/internal/models"
)

// CellArgs addresses one cell of the grid.
type CellArgs struct {
	Day  string `arg:"" help:"Day name (Lunes, martes, ...) or number 1-7 starting on Sunday."`
	Slot string `arg:"" help:"Slot label (08:00–09:30), start time (08:00) or number 1-9."`
}

func (a CellArgs) resolve() (models.Day, models.Slot, error) {
	day, ok := models.ParseDay(a.Day)
	if !ok {
		return 0, 0, fmt.Errorf("unknown day %q", a.Day)
	}
	slot, ok := models.ParseSlot(a.Slot)
	if !ok {
		return 0, 0, fmt.Errorf("unknown slot %q", a.Slot)
	}
	return day, slot, nil
}

func parseFilter(s string) (models.Priority, error) {
	if strings.EqualFold(strings.TrimSpace(s), constants.LabelAllPriorities) {
		return models.PriorityNone, nil
	}
	p, ok := models.ParsePriority(s)
	if !ok {
		return models.PriorityNone, fmt.Errorf("unknown priority %q (want alta, media, baja or none)", s)
	}
	return p, nil
}

type ShowCmd struct {
	Filter string `help:"Only show entries with this priority (alta, media, baja)." short:"f"`
}

func (c *ShowCmd) Run(ctx *Context) error {
	filter, err := parseFilter(c.Filter)
	if err != nil {
		return err
	}
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	return export.Write(ctx.Out, week.Schedule(), filter)
}

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	p := week.Progress()
	fmt.Fprintf(ctx.Out, "%s: %d%% (%d/%d)\n", constants.LabelProgress, p.Percent, p.Done, p.Total)
	return nil
}

type SetCmd struct {
	CellArgs
	Text string `arg:"" help:"Task text. Use an empty string to clear it."`
}

func (c *SetCmd) Run(ctx *Context) error {
	day, slot, err := c.resolve()
	if err != nil {
		return err
	}
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	week.SetText(day, slot, c.Text)
	return report(ctx, day, slot)
}

type DoneCmd struct {
	CellArgs
}

func (c *DoneCmd) Run(ctx *Context) error {
	day, slot, err := c.resolve()
	if err != nil {
		return err
	}
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	week.ToggleDone(day, slot)
	return report(ctx, day, slot)
}

type PriorityCmd struct {
	CellArgs
	Level string `arg:"" help:"alta, media, baja or none."`
}

func (c *PriorityCmd) Run(ctx *Context) error {
	day, slot, err := c.resolve()
	if err != nil {
		return err
	}
	level, ok := models.ParsePriority(c.Level)
	if !ok {
		return fmt.Errorf("unknown priority %q (want alta, media, baja or none)", c.Level)
	}
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	week.SetPriority(day, slot, level)
	return report(ctx, day, slot)
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	week, err := ctx.Week()
	if err != nil {
		return err
	}
	week.Reset()
	if err := ctx.SaveErr(); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, "✓ Week cleared")
	return nil
}

// report prints the resulting cell, or the save failure the store swallowed.
func report(ctx *Context, day models.Day, slot models.Slot) error {
	if err := ctx.SaveErr(); err != nil {
		return err
	}
	e := ctx.week.Entry(day, slot)
	cell := export.Cell(e)
	if cell == "" {
		cell = "(empty)"
	}
	fmt.Fprintf(ctx.Out, "%s %s: %s\n", day, slot, cell)
	return nil
}
