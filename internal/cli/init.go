package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	p, err := NewProvider(ctx.Config)
	if err != nil {
		return err
	}
	if err := p.Init(); err != nil {
		return err
	}
	ctx.provider = p
	fmt.Fprintf(ctx.Out, "Initialized agenda storage at: %s\n", p.GetConfigPath())
	return nil
}
