package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/agenda/internal/cli"
	"github.com/julianstephens/agenda/internal/errors"
	"github.com/julianstephens/agenda/internal/logger"
)

func main() {
	var grammar cli.CLI
	ctx := kong.Parse(&grammar,
		kong.Name("agenda"),
		kong.Description("Weekly planner: seven days, nine time slots, one task per slot."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		cli.Vars(),
	)

	if err := logger.Init(logger.Config{
		Debug:     grammar.Debug,
		ConfigDir: cli.ConfigDir(grammar.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx := cli.NewContext(grammar.Config)
	err := ctx.Run(appCtx)
	if closeErr := appCtx.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}
