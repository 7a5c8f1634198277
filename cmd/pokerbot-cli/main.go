package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Replay  ReplayCmd        `cmd:"" help:"Drive an agent through a scripted scenario"`
	Layout  LayoutCmd        `cmd:"" help:"Print the boundary record layouts"`
	Bots    BotsCmd          `cmd:"" help:"List the bundled strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerbot-cli"),
		kong.Description("Local harness for the pokerbot agent library"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
