package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse hand-history logs and print a summary"`
	Export  ExportCmd        `cmd:"" help:"Convert a hand-history log to a PHH session file"`
	Render  RenderCmd        `cmd:"" help:"Pretty-print the hands in a hand-history log"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handhistory"),
		kong.Description("Tools for working with PokerStars hand-history logs"),
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
