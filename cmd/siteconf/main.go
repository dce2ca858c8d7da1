package main

import (
	"github.com/alecthomas/kong"

	"github.com/hatethatcode/siteconf/cmd/siteconf/commands"
)

var version = "dev"

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("siteconf"),
		kong.Description("Manage, validate and watch a static blog configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
