// nativeai is the command-line client for the native AI bridge.
package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("nativeai"),
		kong.Description("Query and drive the on-device language model bridge"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Verbose)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
