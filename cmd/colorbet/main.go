package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config string `short:"c" type:"path" default:"colorbet.hcl" help:"HCL config file (defaults are used if it does not exist)"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Play        PlayCmd          `cmd:"" default:"withargs" help:"Play a game at the terminal"`
	Simulate    SimulateCmd      `cmd:"" help:"Simulate many games with random players"`
	CheckConfig CheckConfigCmd   `cmd:"check-config" help:"Validate a config file and print the effective settings"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("colorbet"),
		kong.Description("A two-team colour betting card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
