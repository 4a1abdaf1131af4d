package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"flopbluff.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Check      CheckCmd         `cmd:"" help:"Test one hand on a flop"`
	Profile    ProfileCmd       `cmd:"" help:"Show every flop property of one hand at every requirement level"`
	Candidates CandidatesCmd    `cmd:"" help:"List the bluff candidates on a flop (suited catalog hands are two spades, so only flops with exactly one spade can yield any)"`
	Random     RandomCmd        `cmd:"" help:"Deal random flops and list their bluff candidates (only flops with exactly one spade can yield any)"`
	Scan       ScanCmd          `cmd:"" help:"Scan the flops listed in the config file (only flops with exactly one spade can yield candidates)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flopbluff"),
		kong.Description("Find hole cards that make good bluffs on a flop"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
