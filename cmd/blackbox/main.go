package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/blackbox/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play a game in the terminal UI"`
	Run     RunCmd           `cmd:"" help:"Play a game from a script of commands"`
	Survey  SurveyCmd        `cmd:"" help:"Fire a ray from every border cell and print the results"`
	Board   BoardCmd         `cmd:"" help:"Draw a layout with its atoms shown"`
	Layouts LayoutsCmd       `cmd:"" help:"List the configured layouts"`
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackbox"),
		kong.Description("The Black Box deduction game: find the hidden atoms by firing rays into the grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
