package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/blackbox/internal/game"
	"github.com/lox/blackbox/internal/survey"
)

// SurveyCmd prints the outcome of a ray from every entry cell
type SurveyCmd struct {
	LayoutFlags

	Workers int  `default:"0" help:"Concurrent tracers (0 uses GOMAXPROCS)"`
	Board   bool `help:"Also draw the board with atoms shown"`
}

func (c *SurveyCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	logger := globals.newLogger(cfg, os.Stderr)

	desc, atoms, err := c.resolveAtoms(cfg, logger)
	if err != nil {
		return err
	}
	board, err := game.NewBoard(atoms)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := survey.Run(ctx, board, c.Workers)
	if err != nil {
		return err
	}
	logger.Debug("Survey complete", "layout", desc, "entries", len(report.Results))

	if c.Board {
		renderer := globals.newRenderer(os.Stdout)
		fmt.Println(renderer.Render(game.NewSnapshot(board), game.Overlay{Reveal: true}))
		fmt.Println()
	}
	fmt.Println(report)
	return nil
}
