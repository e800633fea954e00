package main

import (
	"fmt"
	"os"

	"github.com/lox/blackbox/internal/game"
)

// BoardCmd draws a layout with every atom visible
type BoardCmd struct {
	LayoutFlags
}

func (c *BoardCmd) Run(globals *Globals) error {
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

	renderer := globals.newRenderer(os.Stdout)
	fmt.Printf("%d atoms (%s)\n", board.AtomCount(), desc)
	fmt.Println(renderer.Render(game.NewSnapshot(board), game.Overlay{Reveal: true}))
	return nil
}
