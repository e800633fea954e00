package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackbox/internal/config"
)

// LayoutsCmd lists the layouts available in the config
type LayoutsCmd struct{}

func (c *LayoutsCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	return listLayouts(os.Stdout, cfg)
}

func listLayouts(w io.Writer, cfg *config.Config) error {
	for _, name := range cfg.LayoutNames() {
		layout, err := cfg.Layout(name)
		if err != nil {
			return err
		}

		desc := fmt.Sprintf("%d fixed atoms", len(layout.Atoms))
		if layout.IsRandom() {
			desc = fmt.Sprintf("%d random atoms", layout.Random)
			if layout.Seed != nil {
				desc += fmt.Sprintf(", seed %d", *layout.Seed)
			}
		}

		marker := " "
		if name == cfg.DefaultLayout {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", marker, name, desc); err != nil {
			return err
		}
	}
	return nil
}
