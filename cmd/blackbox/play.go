package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackbox/internal/commands"
	"github.com/lox/blackbox/internal/game"
	"github.com/lox/blackbox/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	LayoutFlags
	HistoryFlags
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := globals.openLogFile(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()

	logger := globals.newLogger(cfg, logFile)
	logger.Info("Starting interactive game", "config", globals.Config)

	g, err := c.newSession(cfg, logger)
	if err != nil {
		return err
	}
	session := g.session

	renderer := globals.newRenderer(os.Stdout)
	runner := commands.NewRunner(session, g.bus, renderer, logger)
	model := tui.New(runner, renderer, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("Game over",
		"score", session.Score(),
		"solved", session.IsSolved(),
		"shots", len(session.Shots()),
		"elapsed", session.Elapsed())
	saveHistory(c.historyWriter(cfg), g, logger)

	status := "gave up"
	if session.IsSolved() {
		status = "solved"
	}
	fmt.Printf("%s with score %d after %d rays\n", status, session.Score(), len(session.Shots()))
	fmt.Println(renderer.Render(session.Snapshot(), game.SessionOverlay(session, true)))
	return nil
}
