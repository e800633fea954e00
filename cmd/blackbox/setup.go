package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackbox/internal/config"
	"github.com/lox/blackbox/internal/game"
)

// Globals holds flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"${config_file}" env:"BLACKBOX_CONFIG" help:"Path to HCL configuration file"`
	Debug   bool   `env:"BLACKBOX_DEBUG" help:"Enable debug logging"`
	NoColor bool   `name:"no-color" env:"BLACKBOX_NO_COLOR" help:"Disable colored output"`
}

// LayoutFlags selects the board to play on
type LayoutFlags struct {
	Layout string `short:"l" env:"BLACKBOX_LAYOUT" help:"Layout name from the config (defaults to default_layout)"`
	Seed   *int64 `env:"BLACKBOX_SEED" help:"Seed for random layouts (optional)"`
}

// HistoryFlags controls saving finished games
type HistoryFlags struct {
	HistoryDir string `name:"history-dir" env:"BLACKBOX_HISTORY_DIR" help:"Save a replayable transcript of the game in this directory"`
}

// historyWriter returns the writer for finished games, or a no-op writer
// when no directory is set by flag or config
func (h *HistoryFlags) historyWriter(cfg *config.Config) game.HistoryWriter {
	dir := h.HistoryDir
	if dir == "" {
		dir = cfg.HistoryDir
	}
	if dir == "" {
		return game.NoOpHistoryWriter{}
	}
	return game.NewFileHistoryWriter(dir)
}

// saveHistory writes the transcript of a finished game
func saveHistory(w game.HistoryWriter, g *gameSetup, logger *log.Logger) {
	if _, ok := w.(game.NoOpHistoryWriter); ok {
		return
	}
	id := g.session.ID()
	replay := fmt.Sprintf("replay with: blackbox run %s game_%s.txt", g.layout, id)
	if err := w.WriteHistory(id, g.recorder.Transcript(g.session, replay)); err != nil {
		logger.Error("Failed to save game history", "error", err)
		return
	}
	logger.Info("Saved game history", "game", id)
}

// loadConfig reads and validates the configuration file
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the configured level
func (g *Globals) newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
	})

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if g.Debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile creates the log file used while the TUI owns the terminal
func (g *Globals) openLogFile(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// newRenderer creates a board renderer for w, honouring --no-color
func (g *Globals) newRenderer(w io.Writer) *game.BoardRenderer {
	r := lipgloss.NewRenderer(w)
	if g.NoColor {
		r.SetColorProfile(termenv.Ascii)
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return game.NewBoardRenderer(game.NewDisplayStyles(r))
}

// resolveAtoms picks the layout and places its atoms. The returned
// description holds the flags that reproduce the same board.
func (l *LayoutFlags) resolveAtoms(cfg *config.Config, logger *log.Logger) (string, []game.Coord, error) {
	layout, err := cfg.Layout(l.Layout)
	if err != nil {
		return "", nil, err
	}

	atoms, seed, err := layout.Resolve(l.Seed, quartz.NewReal())
	if err != nil {
		return "", nil, err
	}

	desc := "--layout " + layout.Name
	if layout.IsRandom() {
		desc += fmt.Sprintf(" --seed %d", seed)
		logger.Info("Random layout", "layout", layout.Name, "atoms", len(atoms), "seed", seed)
	} else {
		logger.Debug("Fixed layout", "layout", layout.Name, "atoms", len(atoms))
	}
	return desc, atoms, nil
}

// gameSetup is a session ready to play, with its recorder and the flags that
// reproduce its board.
type gameSetup struct {
	session  *game.Session
	bus      game.EventBus
	recorder *game.Recorder
	layout   string
}

// newSession starts a game on the selected layout. Every session event is
// also written to the log.
func (l *LayoutFlags) newSession(cfg *config.Config, logger *log.Logger) (*gameSetup, error) {
	layout, atoms, err := l.resolveAtoms(cfg, logger)
	if err != nil {
		return nil, err
	}

	bus := game.NewEventBus()
	formatter := game.EventFormatter{}
	events := logger.WithPrefix("EVENT")
	bus.Subscribe(game.EventSubscriberFunc(func(e game.GameEvent) {
		events.Debug(formatter.Format(e), "type", e.EventType())
	}))
	recorder := game.NewRecorder()
	bus.Subscribe(recorder)

	session, err := game.NewSession(atoms,
		game.WithRules(cfg.GameRules()),
		game.WithLogger(logger),
		game.WithEventBus(bus))
	if err != nil {
		return nil, err
	}
	return &gameSetup{session: session, bus: bus, recorder: recorder, layout: layout}, nil
}
