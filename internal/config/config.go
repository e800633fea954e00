// Package config loads blackbox settings and board layouts from HCL.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackbox/internal/game"
	"github.com/lox/blackbox/internal/randutil"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "blackbox.hcl"

// Config represents the complete blackbox configuration
type Config struct {
	DefaultLayout string         `hcl:"default_layout,optional"`
	HistoryDir    string         `hcl:"history_dir,optional"`
	Rules         *RulesConfig   `hcl:"rules,block"`
	Log           *LogConfig     `hcl:"log,block"`
	Layouts       []LayoutConfig `hcl:"layout,block"`
}

// RulesConfig overrides the scoring rules. Unset fields keep the defaults.
type RulesConfig struct {
	StartingScore  *int `hcl:"starting_score,optional"`
	BorderCost     *int `hcl:"border_cost,optional"`
	WrongGuessCost *int `hcl:"wrong_guess_cost,optional"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// LayoutConfig is a named atom placement: either an explicit list of
// [row, col] pairs or a number of randomly placed atoms.
type LayoutConfig struct {
	Name   string  `hcl:"name,label"`
	Atoms  [][]int `hcl:"atoms,optional"`
	Random int     `hcl:"random,optional"`
	Seed   *int64  `hcl:"seed,optional"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultLayout: "classic",
		Rules:         &RulesConfig{},
		Log: &LogConfig{
			Level: "info",
			File:  "blackbox.log",
		},
		Layouts: []LayoutConfig{
			{
				Name:  "classic",
				Atoms: [][]int{{3, 2}, {1, 7}, {4, 6}, {8, 8}},
			},
			{
				Name:   "random",
				Random: 4,
			},
		},
	}
}

// Load reads configuration from filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if cfg.Rules == nil {
		cfg.Rules = defaults.Rules
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if len(cfg.Layouts) == 0 {
		cfg.Layouts = defaults.Layouts
	}
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = cfg.Layouts[0].Name
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.GameRules().Validate(); err != nil {
		return err
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	seen := make(map[string]bool)
	for _, l := range c.Layouts {
		if seen[l.Name] {
			return fmt.Errorf("layout %s: defined more than once", l.Name)
		}
		seen[l.Name] = true
		if err := l.Validate(); err != nil {
			return err
		}
	}

	if !seen[c.DefaultLayout] {
		return fmt.Errorf("default layout %q is not defined", c.DefaultLayout)
	}
	return nil
}

// GameRules returns the scoring rules with overrides applied.
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	if c.Rules.StartingScore != nil {
		rules.StartingScore = *c.Rules.StartingScore
	}
	if c.Rules.BorderCost != nil {
		rules.BorderCost = *c.Rules.BorderCost
	}
	if c.Rules.WrongGuessCost != nil {
		rules.WrongGuessCost = *c.Rules.WrongGuessCost
	}
	return rules
}

// Layout returns the layout called name, or the default layout when name is
// empty.
func (c *Config) Layout(name string) (*LayoutConfig, error) {
	if name == "" {
		name = c.DefaultLayout
	}
	for i := range c.Layouts {
		if c.Layouts[i].Name == name {
			return &c.Layouts[i], nil
		}
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}

// LayoutNames returns all layout names, sorted.
func (c *Config) LayoutNames() []string {
	names := make([]string, 0, len(c.Layouts))
	for _, l := range c.Layouts {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// IsRandom reports whether the layout places its atoms randomly.
func (l *LayoutConfig) IsRandom() bool {
	return l.Random > 0
}

// Validate checks the layout on its own.
func (l *LayoutConfig) Validate() error {
	switch {
	case l.IsRandom() && len(l.Atoms) > 0:
		return fmt.Errorf("layout %s: set either atoms or random, not both", l.Name)
	case l.IsRandom():
		if l.Random > game.MaxRandomAtoms {
			return fmt.Errorf("layout %s: random must be at most %d", l.Name, game.MaxRandomAtoms)
		}
		return nil
	case l.Random < 0:
		return fmt.Errorf("layout %s: random must be positive", l.Name)
	case len(l.Atoms) == 0:
		return fmt.Errorf("layout %s: needs atoms or random", l.Name)
	}

	coords, err := l.fixedAtoms()
	if err != nil {
		return err
	}
	if _, err := game.NewBoard(coords); err != nil {
		return fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return nil
}

func (l *LayoutConfig) fixedAtoms() ([]game.Coord, error) {
	coords := make([]game.Coord, 0, len(l.Atoms))
	for i, pair := range l.Atoms {
		if len(pair) != 2 {
			return nil, fmt.Errorf("layout %s: atom %d must be [row, col]", l.Name, i+1)
		}
		coords = append(coords, game.C(pair[0], pair[1]))
	}
	return coords, nil
}

// Resolve produces the atom positions. Random layouts use seed when given,
// then the layout's own seed, then the clock. The seed used is returned so
// the board can be replayed; it is zero for fixed layouts.
func (l *LayoutConfig) Resolve(seed *int64, clock quartz.Clock) ([]game.Coord, int64, error) {
	if !l.IsRandom() {
		coords, err := l.fixedAtoms()
		return coords, 0, err
	}
	if seed == nil {
		seed = l.Seed
	}
	rng, used := randutil.Resolve(seed, clock)
	atoms, err := game.RandomAtoms(rng, l.Random)
	if err != nil {
		return nil, 0, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return atoms, used, nil
}
