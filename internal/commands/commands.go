// Package commands implements the text command language used by the
// interactive and scripted front ends.
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/blackbox/internal/game"
)

var (
	// ErrUnknownCommand is returned for a command name that is not recognised.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("wrong arguments")
)

// Kind identifies a command.
type Kind int

const (
	Shoot Kind = iota + 1
	Guess
	Score
	Atoms
	Board
	Reveal
	History
	Help
	Quit
)

// Spec describes a command for parsing and help output.
type Spec struct {
	Kind        Kind
	Name        string
	Aliases     []string
	Usage       string
	Description string
	takesCoord  bool
}

// Specs lists every command in help order.
var Specs = []Spec{
	{Kind: Shoot, Name: "shoot", Aliases: []string{"s"}, Usage: "shoot ROW COL", Description: "Fire a ray from a border cell", takesCoord: true},
	{Kind: Guess, Name: "guess", Aliases: []string{"g"}, Usage: "guess ROW COL", Description: "Guess that an atom sits at a cell", takesCoord: true},
	{Kind: Score, Name: "score", Usage: "score", Description: "Show score, atoms left and shots fired"},
	{Kind: Atoms, Name: "atoms", Aliases: []string{"a"}, Usage: "atoms", Description: "Show how many atoms are still hidden"},
	{Kind: Board, Name: "board", Aliases: []string{"b"}, Usage: "board", Description: "Draw the board with shots and guesses"},
	{Kind: Reveal, Name: "reveal", Usage: "reveal", Description: "Draw the board with every atom shown"},
	{Kind: History, Name: "history", Aliases: []string{"h"}, Usage: "history", Description: "List every ray fired so far"},
	{Kind: Help, Name: "help", Aliases: []string{"?"}, Usage: "help", Description: "Show this help"},
	{Kind: Quit, Name: "quit", Aliases: []string{"q", "exit"}, Usage: "quit", Description: "End the game"},
}

var byName = func() map[string]*Spec {
	m := make(map[string]*Spec)
	for i := range Specs {
		s := &Specs[i]
		m[s.Name] = s
		for _, alias := range s.Aliases {
			m[alias] = s
		}
	}
	return m
}()

// Command is a parsed command line.
type Command struct {
	Kind  Kind
	Coord game.Coord // for Shoot and Guess
}

// String returns the canonical form of the command.
func (c Command) String() string {
	for _, s := range Specs {
		if s.Kind != c.Kind {
			continue
		}
		if s.takesCoord {
			return fmt.Sprintf("%s %d %d", s.Name, c.Coord.Row, c.Coord.Col)
		}
		return s.Name
	}
	return "unknown"
}

// Parse reads a single command. Names are case-insensitive and coordinates
// may be separated by spaces or a comma, so "s 0 5" and "shoot 0,5" are the
// same command.
func Parse(line string) (Command, error) {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty line: %w", ErrUnknownCommand)
	}

	spec, ok := byName[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
	args := fields[1:]

	if !spec.takesCoord {
		if len(args) != 0 {
			return Command{}, fmt.Errorf("usage: %s: %w", spec.Usage, ErrUsage)
		}
		return Command{Kind: spec.Kind}, nil
	}

	if len(args) != 2 {
		return Command{}, fmt.Errorf("usage: %s: %w", spec.Usage, ErrUsage)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, fmt.Errorf("invalid row %q: %w", args[0], ErrUsage)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return Command{}, fmt.Errorf("invalid column %q: %w", args[1], ErrUsage)
	}
	return Command{Kind: spec.Kind, Coord: game.C(row, col)}, nil
}

// HelpText lists the commands, one per line.
func HelpText() string {
	var sb strings.Builder
	for i, s := range Specs {
		if i > 0 {
			sb.WriteString("\n")
		}
		name := s.Usage
		if len(s.Aliases) > 0 {
			name += " (" + strings.Join(s.Aliases, ", ") + ")"
		}
		fmt.Fprintf(&sb, "%-24s %s", name, s.Description)
	}
	return sb.String()
}
