package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lox/blackbox/internal/commands"
	"github.com/lox/blackbox/internal/game"
)

// RunCmd plays a game from a script, one command per line
type RunCmd struct {
	LayoutFlags
	HistoryFlags

	Script string `arg:"" optional:"" default:"-" help:"Script file, or - for stdin"`
	Echo   bool   `help:"Print each command before its output"`
	Strict bool   `help:"Stop at the first command that fails"`
	Reveal bool   `help:"Draw the board with atoms shown when the script ends"`
}

func (c *RunCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	logger := globals.newLogger(cfg, os.Stderr)

	var in io.Reader = os.Stdin
	if c.Script != "-" {
		f, err := os.Open(c.Script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	g, err := c.newSession(cfg, logger)
	if err != nil {
		return err
	}
	session := g.session

	renderer := globals.newRenderer(os.Stdout)
	runner := commands.NewRunner(session, g.bus, renderer, logger)

	if err := runScript(in, os.Stdout, runner, c.Echo, c.Strict); err != nil {
		return err
	}
	saveHistory(c.historyWriter(cfg), g, logger)

	if c.Reveal {
		fmt.Println(renderer.Render(session.Snapshot(), game.SessionOverlay(session, true)))
	}
	return nil
}

// runScript feeds each line of in to runner and writes the responses to out.
// Failed commands are reported inline unless strict is set. A quit command
// ends the script early; otherwise a score line is written at the end.
func runScript(in io.Reader, out io.Writer, runner *commands.Runner, echo, strict bool) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if echo {
			if _, err := fmt.Fprintf(out, "> %s\n", line); err != nil {
				return err
			}
		}

		resp, err := runner.Execute(line)
		if err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, err := fmt.Fprintf(out, "error: %v\n", err); err != nil {
				return err
			}
			continue
		}

		if resp.Output != "" {
			if _, err := fmt.Fprintln(out, resp.Output); err != nil {
				return err
			}
		}
		if resp.Quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	resp, err := runner.Run(commands.Command{Kind: commands.Score})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, resp.Output)
	return err
}
