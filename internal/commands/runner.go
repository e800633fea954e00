package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackbox/internal/game"
)

// Response is the result of executing one command.
type Response struct {
	Output string
	Quit   bool
}

// Runner executes commands against a session. Shot and guess results are
// taken from the session's event bus, so the runner must be given the same
// bus the session publishes to.
type Runner struct {
	session   *game.Session
	renderer  *game.BoardRenderer
	formatter game.EventFormatter
	logger    *log.Logger
	pending   []string
}

// NewRunner creates a runner for session and subscribes it to bus.
func NewRunner(session *game.Session, bus game.EventBus, renderer *game.BoardRenderer, logger *log.Logger) *Runner {
	if renderer == nil {
		renderer = game.NewBoardRenderer(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		session:  session,
		renderer: renderer,
		logger:   logger.WithPrefix("COMMANDS"),
	}
	bus.Subscribe(r)
	return r
}

// OnEvent implements game.EventSubscriber.
func (r *Runner) OnEvent(event game.GameEvent) {
	r.pending = append(r.pending, r.formatter.Format(event))
}

// Session returns the session the runner drives.
func (r *Runner) Session() *game.Session {
	return r.session
}

// Execute parses and runs line. Blank lines and lines starting with # do
// nothing.
func (r *Runner) Execute(line string) (Response, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Response{}, nil
	}

	cmd, err := Parse(line)
	if err != nil {
		r.logger.Debug("Parse failed", "line", line, "error", err)
		return Response{}, err
	}
	return r.Run(cmd)
}

// Run executes an already parsed command.
func (r *Runner) Run(cmd Command) (Response, error) {
	r.logger.Debug("Running command", "command", cmd)
	r.pending = r.pending[:0]

	switch cmd.Kind {
	case Shoot:
		if _, err := r.session.ShootRay(cmd.Coord.Row, cmd.Coord.Col); err != nil {
			return Response{}, err
		}
		return Response{Output: r.flush()}, nil

	case Guess:
		if _, err := r.session.GuessAtom(cmd.Coord.Row, cmd.Coord.Col); err != nil {
			return Response{}, err
		}
		return Response{Output: r.flush()}, nil

	case Score:
		return Response{Output: fmt.Sprintf("score %d, %s left, %d shots",
			r.session.Score(), plural(r.session.AtomsRemaining(), "atom"), len(r.session.Shots()))}, nil

	case Atoms:
		return Response{Output: fmt.Sprintf("%s left", plural(r.session.AtomsRemaining(), "atom"))}, nil

	case Board:
		return Response{Output: r.renderer.Render(r.session.Snapshot(), game.SessionOverlay(r.session, false))}, nil

	case Reveal:
		return Response{Output: r.renderer.Render(r.session.Snapshot(), game.SessionOverlay(r.session, true))}, nil

	case History:
		shots := r.session.Shots()
		if len(shots) == 0 {
			return Response{Output: "no rays fired yet"}, nil
		}
		lines := make([]string, len(shots))
		for i, s := range shots {
			lines[i] = game.FormatShot(s)
		}
		return Response{Output: strings.Join(lines, "\n")}, nil

	case Help:
		return Response{Output: HelpText()}, nil

	case Quit:
		return Response{Output: fmt.Sprintf("final score %d", r.session.Score()), Quit: true}, nil
	}

	return Response{}, fmt.Errorf("%s: %w", cmd, ErrUnknownCommand)
}

func (r *Runner) flush() string {
	out := strings.Join(r.pending, "\n")
	r.pending = r.pending[:0]
	return out
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
