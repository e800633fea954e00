package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackbox/internal/gameid"
)

// Shot records one ray fired during a session.
type Shot struct {
	Number    int // 1-based, in firing order
	Entry     Coord
	Direction Direction
	Outcome   Outcome
	Points    int // points deducted for this shot
	Turns     int
}

// Session is a single game: a fixed board, a score ledger and the shot
// history. It is not safe for concurrent use.
type Session struct {
	id        string
	board     *Board
	ledger    *Ledger
	shots     []Shot
	logger    *log.Logger
	clock     quartz.Clock
	eventBus  EventBus
	startedAt time.Time
	solvedAt  time.Time
}

// NewSession starts a game with the given hidden atoms.
func NewSession(atoms []Coord, opts ...SessionOption) (*Session, error) {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.finish()

	if err := cfg.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	board, err := NewBoard(atoms)
	if err != nil {
		return nil, err
	}

	id := cfg.id
	if id == "" {
		id = gameid.NewGenerator(cfg.clock, nil).Generate()
	}

	s := &Session{
		id:        id,
		board:     board,
		ledger:    NewLedger(cfg.rules, board.AtomCount()),
		logger:    cfg.logger.With("session", id),
		clock:     cfg.clock,
		eventBus:  cfg.eventBus,
		startedAt: cfg.clock.Now(),
	}
	s.logger.Debug("Session started", "atoms", board.AtomCount(), "score", s.ledger.Score())
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ShootRay fires a ray from border cell (row, col) and charges for it.
// Corner cells return ErrCornerEntry, interior cells ErrNotBorder and cells
// off the grid ErrOutOfRange; none of these cost anything.
func (s *Session) ShootRay(row, col int) (Outcome, error) {
	entry := C(row, col)
	dir, err := s.board.EntryDirection(entry)
	if err != nil {
		s.logger.Debug("Rejected shot", "entry", entry, "error", err)
		return Outcome{}, err
	}

	res := Trace(s.board, entry, dir)
	points := s.ledger.ChargeShot(entry, res.Outcome)

	shot := Shot{
		Number:    len(s.shots) + 1,
		Entry:     entry,
		Direction: dir,
		Outcome:   res.Outcome,
		Points:    points,
		Turns:     res.Turns,
	}
	s.shots = append(s.shots, shot)

	s.logger.Debug("Ray traced",
		"entry", entry,
		"direction", dir,
		"outcome", res.Outcome,
		"turns", res.Turns,
		"points", points,
		"score", s.ledger.Score())

	s.eventBus.Publish(RayEvent{
		SessionID:  s.id,
		Shot:       shot,
		ScoreAfter: s.ledger.Score(),
		timestamp:  s.clock.Now(),
	})
	return res.Outcome, nil
}

// GuessAtom reports whether an atom sits at (row, col). Wrong guesses cost
// points the first time; correct guesses reveal an atom the first time.
func (s *Session) GuessAtom(row, col int) (bool, error) {
	c := C(row, col)
	if !s.board.InBounds(c) {
		return false, fmt.Errorf("guess %s: %w", c, ErrOutOfRange)
	}

	correct := s.board.IsAtom(c)
	before := s.ledger.AtomsRemaining()
	points := s.ledger.ChargeGuess(c, correct)
	now := s.clock.Now()

	s.logger.Debug("Guess",
		"coord", c,
		"correct", correct,
		"points", points,
		"score", s.ledger.Score(),
		"remaining", s.ledger.AtomsRemaining())

	s.eventBus.Publish(GuessEvent{
		SessionID:      s.id,
		Coord:          c,
		Correct:        correct,
		Points:         points,
		ScoreAfter:     s.ledger.Score(),
		AtomsRemaining: s.ledger.AtomsRemaining(),
		timestamp:      now,
	})

	if before > 0 && s.ledger.AtomsRemaining() == 0 {
		s.solvedAt = now
		s.logger.Info("Board solved", "score", s.ledger.Score(), "shots", len(s.shots))
		s.eventBus.Publish(SolvedEvent{
			SessionID: s.id,
			Score:     s.ledger.Score(),
			Shots:     len(s.shots),
			Elapsed:   s.solvedAt.Sub(s.startedAt),
			timestamp: now,
		})
	}
	return correct, nil
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.ledger.Score()
}

// AtomsRemaining returns the number of atoms not yet found.
func (s *Session) AtomsRemaining() int {
	return s.ledger.AtomsRemaining()
}

// IsSolved reports whether every atom has been found.
func (s *Session) IsSolved() bool {
	return s.ledger.AtomsRemaining() == 0
}

// Rules returns the scoring rules of this session.
func (s *Session) Rules() Rules {
	return s.ledger.Rules()
}

// Shots returns a copy of the shot history.
func (s *Session) Shots() []Shot {
	out := make([]Shot, len(s.shots))
	copy(out, s.shots)
	return out
}

// Found returns the atoms guessed correctly so far.
func (s *Session) Found() []Coord {
	return s.ledger.Found()
}

// WrongGuesses returns the distinct wrong guesses so far.
func (s *Session) WrongGuesses() []Coord {
	return s.ledger.WrongGuesses()
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns the play time, frozen once the board is solved.
func (s *Session) Elapsed() time.Duration {
	if !s.solvedAt.IsZero() {
		return s.solvedAt.Sub(s.startedAt)
	}
	return s.clock.Since(s.startedAt)
}

// Snapshot returns a read-only view of the grid for rendering.
func (s *Session) Snapshot() Snapshot {
	return NewSnapshot(s.board)
}
