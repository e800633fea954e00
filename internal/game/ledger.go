package game

import (
	"fmt"
	"sort"
)

// Rules holds the scoring constants for a session.
type Rules struct {
	StartingScore  int
	BorderCost     int // per newly used entry or exit cell
	WrongGuessCost int // per distinct wrong guess
}

// DefaultRules returns the classic scoring: 25 points, 1 per border cell,
// 5 per wrong guess.
func DefaultRules() Rules {
	return Rules{
		StartingScore:  25,
		BorderCost:     1,
		WrongGuessCost: 5,
	}
}

// Validate checks that the rules can only ever lower the score.
func (r Rules) Validate() error {
	if r.BorderCost < 0 {
		return fmt.Errorf("border cost must not be negative, got %d", r.BorderCost)
	}
	if r.WrongGuessCost < 0 {
		return fmt.Errorf("wrong guess cost must not be negative, got %d", r.WrongGuessCost)
	}
	return nil
}

// Ledger keeps the running score for one session. Border cells and wrong
// guesses are charged at most once each, no matter how often they recur.
type Ledger struct {
	rules     Rules
	score     int
	remaining int
	borders   map[Coord]bool
	wrong     map[Coord]bool
	found     map[Coord]bool
}

// NewLedger creates a ledger for a board holding atoms atoms.
func NewLedger(rules Rules, atoms int) *Ledger {
	return &Ledger{
		rules:     rules,
		score:     rules.StartingScore,
		remaining: atoms,
		borders:   make(map[Coord]bool),
		wrong:     make(map[Coord]bool),
		found:     make(map[Coord]bool),
	}
}

// ChargeShot charges for the entry cell and, if the ray exited, its exit
// cell. Cells charged by earlier shots are free. Returns the points deducted.
func (l *Ledger) ChargeShot(entry Coord, o Outcome) int {
	charged := l.chargeBorder(entry)
	if exit, ok := o.ExitPoint(); ok {
		charged += l.chargeBorder(exit)
	}
	return charged
}

func (l *Ledger) chargeBorder(c Coord) int {
	if l.borders[c] {
		return 0
	}
	l.borders[c] = true
	l.score -= l.rules.BorderCost
	return l.rules.BorderCost
}

// ChargeGuess records a guess at c. A new wrong guess costs
// Rules.WrongGuessCost; a new correct guess reveals one atom. Repeats of
// either are free and change nothing. Returns the points deducted.
func (l *Ledger) ChargeGuess(c Coord, correct bool) int {
	if correct {
		if !l.found[c] && l.remaining > 0 {
			l.found[c] = true
			l.remaining--
		}
		return 0
	}
	if l.wrong[c] {
		return 0
	}
	l.wrong[c] = true
	l.score -= l.rules.WrongGuessCost
	return l.rules.WrongGuessCost
}

// Score returns the current score. It may be negative.
func (l *Ledger) Score() int {
	return l.score
}

// AtomsRemaining returns how many atoms have not been found yet.
func (l *Ledger) AtomsRemaining() int {
	return l.remaining
}

// Rules returns the scoring rules in effect.
func (l *Ledger) Rules() Rules {
	return l.rules
}

// IsCharged reports whether border cell c has already been paid for.
func (l *Ledger) IsCharged(c Coord) bool {
	return l.borders[c]
}

// ChargedBorders returns every border cell paid for so far.
func (l *Ledger) ChargedBorders() []Coord {
	return sortedKeys(l.borders)
}

// WrongGuesses returns every distinct wrong guess.
func (l *Ledger) WrongGuesses() []Coord {
	return sortedKeys(l.wrong)
}

// Found returns the atoms guessed correctly so far.
func (l *Ledger) Found() []Coord {
	return sortedKeys(l.found)
}

func sortedKeys(set map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
