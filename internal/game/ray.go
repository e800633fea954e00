package game

import "fmt"

// OutcomeKind tags how a ray left play.
type OutcomeKind int

const (
	// Absorbed rays hit an atom head on and never leave the grid.
	Absorbed OutcomeKind = iota + 1
	// Exited rays leave through a border cell, possibly their own entry.
	Exited
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case Absorbed:
		return "absorbed"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a single ray.
type Outcome struct {
	Kind OutcomeKind
	Exit Coord // only meaningful when Kind == Exited
}

// AbsorbedOutcome is the outcome of a ray that hit an atom.
func AbsorbedOutcome() Outcome {
	return Outcome{Kind: Absorbed}
}

// ExitedAt is the outcome of a ray leaving the grid at c.
func ExitedAt(c Coord) Outcome {
	return Outcome{Kind: Exited, Exit: c}
}

// ExitPoint returns the exit cell and true, or false for an absorbed ray.
func (o Outcome) ExitPoint() (Coord, bool) {
	if o.Kind != Exited {
		return Coord{}, false
	}
	return o.Exit, true
}

// IsReflection reports whether the ray came back out through entry.
func (o Outcome) IsReflection(entry Coord) bool {
	return o.Kind == Exited && o.Exit == entry
}

func (o Outcome) String() string {
	if o.Kind == Exited {
		return fmt.Sprintf("exited at %s", o.Exit)
	}
	return o.Kind.String()
}

// MaxTraceSteps bounds a single trace. A ray visits each (cell, direction)
// state at most once, so the bound is never reached on a valid board.
const MaxTraceSteps = 4 * BoardSize * BoardSize

// Result describes the full journey of a ray.
type Result struct {
	Entry     Coord
	Direction Direction
	Outcome   Outcome
	Path      []Coord // cells visited in order, entry first
	Turns     int
	Reflected bool
}

type rayState struct {
	pos Coord
	dir Direction
}

// Trace follows a ray fired from entry in direction dir until it is absorbed
// or leaves the grid. The caller is responsible for passing a valid border
// entry and the matching inward direction (see Board.EntryDirection).
//
// At each step the ray looks at the cell ahead and the two cells diagonally
// ahead of it:
//   - an atom ahead absorbs the ray
//   - atoms on both diagonals reflect it back out through its entry
//   - an atom on one diagonal turns it 90 degrees away from that atom, without
//     moving; on the very first step the turn happens two cells in from the
//     border instead
//   - otherwise the ray moves forward one cell
//
// A ray that revisits a (cell, direction) state is bouncing between opposing
// deflections and is treated as reflected.
func Trace(b *Board, entry Coord, dir Direction) Result {
	res := Result{
		Entry:     entry,
		Direction: dir,
		Path:      []Coord{entry},
	}

	pos, heading := entry, dir
	seen := make(map[rayState]bool)

	for step := 0; step < MaxTraceSteps; step++ {
		first := step == 0
		if !first && b.IsBorder(pos) {
			res.Outcome = ExitedAt(pos)
			return res
		}

		state := rayState{pos: pos, dir: heading}
		if seen[state] {
			return res.reflect()
		}
		seen[state] = true

		ahead := pos.Add(heading)
		if b.IsAtom(ahead) {
			res.Outcome = AbsorbedOutcome()
			return res
		}

		ccw, cw := heading.sides()
		ccwHit := b.IsAtom(ahead.Add(ccw))
		cwHit := b.IsAtom(ahead.Add(cw))

		switch {
		case ccwHit && cwHit:
			return res.reflect()

		case ccwHit || cwHit:
			turn := cw
			if cwHit {
				turn = ccw
			}
			res.Turns++
			if first {
				// The border row itself is never occupied, so the first
				// turn is taken from two cells in.
				pos = ahead.Add(heading)
				res.Path = append(res.Path, ahead, pos)
				if b.IsAtom(pos) {
					res.Outcome = AbsorbedOutcome()
					return res
				}
			}
			heading = turn

		default:
			pos = ahead
			res.Path = append(res.Path, pos)
		}
	}

	return res.reflect()
}

func (r Result) reflect() Result {
	r.Reflected = true
	r.Outcome = ExitedAt(r.Entry)
	return r
}
