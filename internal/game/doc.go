// Package game implements the Black Box deduction game.
//
// Atoms are hidden on a 10x10 grid. The player fires rays from the border and
// watches where they come out, then guesses where the atoms are. The main type
// is Session, which owns an immutable Board and a score Ledger.
//
// # Basic Usage
//
//	s, err := game.NewSession([]game.Coord{game.C(3, 2), game.C(1, 7)})
//	if err != nil {
//	    return err
//	}
//	out, err := s.ShootRay(0, 5) // fired from the bottom edge, travels up
//	if exit, ok := out.ExitPoint(); ok {
//	    fmt.Println("ray left at", exit)
//	}
//	found, _ := s.GuessAtom(3, 2)
//
// # Coordinates
//
// Coordinates are (row, col). Row 0 is the bottom edge and "up" means towards
// higher rows. The outer ring is the border, where rays enter and leave; the
// four corners are never valid entry points.
//
// # Ray rules
//
// Trace walks a ray one cell at a time:
//   - an atom directly ahead absorbs it
//   - an atom diagonally ahead turns it 90 degrees away from the atom
//   - atoms diagonally ahead on both sides send it back out of its entry
//
// # Scoring
//
// A session starts at 25 points. Each border cell used as an entry or exit
// costs one point the first time it is used. Each distinct wrong guess costs
// five points. Score is never raised and has no floor.
//
// # Deterministic Testing
//
// Sessions take their clock through WithClock, so tests can pass
// quartz.NewMock and control timestamps. Random layouts take an explicit
// *rand.Rand (see RandomAtoms and internal/randutil).
package game
