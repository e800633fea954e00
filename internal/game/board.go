package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrDuplicateAtom is returned when a layout names the same cell twice.
	ErrDuplicateAtom = errors.New("duplicate atom")
	// ErrCornerEntry is returned when a ray is fired from a corner cell.
	ErrCornerEntry = errors.New("corner cells are not valid entry points")
	// ErrNotBorder is returned when a ray is fired from an interior cell.
	ErrNotBorder = errors.New("entry point must be on the border")
)

// Board is the immutable grid holding the hidden atoms.
type Board struct {
	cells [BoardSize * BoardSize]bool
	count int
}

// NewBoard places the given atoms on an empty grid.
func NewBoard(atoms []Coord) (*Board, error) {
	b := &Board{}
	for _, a := range atoms {
		if !b.InBounds(a) {
			return nil, fmt.Errorf("atom %s: %w", a, ErrOutOfRange)
		}
		if b.cells[index(a)] {
			return nil, fmt.Errorf("atom %s: %w", a, ErrDuplicateAtom)
		}
		b.cells[index(a)] = true
		b.count++
	}
	return b, nil
}

func index(c Coord) int {
	return c.Row*BoardSize + c.Col
}

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// IsAtom reports whether an atom occupies c. Coordinates off the grid are
// never occupied.
func (b *Board) IsAtom(c Coord) bool {
	return b.InBounds(c) && b.cells[index(c)]
}

// IsCorner reports whether c is one of the four corner cells.
func (b *Board) IsCorner(c Coord) bool {
	return (c.Row == 0 || c.Row == BoardSize-1) && (c.Col == 0 || c.Col == BoardSize-1)
}

// IsBorder reports whether c is on the outer ring of the grid, corners included.
func (b *Board) IsBorder(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return c.Row == 0 || c.Row == BoardSize-1 || c.Col == 0 || c.Col == BoardSize-1
}

// IsValidEntry reports whether a ray may enter or leave the grid at c.
func (b *Board) IsValidEntry(c Coord) bool {
	return b.IsBorder(c) && !b.IsCorner(c)
}

// EntryDirection returns the direction a ray fired from c travels: into the
// grid, away from the edge c sits on.
func (b *Board) EntryDirection(c Coord) (Direction, error) {
	switch {
	case !b.InBounds(c):
		return 0, fmt.Errorf("entry %s: %w", c, ErrOutOfRange)
	case b.IsCorner(c):
		return 0, fmt.Errorf("entry %s: %w", c, ErrCornerEntry)
	case c.Row == 0:
		return Up, nil
	case c.Row == BoardSize-1:
		return Down, nil
	case c.Col == 0:
		return Right, nil
	case c.Col == BoardSize-1:
		return Left, nil
	}
	return 0, fmt.Errorf("entry %s: %w", c, ErrNotBorder)
}

// AtomCount returns the number of atoms on the board.
func (b *Board) AtomCount() int {
	return b.count
}

// Atoms returns the atom positions in row-major order.
func (b *Board) Atoms() []Coord {
	atoms := make([]Coord, 0, b.count)
	for i, occupied := range b.cells {
		if occupied {
			atoms = append(atoms, Coord{Row: i / BoardSize, Col: i % BoardSize})
		}
	}
	return atoms
}

// Entries returns every valid entry cell, walking the border clockwise from
// the bottom-left.
func (b *Board) Entries() []Coord {
	entries := make([]Coord, 0, 4*(BoardSize-2))
	for col := 1; col < BoardSize-1; col++ {
		entries = append(entries, Coord{Row: 0, Col: col})
	}
	for row := 1; row < BoardSize-1; row++ {
		entries = append(entries, Coord{Row: row, Col: BoardSize - 1})
	}
	for col := BoardSize - 2; col > 0; col-- {
		entries = append(entries, Coord{Row: BoardSize - 1, Col: col})
	}
	for row := BoardSize - 2; row > 0; row-- {
		entries = append(entries, Coord{Row: row, Col: 0})
	}
	return entries
}

// MaxRandomAtoms is the number of interior cells available to RandomAtoms.
const MaxRandomAtoms = (BoardSize - 2) * (BoardSize - 2)

// RandomAtoms picks n distinct interior cells using rng.
func RandomAtoms(rng *rand.Rand, n int) ([]Coord, error) {
	if rng == nil {
		return nil, errors.New("rng is required for random layouts")
	}
	if n < 0 || n > MaxRandomAtoms {
		return nil, fmt.Errorf("random atom count %d must be between 0 and %d", n, MaxRandomAtoms)
	}

	interior := make([]Coord, 0, MaxRandomAtoms)
	for row := 1; row < BoardSize-1; row++ {
		for col := 1; col < BoardSize-1; col++ {
			interior = append(interior, Coord{Row: row, Col: col})
		}
	}
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})
	return interior[:n], nil
}
