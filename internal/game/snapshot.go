package game

// CellKind classifies one cell of a Snapshot.
type CellKind int

const (
	CellEmpty  CellKind = iota // interior, no atom
	CellAtom                   // holds an atom
	CellBorder                 // valid entry/exit point
	CellCorner                 // unusable corner
)

// Snapshot is a copy of the grid layout, detached from any score state.
type Snapshot struct {
	cells [BoardSize * BoardSize]CellKind
}

// NewSnapshot captures the layout of b.
func NewSnapshot(b *Board) Snapshot {
	var s Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := C(row, col)
			kind := CellEmpty
			switch {
			case b.IsCorner(c):
				kind = CellCorner
			case b.IsAtom(c):
				kind = CellAtom
			case b.IsBorder(c):
				kind = CellBorder
			}
			s.cells[index(c)] = kind
		}
	}
	return s
}

// At returns the kind of cell c. Off-grid coordinates report CellCorner,
// the same as any other cell a ray can never use.
func (s Snapshot) At(c Coord) CellKind {
	if c.Row < 0 || c.Row >= BoardSize || c.Col < 0 || c.Col >= BoardSize {
		return CellCorner
	}
	return s.cells[index(c)]
}

// Atoms returns the atom positions in row-major order.
func (s Snapshot) Atoms() []Coord {
	var atoms []Coord
	for i, kind := range s.cells {
		if kind == CellAtom {
			atoms = append(atoms, Coord{Row: i / BoardSize, Col: i % BoardSize})
		}
	}
	return atoms
}
