package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DisplayStyles contains styling for board display
type DisplayStyles struct {
	Header    lipgloss.Style
	Axis      lipgloss.Style
	Empty     lipgloss.Style
	Atom      lipgloss.Style
	Found     lipgloss.Style
	Wrong     lipgloss.Style
	Border    lipgloss.Style
	Hit       lipgloss.Style // absorbed entry
	Reflect   lipgloss.Style
	ExitLabel lipgloss.Style
}

// NewDisplayStyles creates display styles bound to renderer r. A nil r uses
// the default lipgloss renderer.
func NewDisplayStyles(r *lipgloss.Renderer) *DisplayStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &DisplayStyles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Axis: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C")),
		Atom: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Found: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Wrong: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Hit: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Reflect: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		ExitLabel: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// Overlay is the player-facing state drawn on top of a Snapshot.
type Overlay struct {
	Shots  []Shot
	Found  []Coord
	Wrong  []Coord
	Reveal bool // show hidden atoms
}

// SessionOverlay collects the overlay for s.
func SessionOverlay(s *Session, reveal bool) Overlay {
	return Overlay{
		Shots:  s.Shots(),
		Found:  s.Found(),
		Wrong:  s.WrongGuesses(),
		Reveal: reveal,
	}
}

// BoardRenderer draws the grid with row BoardSize-1 at the top.
type BoardRenderer struct {
	styles *DisplayStyles
}

// NewBoardRenderer creates a renderer using the given styles.
func NewBoardRenderer(styles *DisplayStyles) *BoardRenderer {
	if styles == nil {
		styles = NewDisplayStyles(nil)
	}
	return &BoardRenderer{styles: styles}
}

const cellWidth = 3

// Render draws snap with ov layered on top. Border cells show H for an
// absorbed entry, R for a reflection and the shot number for both ends of an
// exiting ray. The first shot to use a border cell owns its label.
func (br *BoardRenderer) Render(snap Snapshot, ov Overlay) string {
	labels := borderLabels(ov.Shots)
	found := toSet(ov.Found)
	wrong := toSet(ov.Wrong)

	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteString(br.styles.Axis.Render(fmt.Sprintf("%2d ", row)))
		for col := 0; col < BoardSize; col++ {
			c := C(row, col)
			sb.WriteString(br.cell(snap.At(c), c, labels, found, wrong, ov.Reveal))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("   ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteString(br.styles.Axis.Render(pad(strconv.Itoa(col))))
	}
	return sb.String()
}

func (br *BoardRenderer) cell(kind CellKind, c Coord, labels map[Coord]string, found, wrong map[Coord]bool, reveal bool) string {
	switch kind {
	case CellCorner:
		return pad("")
	case CellBorder:
		label, ok := labels[c]
		switch {
		case !ok:
			return br.styles.Border.Render(pad("·"))
		case label == "H":
			return br.styles.Hit.Render(pad(label))
		case label == "R":
			return br.styles.Reflect.Render(pad(label))
		default:
			return br.styles.ExitLabel.Render(pad(label))
		}
	}

	switch {
	case found[c]:
		return br.styles.Found.Render(pad("◉"))
	case wrong[c]:
		return br.styles.Wrong.Render(pad("x"))
	case kind == CellAtom && reveal:
		return br.styles.Atom.Render(pad("●"))
	default:
		return br.styles.Empty.Render(pad("·"))
	}
}

// RenderStatus draws a one-line score summary.
func (br *BoardRenderer) RenderStatus(s *Session) string {
	return br.styles.Header.Render(fmt.Sprintf("Score %d  Atoms left %d  Shots %d",
		s.Score(), s.AtomsRemaining(), len(s.shots)))
}

func borderLabels(shots []Shot) map[Coord]string {
	labels := make(map[Coord]string)
	set := func(c Coord, label string) {
		if _, ok := labels[c]; !ok {
			labels[c] = label
		}
	}
	for _, s := range shots {
		switch {
		case s.Outcome.Kind == Absorbed:
			set(s.Entry, "H")
		case s.Outcome.IsReflection(s.Entry):
			set(s.Entry, "R")
		default:
			n := strconv.Itoa(s.Number)
			set(s.Entry, n)
			set(s.Outcome.Exit, n)
		}
	}
	return labels
}

func pad(s string) string {
	n := lipgloss.Width(s)
	if n >= cellWidth {
		return s
	}
	left := (cellWidth - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-n-left)
}

func toSet(coords []Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}
