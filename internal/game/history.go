package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/blackbox/internal/fileutil"
)

// HistoryWriter stores a finished game's transcript
type HistoryWriter interface {
	WriteHistory(gameID string, content string) error
}

// FileHistoryWriter writes one transcript file per game into a directory
type FileHistoryWriter struct {
	directory string
}

// NewFileHistoryWriter creates a new file-based history writer
func NewFileHistoryWriter(directory string) *FileHistoryWriter {
	return &FileHistoryWriter{directory: directory}
}

// Path returns the file a game's transcript is written to.
func (w *FileHistoryWriter) Path(gameID string) string {
	return filepath.Join(w.directory, fmt.Sprintf("game_%s.txt", gameID))
}

// WriteHistory writes the transcript, creating the directory if needed
func (w *FileHistoryWriter) WriteHistory(gameID string, content string) error {
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(w.Path(gameID), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// NoOpHistoryWriter discards transcripts
type NoOpHistoryWriter struct{}

// WriteHistory does nothing
func (NoOpHistoryWriter) WriteHistory(string, string) error {
	return nil
}

// Recorder subscribes to a session's events and keeps every shot and guess
// as a command line, in play order. The result can be replayed with the run
// command against the same layout.
type Recorder struct {
	lines []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnEvent implements EventSubscriber.
func (r *Recorder) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case RayEvent:
		r.lines = append(r.lines, fmt.Sprintf("shoot %d %d", e.Shot.Entry.Row, e.Shot.Entry.Col))
	case GuessEvent:
		r.lines = append(r.lines, fmt.Sprintf("guess %d %d", e.Coord.Row, e.Coord.Col))
	}
}

// Moves returns the recorded command lines.
func (r *Recorder) Moves() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Transcript renders the moves with a comment header describing s. Header
// lines are given without the leading "# ".
func (r *Recorder) Transcript(s *Session, header ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# game %s\n", s.ID())
	for _, h := range header {
		fmt.Fprintf(&sb, "# %s\n", h)
	}
	fmt.Fprintf(&sb, "# score %d, %d of %d atoms found, %d rays\n",
		s.Score(), len(s.Found()), len(s.Found())+s.AtomsRemaining(), len(s.shots))
	for _, line := range r.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
