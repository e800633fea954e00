package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	rec := NewRecorder()
	bus.Subscribe(rec)

	s := newTestSession(t, []Coord{C(3, 2), C(6, 6)}, WithEventBus(bus))
	_, err := s.ShootRay(0, 5)
	require.NoError(t, err)
	_, err = s.ShootRay(0, 0) // rejected, not recorded
	require.Error(t, err)
	_, err = s.GuessAtom(3, 2)
	require.NoError(t, err)
	_, err = s.GuessAtom(4, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{"shoot 0 5", "guess 3 2", "guess 4 4"}, rec.Moves())

	want := "# game test-session\n" +
		"# layout classic\n" +
		"# score 18, 1 of 2 atoms found, 1 rays\n" +
		"shoot 0 5\n" +
		"guess 3 2\n" +
		"guess 4 4\n"
	assert.Equal(t, want, rec.Transcript(s, "layout classic"))
}

func TestFileHistoryWriter(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "games")
	w := NewFileHistoryWriter(dir)

	require.NoError(t, w.WriteHistory("abc", "shoot 0 5\n"))

	data, err := os.ReadFile(filepath.Join(dir, "game_abc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "shoot 0 5\n", string(data))
	assert.Equal(t, filepath.Join(dir, "game_abc.txt"), w.Path("abc"))
}

func TestNoOpHistoryWriter(t *testing.T) {
	t.Parallel()

	var w HistoryWriter = NoOpHistoryWriter{}
	assert.NoError(t, w.WriteHistory("abc", "anything"))
}
