package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackbox/internal/commands"
	"github.com/lox/blackbox/internal/game"
)

func newTestModel(t *testing.T, atoms ...game.Coord) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests

	bus := game.NewEventBus()
	session, err := game.NewSession(atoms,
		game.WithID("tui-test"),
		game.WithClock(quartz.NewMock(t)),
		game.WithEventBus(bus),
		game.WithLogger(logger))
	require.NoError(t, err)

	runner := commands.NewRunner(session, bus, nil, logger)
	return New(runner, nil, logger)
}

func enter(t *testing.T, m *Model, line string) tea.Cmd {
	t.Helper()
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func lastLog(m *Model) string {
	l := m.Log()
	return l[len(l)-1]
}

func TestModelCommands(t *testing.T) {
	t.Run("shoot and guess are logged", func(t *testing.T) {
		m := newTestModel(t, game.C(3, 2))

		enter(t, m, "shoot 0 5")
		assert.Contains(t, lastLog(m), "ray 1 from (0,5): exits at (9,5), -2 (score 23)")
		assert.Empty(t, m.input.Value(), "input is cleared after enter")

		enter(t, m, "guess 3 2")
		assert.Contains(t, strings.Join(m.Log(), "\n"), "guess (3,2): atom found, 0 left")
		assert.Contains(t, lastLog(m), "Board solved")
		assert.False(t, m.Quitting())
	})

	t.Run("errors are logged and cost nothing", func(t *testing.T) {
		m := newTestModel(t, game.C(3, 2))

		enter(t, m, "shoot 0 0")
		assert.Contains(t, lastLog(m), "corners cannot be used")

		enter(t, m, "shoot 5 5")
		assert.Contains(t, lastLog(m), "border cell")

		enter(t, m, "guess 12 1")
		assert.Contains(t, lastLog(m), "0 to 9")

		enter(t, m, "jump")
		assert.Contains(t, lastLog(m), "unknown command")

		assert.Equal(t, 25, m.runner.Session().Score())
	})

	t.Run("blank input is ignored", func(t *testing.T) {
		m := newTestModel(t)
		before := len(m.Log())
		enter(t, m, "   ")
		assert.Len(t, m.Log(), before)
	})

	t.Run("reveal shows atoms on the board", func(t *testing.T) {
		m := newTestModel(t, game.C(3, 2))
		m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
		assert.NotContains(t, m.View(), "●")

		enter(t, m, "reveal")
		assert.True(t, m.reveal)
		assert.Contains(t, m.View(), "●")
	})

	t.Run("quit command ends the program", func(t *testing.T) {
		m := newTestModel(t)
		cmd := enter(t, m, "quit")
		require.NotNil(t, cmd)
		assert.True(t, m.Quitting())
		assert.Contains(t, lastLog(m), "final score 25")
		assert.Empty(t, m.View())
	})
}

func TestModelKeys(t *testing.T) {
	t.Run("escape quits", func(t *testing.T) {
		m := newTestModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)
		assert.True(t, m.Quitting())
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := newTestModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.True(t, m.Quitting())
	})

	t.Run("tab toggles focus", func(t *testing.T) {
		m := newTestModel(t)
		assert.Equal(t, paneInput, m.focusedPane)

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, paneLog, m.focusedPane)
		assert.False(t, m.input.Focused())

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, paneInput, m.focusedPane)
		assert.True(t, m.input.Focused())
	})

	t.Run("enter does nothing while the log is focused", func(t *testing.T) {
		m := newTestModel(t)
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		before := len(m.Log())
		enter(t, m, "shoot 0 5")
		assert.Len(t, m.Log(), before)
		assert.Empty(t, m.runner.Session().Shots())
	})
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, game.C(3, 2))
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := m.View()
	assert.Contains(t, view, "Score: 25")
	assert.Contains(t, view, "Atoms left: 1")
	assert.Contains(t, view, "Black Box")
}
