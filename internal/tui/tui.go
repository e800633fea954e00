// Package tui is the interactive Bubble Tea front end for a game session.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackbox/internal/commands"
	"github.com/lox/blackbox/internal/game"
)

const (
	paneLog = iota
	paneInput
)

// tickMsg refreshes the elapsed time in the sidebar.
type tickMsg time.Time

// Model is the Bubble Tea model for one game
type Model struct {
	runner   *commands.Runner
	renderer *game.BoardRenderer
	logger   *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	reveal      bool
	quitting    bool
	focusedPane int

	// Dimensions
	width       int
	height      int
	initialized bool
}

// New creates a model that sends input lines to runner.
func New(runner *commands.Runner, renderer *game.BoardRenderer, logger *log.Logger) *Model {
	if renderer == nil {
		renderer = game.NewBoardRenderer(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Sized properly when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "shoot 0 5, guess 3 2, help, quit"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = PromptStyle
	ti.TextStyle = GameLogStyle
	ti.Prompt = "> "

	return &Model{
		runner:      runner,
		renderer:    renderer,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		gameLog:     []string{InfoStyle.Render("Type help for the list of commands.")},
		focusedPane: paneInput,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == paneLog {
				m.focusedPane = paneInput
				m.input.Focus()
			} else {
				m.focusedPane = paneLog
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == paneInput {
				line := m.input.Value()
				m.input.SetValue("")
				if m.submit(line) {
					m.quitting = true
					return m, tea.Quit
				}
			}
		case "up", "k":
			if m.focusedPane == paneLog {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == paneLog {
				m.logViewport.ScrollDown(1)
			}
		case "home", "g":
			if m.focusedPane == paneLog {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == paneLog {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == paneInput {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs one input line and reports whether the game should end.
func (m *Model) submit(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	m.AddLogEntry(PromptStyle.Render("> " + line))

	cmd, err := commands.Parse(line)
	if err != nil {
		m.addError(err)
		return false
	}

	switch cmd.Kind {
	case commands.Board:
		// always on screen
		return false
	case commands.Reveal:
		m.reveal = true
		m.AddLogEntry(WarningStyle.Render("atoms revealed"))
		return false
	}

	wasSolved := m.runner.Session().IsSolved()
	resp, err := m.runner.Run(cmd)
	if err != nil {
		m.addError(err)
		return false
	}

	for _, out := range strings.Split(resp.Output, "\n") {
		m.AddLogEntry(GameLogStyle.Render(out))
	}
	if !wasSolved && m.runner.Session().IsSolved() {
		m.AddLogEntry(SuccessStyle.Render("Board solved. Type quit to leave."))
	}
	return resp.Quit
}

func (m *Model) addError(err error) {
	m.logger.Debug("Command failed", "error", err)
	msg := err.Error()
	switch {
	case errors.Is(err, game.ErrCornerEntry):
		msg = "corners cannot be used as entry points"
	case errors.Is(err, game.ErrNotBorder):
		msg = "rays must be fired from a border cell"
	case errors.Is(err, game.ErrOutOfRange):
		msg = fmt.Sprintf("rows and columns run from 0 to %d", game.BoardSize-1)
	}
	m.AddLogEntry(ErrorStyle.Render(msg))
}

// AddLogEntry appends a line to the game log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns the game log lines.
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Quitting reports whether the model has asked to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)
	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderFor(paneInput)).
		Width(max(m.width-2, 1)).
		Render(inputContent)

	topHeight := max(m.height-inputHeight-4, 1)

	boardContent := m.renderer.Render(m.runner.Session().Snapshot(),
		game.SessionOverlay(m.runner.Session(), m.reveal))
	boardPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(idleBorder).
		Height(topHeight).
		Render(boardContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 22)
	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(idleBorder).
		Width(sidebarWidth).
		Height(topHeight).
		Render(sidebarContent)

	logWidth := max(m.width-lipgloss.Width(boardPane)-lipgloss.Width(sidebarPane)-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = topHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if !m.initialized && logWidth > 1 && topHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderFor(paneLog)).
		Width(logWidth).
		Height(topHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, inputPane)
}

func (m *Model) borderFor(pane int) lipgloss.Color {
	if m.focusedPane == pane {
		return focusedBorder
	}
	return idleBorder
}

func (m *Model) renderSidebarPane() string {
	s := m.runner.Session()

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Black Box"))
	content.WriteString("\n\n")
	content.WriteString(ScoreStyle.Render(fmt.Sprintf("Score: %d", s.Score())))
	content.WriteString("\n")
	fmt.Fprintf(&content, "Atoms left: %d\n", s.AtomsRemaining())
	fmt.Fprintf(&content, "Rays fired: %d\n", len(s.Shots()))
	fmt.Fprintf(&content, "Wrong guesses: %d\n", len(s.WrongGuesses()))
	fmt.Fprintf(&content, "Time: %s\n", s.Elapsed().Round(time.Second))
	if s.IsSolved() {
		content.WriteString("\n")
		content.WriteString(SuccessStyle.Render("Solved!"))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("H absorbed  R reflected"))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("◉ found  x wrong guess"))
	return content.String()
}

func (m *Model) renderInputPane() string {
	var content strings.Builder
	content.WriteString(m.input.View())
	content.WriteString("\n")
	if m.focusedPane == paneLog {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Esc to quit"))
	}
	return content.String()
}
