package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/registry"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

// footerRows is the space kept below the playfield for the help line.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes model events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the playfield gets everything but the footer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH -= footerRows
	cfg = cfg.Normalized()

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		log:        log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.saveScore()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - footerRows
	m.config = m.config.Normalized()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The layout depends on the screen size, so a running game starts over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.log.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the score once per game. Failures are logged, never fatal.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.log.Warn("could not save score", "err", err)
		return
	}
	m.log.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as plain text to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
