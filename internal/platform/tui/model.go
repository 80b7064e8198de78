package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/sim/clock"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one arcade game.
// Each tick it measures the wall-clock time since the previous tick and
// hands it to the game together with the keys pressed in between.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.MultiInputFrame
	watch      *clock.Stopwatch
	gameState  core.GameState
	embedded   bool // Owned by a SessionModel; leaving does not quit the program
	quitting   bool
	done       bool // The game asked to leave via its in-game menu
	scoreSaved bool // Whether score has been saved for current game over
	lastRound  string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case nothing is persisted.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewMultiInputFrame(),
		watch:      clock.NewStopwatch(maxFrameGap),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.watch.Restart()
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Arenas are sized from the screen, so only rebuild between rounds.
	if m.game.State().InMenu {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	dt := m.watch.Lap(now)
	result := m.game.Step(dt, m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	m.record(result)

	if result.Quit {
		m.done = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// record persists the score once per game over and every finished round.
func (m *Model) record(result core.StepResult) {
	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.scoreSaved = true
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
			}
		}
	}

	if result.Round == nil || m.store == nil {
		return
	}
	id, err := m.store.SaveRound(m.game.ID(), *result.Round)
	if err != nil {
		m.logger.Warn("could not save round", "game", m.game.ID(), "err", err)
		return
	}
	m.lastRound = id
	m.logger.Debug("round saved", "id", id, "winner", result.Round.Winner)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Done returns true once the game's own menu asked to leave.
func (m Model) Done() bool {
	return m.done
}

// LastRound returns the ID of the most recently saved round, if any.
func (m Model) LastRound() string {
	return m.lastRound
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
