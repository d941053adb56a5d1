package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/michelv/squish/internal/core"
	"github.com/michelv/squish/internal/registry"
	"github.com/michelv/squish/internal/storage"
)

// statsProvider is implemented by variants that expose per-run statistics
// for the run history table.
type statsProvider interface {
	Level() int
	Moves() int
	SquishedCount() int
	Won() bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	keys       *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	quitting   bool
	runSaved   bool // Whether the current game over has been persisted
}

// NewModel creates a new Bubble Tea model for the given variant.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input. All game actions, including restart,
// are forwarded to the simulation; the state machine decides whether a
// restart means the next level or a fresh run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
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

	// The field layout depends on the screen, so rebuild mid-level.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.runStart = time.Now()
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.persistRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver && m.runSaved {
		// A restart cleared the previous game over.
		m.runSaved = false
		m.runStart = time.Now()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// persistRun saves the score and the run record. Best effort: a storage
// failure never interrupts play.
func (m *Model) persistRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		_, _ = m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	run := storage.RunEntry{
		GameID:       m.game.ID(),
		Score:        m.gameState.Score,
		LevelReached: 1,
		Outcome:      "lost",
		DurationSecs: int(time.Since(m.runStart).Seconds()),
	}
	if sp, ok := m.game.(statsProvider); ok {
		run.LevelReached = sp.Level()
		run.Moves = sp.Moves()
		run.Squished = sp.SquishedCount()
		if sp.Won() {
			run.Outcome = "won"
		}
	}
	_, _ = m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".squish", "screenshots")
	_ = os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	_ = os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given variant.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
