package game

import (
	"fmt"
	"math/rand"

	"github.com/michelv/squish/internal/config"
	"github.com/michelv/squish/internal/core"
)

// Status is the level state machine.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Package-level variables for config/difficulty selection, set by the CLI
// before the game is created.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the engine config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy/normal/hard/fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from the
// beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Game implements the squish simulation: one player against regulars, eggs
// and pushers on a rock-strewn field. It satisfies the platform game
// interface; all mutation happens inside Step in a fixed phase order, so a
// given seed and input sequence always replays identically.
type Game struct {
	mode Mode
	cfg  config.SquishConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	campaign []Setup

	// Level state
	grid       *Grid
	reg        *Registry
	playerID   int
	enemyEvery int
	levelName  string
	loadErr    error

	// Run state
	tick       uint64
	score      int
	moves      int
	squished   int
	levelIndex int
	startLevel int
	status     Status
	finished   bool // campaign complete; terminal until restart

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool

	events []core.Event
}

// New creates a campaign game over the given level definitions.
func New(campaign []Setup) *Game {
	return &Game{
		mode:     ModeCampaign,
		campaign: campaign,
	}
}

// NewEndless creates an endless game over generated fields, one more enemy
// per cleared field.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "squish_endless"
	}
	return "squish"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Squish (Endless)"
	}
	return "Squish"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.squished = 0
	g.finished = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	engineCfg, err := config.LoadSquish(configPath)
	if err != nil {
		engineCfg = config.DefaultSquishConfig()
	}
	g.cfg = engineCfg

	g.diff = config.NewDifficultyManager(engineCfg.Difficulty)
	if difficultyPreset != "" {
		preset := config.DifficultyPreset(difficultyPreset)
		if config.IsFixedPreset(preset) {
			g.diff.SetEnabled(false)
		} else {
			g.diff.SetInitialLevel(config.InitialLevelForPreset(preset))
		}
	}

	g.startLevel = 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= len(g.campaign) {
		g.startLevel = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}
	g.levelIndex = g.startLevel

	g.loadLevel()
}

// loadLevel builds the grid and registry for the current level.
func (g *Game) loadLevel() {
	var setup Setup
	switch g.mode {
	case ModeEndless:
		setup = GenerateField(g.rng, GeneratorConfig{
			Width:    g.cfg.Endless.Width,
			Height:   g.cfg.Endless.Height,
			Coverage: g.cfg.Endless.BlockCoverage,
			Enemies:  g.diff.Enemies(g.cfg.Endless.InitialEnemies, g.levelIndex),
			Hatch:    g.cfg.Engine.EggHatchTicks,
		})
	default:
		if len(g.campaign) == 0 {
			g.loadErr = malformed(CodeNoPlayer, "campaign has no levels")
			g.status = StatusLost
			return
		}
		setup = g.campaign[g.levelIndex%len(g.campaign)]
	}

	grid, reg, playerID, err := setup.Build(g.cfg.Engine.EggHatchTicks)
	if err != nil {
		g.loadErr = err
		g.status = StatusLost
		return
	}
	g.loadErr = nil
	g.grid = grid
	g.reg = reg
	g.playerID = playerID
	g.levelName = setup.Name
	g.status = StatusPlaying

	g.enemyEvery = setup.EnemyEveryTicks
	if g.enemyEvery <= 0 {
		g.enemyEvery = g.diff.Cadence(g.cfg.Engine.EnemyEveryTicks, g.levelIndex)
	}

	// Check screen fit and center the map under the HUD.
	requiredW := g.grid.W + 2
	requiredH := g.grid.H + g.hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW - g.grid.W) / 2
	g.mapOffsetY = g.hudHeight

	g.emit(LevelStarted{Level: g.levelIndex + 1, Name: g.levelName})
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) player() *Entity {
	if g.reg == nil {
		return nil
	}
	return g.reg.Get(g.playerID)
}

// Step advances the game by one tick. Phases run strictly in order: player
// move, squish check, enemy moves (each followed by its own squish check),
// then the win/lose evaluation. No phase starts before the prior completes.
func (g *Game) Step(input core.InputFrame) core.StepResult {

	if input.Has(core.ActionRestart) {
		switch {
		case g.status == StatusWon && !g.finished:
			g.levelIndex++
			g.loadLevel()
			return g.result()
		case g.status == StatusLost || g.finished:
			g.score = 0
			g.moves = 0
			g.squished = 0
			g.finished = false
			g.levelIndex = g.startLevel
			g.loadLevel()
			return g.result()
		}
	}

	if input.Has(core.ActionPause) {
		switch g.status {
		case StatusPlaying:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusPlaying
		}
	}

	if g.status != StatusPlaying || g.tooSmall || g.loadErr != nil {
		return g.result()
	}

	// The tick counter only advances with the simulation, so the enemy
	// cadence stays aligned across pauses.
	g.tick++

	// Player phase: at most one movement command per tick.
	if d, ok := input.Move(); ok {
		g.playerMove(d)
	}

	// Enemy phase on the level cadence.
	if g.status == StatusPlaying && g.tick%uint64(g.enemyEvery) == 0 {
		g.enemyPhase()
	}

	g.evaluate()
	return g.result()
}

// result hands off and clears the event buffer, so events emitted between
// Steps (the LevelStarted from Reset included) are delivered exactly once.
func (g *Game) result() core.StepResult {
	evs := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: evs}
}

// playerMove resolves the player's command for this tick.
func (g *Game) playerMove(d core.Dir) {
	res := ResolveMove(g.grid, g.reg, g.playerID, d)
	switch res.Outcome {
	case OutcomeMoved:
		g.moves++
	case OutcomePushed:
		g.moves++
		g.applySquishes(res)
	case OutcomeCaught:
		g.lose(PlayerCaught{By: res.Caught.Kind, Pos: res.Caught.Pos})
	}
}

// enemyPhase lets every enemy act once, in spawn order. Kinds are
// snapshotted at phase start so an egg hatching now acts as a pusher only
// from the next enemy turn.
func (g *Game) enemyPhase() {
	type turn struct {
		id   int
		kind Kind
	}
	var turns []turn
	for _, id := range g.reg.IDs() {
		if e := g.reg.Get(id); e != nil && e.Kind.Enemy() {
			turns = append(turns, turn{id: id, kind: e.Kind})
		}
	}

	for _, t := range turns {
		if g.status != StatusPlaying {
			return
		}
		e := g.reg.Get(t.id)
		if e == nil {
			// Squished earlier in this phase.
			continue
		}

		if t.kind == KindEgg {
			e.Hatch--
			if e.Hatch <= 0 {
				_ = g.reg.Replace(t.id, KindPusher)
				g.emit(EggHatched{Pos: e.Pos})
			}
			continue
		}

		d, ok := decideMove(g.grid, g.reg, e, g.player().Pos)
		if !ok {
			continue
		}
		res := ResolveMove(g.grid, g.reg, t.id, d)
		switch res.Outcome {
		case OutcomeMoved:
			e.LastDir = d
			e.HasLastDir = true
		case OutcomePushed:
			e.LastDir = d
			e.HasLastDir = true
			g.applySquishes(res)
		case OutcomeCaught:
			g.lose(PlayerCaught{By: e.Kind, Pos: res.Caught.Pos})
		}
		// A blocked enemy simply forfeits its action.
	}
}

// applySquishes removes every entity crushed by the rock shift, scoring
// enemies and losing the level if the player was among the victims.
func (g *Game) applySquishes(res MoveResult) {
	for _, sq := range DetectSquishes(g.grid, g.reg, res) {
		if sq.Kind == KindPlayer {
			g.lose(PlayerCrushed{Pos: sq.Pos})
			continue
		}
		_ = g.reg.Remove(sq.ID)
		points := g.reward(sq.Kind)
		g.score += points
		g.squished++
		g.emit(EnemySquished{Kind: sq.Kind, Pos: sq.Pos, Points: points})
	}
}

// reward returns the fixed score reward for a squished kind.
func (g *Game) reward(kind Kind) int {
	switch kind {
	case KindEgg:
		return g.cfg.Rewards.Egg
	case KindPusher:
		return g.cfg.Rewards.Pusher
	default:
		return g.cfg.Rewards.Regular
	}
}

// evaluate checks the win condition: the level is won on the exact tick
// the last enemy is removed, freezing the score.
func (g *Game) evaluate() {
	if g.status != StatusPlaying {
		return
	}
	if g.reg.EnemyCount() == 0 {
		g.status = StatusWon
		if g.mode == ModeCampaign && g.levelIndex >= len(g.campaign)-1 {
			g.finished = true
		}
		g.emit(LevelWon{Level: g.levelIndex + 1, Score: g.score})
	}
}

// lose transitions to Lost and freezes the score.
func (g *Game) lose(cause core.Event) {
	if g.status != StatusPlaying {
		return
	}
	g.status = StatusLost
	g.emit(cause)
	g.emit(LevelLost{Level: g.levelIndex + 1, Score: g.score})
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusLost || g.finished,
		Paused:   g.status == StatusPaused,
	}
}

// Level returns the 1-indexed current level.
func (g *Game) Level() int {
	return g.levelIndex + 1
}

// Moves returns the number of successful player moves this run.
func (g *Game) Moves() int {
	return g.moves
}

// SquishedCount returns the number of enemies crushed this run.
func (g *Game) SquishedCount() int {
	return g.squished
}

// Status returns the current level status.
func (g *Game) Status() Status {
	return g.status
}

// Won reports whether the run ended in full victory.
func (g *Game) Won() bool {
	return g.finished
}

// DebugState returns a one-line dump used by the platform debug overlay.
func (g *Game) DebugState() string {
	p := g.player()
	pos := core.C(-1, -1)
	if p != nil {
		pos = p.Pos
	}
	enemies := 0
	if g.reg != nil {
		enemies = g.reg.EnemyCount()
	}
	return fmt.Sprintf("tick=%d level=%d status=%s score=%d player=%v enemies=%d",
		g.tick, g.levelIndex+1, g.status, g.score, pos, enemies)
}
