package game

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Level          int    // Current level (1-indexed for display)
	Mode           string // "campaign" or "endless"
	Status         string
	Score          int
	Moves          int
	Squished       int
	PlayerX        int
	PlayerY        int
	Rocks          int
	Regulars       int
	Eggs           int
	Pushers        int
	EnemyEveryTick int
	Finished       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	playerX, playerY := -1, -1
	if p := g.player(); p != nil {
		playerX = p.Pos.X
		playerY = p.Pos.Y
	}
	rocks, regulars, eggs, pushers := 0, 0, 0, 0
	if g.reg != nil {
		rocks = g.reg.Count(KindRock)
		regulars = g.reg.Count(KindRegular)
		eggs = g.reg.Count(KindEgg)
		pushers = g.reg.Count(KindPusher)
	}

	return Snapshot{
		Tick:           g.tick,
		Level:          g.levelIndex + 1,
		Mode:           string(g.mode),
		Status:         g.status.String(),
		Score:          g.score,
		Moves:          g.moves,
		Squished:       g.squished,
		PlayerX:        playerX,
		PlayerY:        playerY,
		Rocks:          rocks,
		Regulars:       regulars,
		Eggs:           eggs,
		Pushers:        pushers,
		EnemyEveryTick: g.enemyEvery,
		Finished:       g.finished,
	}
}
