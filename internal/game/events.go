package game

import (
	"github.com/michelv/squish/internal/core"
)

// Engine events surfaced through core.StepResult. The UI, audio and
// high-score collaborators react to these; the engine never renders or
// plays anything itself.

// EnemySquished is emitted when a crushed enemy is removed.
type EnemySquished struct {
	Kind   Kind
	Pos    core.Coord
	Points int
}

func (EnemySquished) GameEvent() {}

// PlayerCaught is emitted when an enemy reaches the player's cell or the
// player walks into an enemy.
type PlayerCaught struct {
	By  Kind
	Pos core.Coord
}

func (PlayerCaught) GameEvent() {}

// PlayerCrushed is emitted when the player is squished by a pushed rock.
type PlayerCrushed struct {
	Pos core.Coord
}

func (PlayerCrushed) GameEvent() {}

// EggHatched is emitted when an egg's countdown expires and it becomes a
// pusher in place.
type EggHatched struct {
	Pos core.Coord
}

func (EggHatched) GameEvent() {}

// LevelStarted is emitted on the first tick of a fresh level.
type LevelStarted struct {
	Level int
	Name  string
}

func (LevelStarted) GameEvent() {}

// LevelWon is emitted on the tick the last enemy is removed.
type LevelWon struct {
	Level int
	Score int
}

func (LevelWon) GameEvent() {}

// LevelLost is emitted when the player is caught or crushed.
type LevelLost struct {
	Level int
	Score int
}

func (LevelLost) GameEvent() {}
