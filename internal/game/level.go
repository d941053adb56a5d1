package game

import (
	"github.com/michelv/squish/internal/core"
)

// EnemyPlacement positions one hostile entity in a level definition.
type EnemyPlacement struct {
	Kind Kind
	Pos  core.Coord
	// Hatch seeds the countdown for eggs; 0 means use the engine default.
	Hatch int
}

// Setup is a complete level definition: static terrain plus initial entity
// placements. The levels package parses files into Setups; the generator
// produces them for endless play.
type Setup struct {
	Name    string
	Width   int
	Height  int
	Walls   []core.Coord
	Player  core.Coord
	Rocks   []core.Coord
	Enemies []EnemyPlacement

	// EnemyEveryTicks overrides the enemy cadence for this level; 0 means
	// use the engine default.
	EnemyEveryTicks int
}

// Build constructs the grid and a fully populated registry from the setup.
// Any inconsistency (colliding placements, placements on walls, bad
// dimensions) fails with a MalformedLevelError and no partial level.
func (s Setup) Build(defaultHatch int) (*Grid, *Registry, int, error) {
	grid, err := NewGrid(s.Width, s.Height, s.Walls)
	if err != nil {
		return nil, nil, 0, err
	}

	reg := NewRegistry(grid)

	// Player first, so it always holds the lowest id.
	player, err := reg.Spawn(KindPlayer, s.Player)
	if err != nil {
		return nil, nil, 0, placementError("player", s.Player, err)
	}

	for _, pos := range s.Rocks {
		if _, err := reg.Spawn(KindRock, pos); err != nil {
			return nil, nil, 0, placementError("rock", pos, err)
		}
	}

	for _, p := range s.Enemies {
		if !p.Kind.Enemy() {
			return nil, nil, 0, malformed(CodeUnknownGlyph, "%s at %v is not an enemy kind", p.Kind, p.Pos)
		}
		e, err := reg.Spawn(p.Kind, p.Pos)
		if err != nil {
			return nil, nil, 0, placementError(p.Kind.String(), p.Pos, err)
		}
		if p.Kind == KindEgg {
			e.Hatch = p.Hatch
			if e.Hatch <= 0 {
				e.Hatch = defaultHatch
			}
		}
	}

	return grid, reg, player.ID, nil
}

func placementError(what string, pos core.Coord, err error) error {
	switch err {
	case ErrOccupiedCell:
		return malformed(CodePlacementCollision, "%s at %v collides with another placement", what, pos)
	case ErrIntoWall:
		return malformed(CodePlacementOnWall, "%s at %v sits on a wall", what, pos)
	case ErrOutOfBounds:
		return malformed(CodePlacementOnWall, "%s at %v lies outside the grid", what, pos)
	default:
		return err
	}
}
