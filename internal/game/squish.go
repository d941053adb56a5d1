package game

import (
	"github.com/michelv/squish/internal/core"
)

// SolidKind names what a victim was pressed against.
type SolidKind uint8

const (
	SolidNone SolidKind = iota
	SolidWall
	SolidBoundary
	SolidRock
)

// Squish records one crushed entity: it was caught between a rock that just
// moved and something immovable on its far side.
type Squish struct {
	ID      int
	Kind    Kind
	Pos     core.Coord
	Against SolidKind
}

// DetectSquishes scans the aftermath of a rock-chain shift for crushed
// entities. For each rock that just moved into position p it inspects the
// cell one step further in the push direction; a victim there is crushed
// when the cell beyond it is immovable under the victim's own rule:
//
//   - regular enemies, eggs and the player are crushed against any solid:
//     a wall, the grid boundary or a stationary rock;
//   - pushers are crushed only against a wall.
//
// Detection never mutates the registry; the state machine applies the
// removals so it can also account score and emit events.
func DetectSquishes(g *Grid, r *Registry, res MoveResult) []Squish {
	if res.Outcome != OutcomePushed {
		return nil
	}

	var out []Squish
	for _, p := range res.RocksMoved {
		next := p.Step(res.Dir)
		victim := r.At(next)
		if victim == nil || victim.Kind == KindRock {
			continue
		}
		if !victim.Kind.Enemy() && victim.Kind != KindPlayer {
			continue
		}

		against := solidBehind(g, r, next, res.Dir)
		if crushes(victim.Kind, against) {
			out = append(out, Squish{
				ID:      victim.ID,
				Kind:    victim.Kind,
				Pos:     victim.Pos,
				Against: against,
			})
		}
	}
	return out
}

// solidBehind classifies the cell one step past the victim.
func solidBehind(g *Grid, r *Registry, victim core.Coord, d core.Dir) SolidKind {
	beyond := victim.Step(d)
	switch {
	case !g.InBounds(beyond):
		return SolidBoundary
	case g.IsWall(beyond):
		return SolidWall
	default:
		if e := r.At(beyond); e != nil && e.Kind == KindRock {
			return SolidRock
		}
		return SolidNone
	}
}

// crushes applies the per-kind crush rule. The asymmetry is the core
// puzzle mechanic: a pusher survives pressure against anything but a wall.
func crushes(kind Kind, against SolidKind) bool {
	switch against {
	case SolidWall:
		return true
	case SolidBoundary, SolidRock:
		return kind != KindPusher
	default:
		return false
	}
}
