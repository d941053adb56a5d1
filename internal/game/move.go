package game

import (
	"github.com/michelv/squish/internal/core"
)

// Outcome classifies the result of a resolved move.
type Outcome uint8

const (
	// OutcomeBlocked means the move was rejected; nothing changed.
	OutcomeBlocked Outcome = iota
	// OutcomeMoved means the actor stepped into an empty cell.
	OutcomeMoved
	// OutcomePushed means the actor shifted a rock chain and stepped in.
	OutcomePushed
	// OutcomeCaught means the actor ran into its prey: either the player
	// walked into an enemy or an enemy reached the player. No position
	// changes; the state machine handles the consequence.
	OutcomeCaught
)

// MoveResult describes a resolved move.
type MoveResult struct {
	Outcome Outcome
	Dir     core.Dir

	// RocksMoved holds the post-shift positions of every rock in the
	// pushed chain, nearest to the actor first. Empty unless the outcome
	// is OutcomePushed.
	RocksMoved []core.Coord

	// Caught is the entity contacted when the outcome is OutcomeCaught.
	Caught *Entity
}

// ResolveMove attempts to move the entity one step in the given direction,
// pushing any chain of rocks in front of it. The same resolution is used
// for the player and for every enemy.
//
// The rock chain is resolved as a transaction: the full chain is collected
// and validated before any rock moves, and rocks are then applied from the
// far end toward the actor so no rock ever overwrites another.
func ResolveMove(g *Grid, r *Registry, id int, d core.Dir) MoveResult {
	actor := r.Get(id)
	if actor == nil {
		return MoveResult{Outcome: OutcomeBlocked, Dir: d}
	}

	dest := actor.Pos.Step(d)
	if g.Solid(dest) {
		return MoveResult{Outcome: OutcomeBlocked, Dir: d}
	}

	occupant := r.At(dest)
	if occupant == nil {
		// Plain step.
		if err := r.Move(id, dest); err != nil {
			return MoveResult{Outcome: OutcomeBlocked, Dir: d}
		}
		return MoveResult{Outcome: OutcomeMoved, Dir: d}
	}

	if occupant.Kind != KindRock {
		if isCatch(actor, occupant) {
			return MoveResult{Outcome: OutcomeCaught, Dir: d, Caught: occupant}
		}
		return MoveResult{Outcome: OutcomeBlocked, Dir: d}
	}

	// Walk the straight run of consecutive rocks starting at dest.
	chain := []core.Coord{}
	cur := dest
	for {
		e := r.At(cur)
		if e == nil || e.Kind != KindRock {
			break
		}
		chain = append(chain, cur)
		cur = cur.Step(d)
	}

	// cur is now the first non-rock cell past the chain. The push is legal
	// only if it is empty terrain; a wall, the boundary or any entity
	// rejects the entire chain.
	if g.Solid(cur) || r.At(cur) != nil {
		return MoveResult{Outcome: OutcomeBlocked, Dir: d}
	}

	// Apply from the far end toward the actor.
	moved := make([]core.Coord, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		rock := r.At(chain[i])
		next := chain[i].Step(d)
		if err := r.Move(rock.ID, next); err != nil {
			// Unreachable after validation; treat as blocked anyway.
			return MoveResult{Outcome: OutcomeBlocked, Dir: d}
		}
		moved[i] = next
	}
	if err := r.Move(id, dest); err != nil {
		return MoveResult{Outcome: OutcomeBlocked, Dir: d}
	}

	return MoveResult{Outcome: OutcomePushed, Dir: d, RocksMoved: moved}
}

// isCatch reports whether contact between the two entities is a catch:
// the player touching an enemy, or an enemy touching the player.
// All other contacts (enemy into enemy, anything into a rock handled
// elsewhere) simply block.
func isCatch(actor, target *Entity) bool {
	if actor.Kind == KindPlayer && target.Kind.Enemy() {
		return true
	}
	if actor.Kind.Enemy() && target.Kind == KindPlayer {
		return true
	}
	return false
}
