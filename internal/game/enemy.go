package game

import (
	"github.com/michelv/squish/internal/core"
)

// decideMove picks the direction an enemy proposes this tick. Eggs never
// move and are handled by the hatch countdown instead. The returned bool
// is false when the enemy has no proposal at all.
func decideMove(g *Grid, r *Registry, e *Entity, player core.Coord) (core.Dir, bool) {
	switch e.Kind {
	case KindRegular:
		return decideChase(g, r, e.Pos, player)
	case KindPusher:
		return decidePusher(g, r, e, player)
	default:
		return core.DirUp, false
	}
}

// decideChase advances toward the player: BFS shortest path around walls,
// rocks and other enemies, with a greedy Manhattan fallback when no clear
// path exists. Greedy ties break in the fixed order Up, Down, Left, Right.
func decideChase(g *Grid, r *Registry, from, player core.Coord) (core.Dir, bool) {
	if d, ok := bfsStep(g, r, from, player); ok {
		return d, true
	}

	// No open path: lean greedily toward the player and let the resolver
	// reject or push as appropriate.
	best := core.DirUp
	bestDist := -1
	for _, d := range core.AllDirs {
		dist := from.Step(d).Manhattan(player)
		if bestDist < 0 || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

// bfsStep finds the first step of a shortest path from one cell to another.
// Cells holding walls, rocks or other entities are impassable; the target
// cell itself is always reachable so an adjacent chaser can close in.
func bfsStep(g *Grid, r *Registry, from, to core.Coord) (core.Dir, bool) {
	if from == to {
		return core.DirUp, false
	}

	type node struct {
		pos   core.Coord
		first core.Dir
	}
	visited := map[core.Coord]bool{from: true}
	queue := []node{}

	for _, d := range core.AllDirs {
		next := from.Step(d)
		if next == to {
			return d, true
		}
		if passable(g, r, next) {
			visited[next] = true
			queue = append(queue, node{pos: next, first: d})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.AllDirs {
			next := cur.pos.Step(d)
			if next == to {
				return cur.first, true
			}
			if !visited[next] && passable(g, r, next) {
				visited[next] = true
				queue = append(queue, node{pos: next, first: cur.first})
			}
		}
	}
	return core.DirUp, false
}

func passable(g *Grid, r *Registry, c core.Coord) bool {
	return !g.Solid(c) && r.At(c) == nil
}

// decidePusher picks a rock push aimed at the player when one is available,
// falling back to a plain chase otherwise. Preference order:
//
//  1. a push whose shifted chain would pin the player between the lead
//     rock and a solid cell (an immediate crush threat);
//  2. any legal push whose direction closes on the player, preferring the
//     pusher's previous direction so it keeps leaning on the same chain;
//  3. chase like a regular enemy.
func decidePusher(g *Grid, r *Registry, e *Entity, player core.Coord) (core.Dir, bool) {
	var productive []core.Dir

	for _, d := range core.AllDirs {
		target, ok := pushTarget(g, r, e.Pos, d)
		if !ok {
			continue
		}
		// target is the empty cell the lead rock would occupy. A crush
		// threat exists when the player sits one step further with a
		// solid cell at their back.
		if target.Step(d) == player && solidBehind(g, r, player, d) != SolidNone {
			return d, true
		}
		if towardPlayer(e.Pos, d, player) {
			productive = append(productive, d)
		}
	}

	if len(productive) > 0 {
		if e.HasLastDir {
			for _, d := range productive {
				if d == e.LastDir {
					return d, true
				}
			}
		}
		return productive[0], true
	}

	return decideChase(g, r, e.Pos, player)
}

// pushTarget walks the rock chain in front of pos and returns the empty
// cell the lead rock would shift into. ok is false when there is no chain
// or the push would be rejected.
func pushTarget(g *Grid, r *Registry, pos core.Coord, d core.Dir) (core.Coord, bool) {
	cur := pos.Step(d)
	e := r.At(cur)
	if e == nil || e.Kind != KindRock {
		return core.Coord{}, false
	}
	for e != nil && e.Kind == KindRock {
		cur = cur.Step(d)
		e = r.At(cur)
	}
	if g.Solid(cur) || r.At(cur) != nil {
		return core.Coord{}, false
	}
	return cur, true
}

// towardPlayer reports whether stepping in d closes the axis gap to the
// player.
func towardPlayer(from core.Coord, d core.Dir, player core.Coord) bool {
	return from.Step(d).Manhattan(player) < from.Manhattan(player)
}
