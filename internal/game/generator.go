package game

import (
	"math/rand"

	"github.com/michelv/squish/internal/core"
)

// GeneratorConfig tunes random field generation for endless play.
type GeneratorConfig struct {
	Width    int
	Height   int
	Coverage float64 // fraction of the interior filled with rocks
	Enemies  int
	Hatch    int // countdown seed for generated eggs
}

// GenerateField builds a random level: sealed border, rocks scattered by
// coverage ratio, enemies on free cells and the player at the cell with the
// greatest combined distance from the enemies and the walls.
func GenerateField(rng *rand.Rand, cfg GeneratorConfig) Setup {
	w, h := cfg.Width, cfg.Height
	setup := Setup{
		Name:   "endless",
		Width:  w,
		Height: h,
	}

	for x := 0; x < w; x++ {
		setup.Walls = append(setup.Walls, core.C(x, 0), core.C(x, h-1))
	}
	for y := 1; y < h-1; y++ {
		setup.Walls = append(setup.Walls, core.C(0, y), core.C(w-1, y))
	}

	interior := (w - 2) * (h - 2)
	rocks := int(float64(interior) * cfg.Coverage)
	occupied := make(map[core.Coord]bool)

	for len(setup.Rocks) < rocks {
		c := core.C(1+rng.Intn(w-2), 1+rng.Intn(h-2))
		if occupied[c] {
			continue
		}
		occupied[c] = true
		setup.Rocks = append(setup.Rocks, c)
	}

	for i := 0; i < cfg.Enemies; i++ {
		for {
			c := core.C(1+rng.Intn(w-2), 1+rng.Intn(h-2))
			if occupied[c] {
				continue
			}
			occupied[c] = true
			setup.Enemies = append(setup.Enemies, EnemyPlacement{
				Kind:  generatedKind(i),
				Pos:   c,
				Hatch: cfg.Hatch,
			})
			break
		}
	}

	setup.Player = farthestFreeCell(setup, occupied)
	return setup
}

// generatedKind mixes enemy kinds as the field grows: mostly regulars with
// the occasional egg and pusher.
func generatedKind(i int) Kind {
	switch i % 4 {
	case 2:
		return KindEgg
	case 3:
		return KindPusher
	default:
		return KindRegular
	}
}

// farthestFreeCell finds the free interior cell maximizing the summed BFS
// distance from every enemy and from the nearest wall. Distances ignore
// rocks: the player wants room, not a provably unreachable pocket.
func farthestFreeCell(s Setup, occupied map[core.Coord]bool) core.Coord {
	walls := make(map[core.Coord]bool, len(s.Walls))
	for _, c := range s.Walls {
		walls[c] = true
	}
	inBounds := func(c core.Coord) bool {
		return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
	}

	bfs := func(sources []core.Coord) map[core.Coord]int {
		dist := make(map[core.Coord]int, s.Width*s.Height)
		queue := make([]core.Coord, 0, len(sources))
		for _, c := range sources {
			dist[c] = 0
			queue = append(queue, c)
		}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range core.AllDirs {
				next := cur.Step(d)
				if !inBounds(next) {
					continue
				}
				if _, seen := dist[next]; seen {
					continue
				}
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
		return dist
	}

	var enemySources []core.Coord
	for _, e := range s.Enemies {
		enemySources = append(enemySources, e.Pos)
	}
	fromEnemies := bfs(enemySources)
	fromWalls := bfs(s.Walls)

	best := core.C(1, 1)
	bestScore := -1
	for y := 1; y < s.Height-1; y++ {
		for x := 1; x < s.Width-1; x++ {
			c := core.C(x, y)
			if occupied[c] || walls[c] {
				continue
			}
			score := fromEnemies[c] + fromWalls[c]
			if score > bestScore {
				best = c
				bestScore = score
			}
		}
	}
	return best
}
