// Package game implements the squish simulation engine: the maze grid,
// the entity registry, chain-push movement resolution, crush detection,
// per-kind enemy behavior and the level state machine. The package is
// UI-agnostic and deterministic; all I/O lives in the platform layer.
package game

import (
	"github.com/michelv/squish/internal/core"
)

// Grid is the static terrain of a level: a rectangular map of empty and
// wall cells. It is immutable after construction; entities live in the
// Registry, never in the Grid.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	walls []bool
}

// NewGrid builds a grid of the given dimensions with walls at the listed
// coordinates. Construction fails with a MalformedLevelError when the grid
// is too small to play or the border is not fully sealed by walls.
func NewGrid(w, h int, walls []core.Coord) (*Grid, error) {
	if w < 3 || h < 3 {
		return nil, malformed(CodeTooSmall, "grid %dx%d is below the 3x3 minimum", w, h)
	}

	g := &Grid{
		W:     w,
		H:     h,
		walls: make([]bool, w*h),
	}
	for _, c := range walls {
		if !g.InBounds(c) {
			return nil, malformed(CodeOpenBorder, "wall %v outside %dx%d grid", c, w, h)
		}
		g.walls[g.index(c)] = true
	}

	// Every border cell must be impassable so no entity can ever leave
	// the field.
	for x := 0; x < w; x++ {
		if !g.walls[g.index(core.C(x, 0))] || !g.walls[g.index(core.C(x, h-1))] {
			return nil, malformed(CodeOpenBorder, "border cell in column %d is not a wall", x)
		}
	}
	for y := 0; y < h; y++ {
		if !g.walls[g.index(core.C(0, y))] || !g.walls[g.index(core.C(w-1, y))] {
			return nil, malformed(CodeOpenBorder, "border cell in row %d is not a wall", y)
		}
	}

	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c core.Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// IsWall returns true if the cell holds wall terrain.
// Out-of-bounds coordinates are not walls; use Solid for the combined check.
func (g *Grid) IsWall(c core.Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walls[g.index(c)]
}

// Solid returns true if the cell can never be entered: a wall or out of
// bounds.
func (g *Grid) Solid(c core.Coord) bool {
	return !g.InBounds(c) || g.IsWall(c)
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}
	return n
}

// Interior returns all non-wall coordinates in row-major order.
func (g *Grid) Interior() []core.Coord {
	coords := make([]core.Coord, 0, g.W*g.H-g.WallCount())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.C(x, y)
			if !g.IsWall(c) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
