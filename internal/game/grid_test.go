package game

import (
	"errors"
	"testing"

	"github.com/michelv/squish/internal/core"
)

// borderWalls returns a sealed border for a w x h grid.
func borderWalls(w, h int) []core.Coord {
	var walls []core.Coord
	for x := 0; x < w; x++ {
		walls = append(walls, core.C(x, 0), core.C(x, h-1))
	}
	for y := 1; y < h-1; y++ {
		walls = append(walls, core.C(0, y), core.C(w-1, y))
	}
	return walls
}

func mustGrid(t *testing.T, w, h int, extra ...core.Coord) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, append(borderWalls(w, h), extra...))
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewGridRejectsTooSmall(t *testing.T) {
	_, err := NewGrid(2, 5, nil)
	var mErr MalformedLevelError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedLevelError, got %v", err)
	}
	if mErr.Code != CodeTooSmall {
		t.Errorf("expected code %s, got %s", CodeTooSmall, mErr.Code)
	}
}

func TestNewGridRejectsOpenBorder(t *testing.T) {
	walls := borderWalls(5, 5)
	// Punch a hole in the top border.
	open := walls[:0]
	for _, w := range walls {
		if w != core.C(2, 0) {
			open = append(open, w)
		}
	}
	_, err := NewGrid(5, 5, open)
	var mErr MalformedLevelError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedLevelError, got %v", err)
	}
	if mErr.Code != CodeOpenBorder {
		t.Errorf("expected code %s, got %s", CodeOpenBorder, mErr.Code)
	}
}

func TestGridSolid(t *testing.T) {
	g := mustGrid(t, 5, 5, core.C(2, 2))

	if !g.Solid(core.C(0, 0)) {
		t.Error("border wall should be solid")
	}
	if !g.Solid(core.C(2, 2)) {
		t.Error("interior wall should be solid")
	}
	if !g.Solid(core.C(-1, 3)) {
		t.Error("out of bounds should be solid")
	}
	if g.Solid(core.C(1, 1)) {
		t.Error("empty interior cell should not be solid")
	}
	if g.IsWall(core.C(-1, 3)) {
		t.Error("out of bounds is not wall terrain")
	}
}

func TestGridInterior(t *testing.T) {
	g := mustGrid(t, 4, 4)
	interior := g.Interior()
	if len(interior) != 4 {
		t.Fatalf("expected 4 interior cells in a 4x4 grid, got %d", len(interior))
	}
	for _, c := range interior {
		if g.IsWall(c) {
			t.Errorf("interior cell %v is a wall", c)
		}
	}
}
