package core

import "testing"

func TestCoordStep(t *testing.T) {
	c := C(3, 3)

	if got := c.Step(DirUp); got != C(3, 2) {
		t.Errorf("Step(Up) = %v, want (3,2)", got)
	}
	if got := c.Step(DirDown); got != C(3, 4) {
		t.Errorf("Step(Down) = %v, want (3,4)", got)
	}
	if got := c.Step(DirLeft); got != C(2, 3) {
		t.Errorf("Step(Left) = %v, want (2,3)", got)
	}
	if got := c.Step(DirRight); got != C(4, 3) {
		t.Errorf("Step(Right) = %v, want (4,3)", got)
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range AllDirs {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) != %v", d, d)
		}
		dx1, dy1 := d.Delta()
		dx2, dy2 := d.Opposite().Delta()
		if dx1+dx2 != 0 || dy1+dy2 != 0 {
			t.Errorf("%v and %v deltas do not cancel", d, d.Opposite())
		}
	}
}

func TestManhattan(t *testing.T) {
	if d := C(1, 1).Manhattan(C(4, 5)); d != 7 {
		t.Errorf("Manhattan = %d, want 7", d)
	}
	if d := C(4, 5).Manhattan(C(1, 1)); d != 7 {
		t.Errorf("Manhattan should be symmetric, got %d", d)
	}
	if d := C(2, 2).Manhattan(C(2, 2)); d != 0 {
		t.Errorf("Manhattan to self = %d, want 0", d)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, want 10", got)
	}
}

func TestInputFrameMove(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Move(); ok {
		t.Error("empty frame should have no movement")
	}

	f.Set(ActionLeft)
	d, ok := f.Move()
	if !ok || d != DirLeft {
		t.Errorf("Move() = %v, %v; want Left, true", d, ok)
	}

	// Multiple movement actions: first in tie-break order wins.
	f.Set(ActionUp)
	d, _ = f.Move()
	if d != DirUp {
		t.Errorf("Move() with Up+Left = %v, want Up", d)
	}

	f.Clear()
	if _, ok := f.Move(); ok {
		t.Error("cleared frame should have no movement")
	}
}
