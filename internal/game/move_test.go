package game

import (
	"testing"

	"github.com/michelv/squish/internal/core"
)

func TestResolveMovePlainStep(t *testing.T) {
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))

	res := ResolveMove(g, r, p.ID, core.DirRight)
	if res.Outcome != OutcomeMoved {
		t.Fatalf("outcome = %v, want Moved", res.Outcome)
	}
	if p.Pos != core.C(2, 1) {
		t.Errorf("player at %v, want (2,1)", p.Pos)
	}
	if len(res.RocksMoved) != 0 {
		t.Errorf("plain step reported rocks moved: %v", res.RocksMoved)
	}
}

func TestResolveMoveBlockedByWall(t *testing.T) {
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))

	res := ResolveMove(g, r, p.ID, core.DirLeft)
	if res.Outcome != OutcomeBlocked {
		t.Fatalf("outcome = %v, want Blocked", res.Outcome)
	}
	if p.Pos != core.C(1, 1) {
		t.Errorf("blocked move changed position to %v", p.Pos)
	}
}

func TestResolveMovePushesChain(t *testing.T) {
	// Player at (1,1), three rocks at (2..4,1), empty cell at (5,1),
	// wall at (6,1). The whole chain shifts one cell right.
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))
	for x := 2; x <= 4; x++ {
		if _, err := r.Spawn(KindRock, core.C(x, 1)); err != nil {
			t.Fatalf("spawn rock: %v", err)
		}
	}

	res := ResolveMove(g, r, p.ID, core.DirRight)
	if res.Outcome != OutcomePushed {
		t.Fatalf("outcome = %v, want Pushed", res.Outcome)
	}
	if p.Pos != core.C(2, 1) {
		t.Errorf("player at %v, want (2,1)", p.Pos)
	}
	want := []core.Coord{core.C(3, 1), core.C(4, 1), core.C(5, 1)}
	if len(res.RocksMoved) != len(want) {
		t.Fatalf("RocksMoved = %v, want %v", res.RocksMoved, want)
	}
	for i := range want {
		if res.RocksMoved[i] != want[i] {
			t.Fatalf("RocksMoved = %v, want %v", res.RocksMoved, want)
		}
	}
	for _, c := range want {
		e := r.At(c)
		if e == nil || e.Kind != KindRock {
			t.Errorf("expected rock at %v after push", c)
		}
	}
}

func TestResolveMoveChainAgainstWallBlocks(t *testing.T) {
	// Rocks fill every cell up to the wall; nothing can shift.
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))
	for x := 2; x <= 5; x++ {
		r.Spawn(KindRock, core.C(x, 1))
	}

	res := ResolveMove(g, r, p.ID, core.DirRight)
	if res.Outcome != OutcomeBlocked {
		t.Fatalf("outcome = %v, want Blocked", res.Outcome)
	}
	if p.Pos != core.C(1, 1) {
		t.Errorf("player moved to %v on a blocked push", p.Pos)
	}
	for x := 2; x <= 5; x++ {
		if e := r.At(core.C(x, 1)); e == nil || e.Kind != KindRock {
			t.Errorf("rock at (%d,1) disturbed by blocked push", x)
		}
	}
}

func TestResolveMoveChainEndingAtEnemyBlocks(t *testing.T) {
	// A chain that terminates at an enemy rejects the push entirely; crushing
	// requires empty space for the lead rock to move into.
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))
	r.Spawn(KindRock, core.C(2, 1))
	enemy, _ := r.Spawn(KindRegular, core.C(3, 1))

	res := ResolveMove(g, r, p.ID, core.DirRight)
	if res.Outcome != OutcomeBlocked {
		t.Fatalf("outcome = %v, want Blocked", res.Outcome)
	}
	if r.Get(enemy.ID) == nil {
		t.Error("enemy removed by a blocked push")
	}
	if p.Pos != core.C(1, 1) {
		t.Errorf("player moved to %v on a blocked push", p.Pos)
	}
}

func TestResolveMovePlayerIntoEnemyIsCaught(t *testing.T) {
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))
	enemy, _ := r.Spawn(KindRegular, core.C(2, 1))

	res := ResolveMove(g, r, p.ID, core.DirRight)
	if res.Outcome != OutcomeCaught {
		t.Fatalf("outcome = %v, want Caught", res.Outcome)
	}
	if res.Caught == nil || res.Caught.ID != enemy.ID {
		t.Errorf("Caught = %v, want enemy %d", res.Caught, enemy.ID)
	}
	if p.Pos != core.C(1, 1) {
		t.Errorf("catch moved the player to %v", p.Pos)
	}
}

func TestResolveMoveEnemyIntoEnemyBlocks(t *testing.T) {
	g := mustGrid(t, 7, 5)
	r := NewRegistry(g)
	r.Spawn(KindPlayer, core.C(5, 3))
	a, _ := r.Spawn(KindRegular, core.C(1, 1))
	r.Spawn(KindPusher, core.C(2, 1))

	res := ResolveMove(g, r, a.ID, core.DirRight)
	if res.Outcome != OutcomeBlocked {
		t.Fatalf("outcome = %v, want Blocked", res.Outcome)
	}
}
