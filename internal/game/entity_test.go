package game

import (
	"testing"

	"github.com/michelv/squish/internal/core"
)

func TestRegistrySpawnAndLookup(t *testing.T) {
	g := mustGrid(t, 7, 7)
	r := NewRegistry(g)

	p, err := r.Spawn(KindPlayer, core.C(1, 1))
	if err != nil {
		t.Fatalf("spawn player: %v", err)
	}
	rock, err := r.Spawn(KindRock, core.C(3, 3))
	if err != nil {
		t.Fatalf("spawn rock: %v", err)
	}

	if got := r.At(core.C(1, 1)); got == nil || got.ID != p.ID {
		t.Errorf("At(1,1) = %v, want player %d", got, p.ID)
	}
	if got := r.Get(rock.ID); got == nil || got.Pos != core.C(3, 3) {
		t.Errorf("Get(rock) = %v, want pos (3,3)", got)
	}
	if r.At(core.C(5, 5)) != nil {
		t.Error("empty cell should have no occupant")
	}
}

func TestRegistrySpawnRejectsBadCells(t *testing.T) {
	g := mustGrid(t, 5, 5)
	r := NewRegistry(g)
	if _, err := r.Spawn(KindPlayer, core.C(2, 2)); err != nil {
		t.Fatalf("spawn: %v", err)
	}

	if _, err := r.Spawn(KindRock, core.C(2, 2)); err != ErrOccupiedCell {
		t.Errorf("spawn on occupied cell: got %v, want ErrOccupiedCell", err)
	}
	if _, err := r.Spawn(KindRock, core.C(0, 0)); err != ErrIntoWall {
		t.Errorf("spawn on wall: got %v, want ErrIntoWall", err)
	}
	if _, err := r.Spawn(KindRock, core.C(9, 9)); err != ErrOutOfBounds {
		t.Errorf("spawn out of bounds: got %v, want ErrOutOfBounds", err)
	}
}

func TestRegistryMoveKeepsIndexConsistent(t *testing.T) {
	g := mustGrid(t, 6, 6)
	r := NewRegistry(g)
	e, _ := r.Spawn(KindRegular, core.C(2, 2))

	if err := r.Move(e.ID, core.C(3, 2)); err != nil {
		t.Fatalf("move: %v", err)
	}
	if r.At(core.C(2, 2)) != nil {
		t.Error("old cell still occupied after move")
	}
	if got := r.At(core.C(3, 2)); got == nil || got.ID != e.ID {
		t.Error("new cell not occupied after move")
	}
	if err := r.Move(e.ID, core.C(0, 3)); err != ErrIntoWall {
		t.Errorf("move into wall: got %v, want ErrIntoWall", err)
	}
	if err := r.Move(999, core.C(4, 4)); err != ErrUnknownEntity {
		t.Errorf("move unknown id: got %v, want ErrUnknownEntity", err)
	}
}

func TestRegistryRemove(t *testing.T) {
	g := mustGrid(t, 6, 6)
	r := NewRegistry(g)
	e, _ := r.Spawn(KindEgg, core.C(2, 2))

	if err := r.Remove(e.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if r.Get(e.ID) != nil {
		t.Error("entity still resolvable after remove")
	}
	if r.At(core.C(2, 2)) != nil {
		t.Error("cell still occupied after remove")
	}
	if err := r.Remove(e.ID); err != ErrUnknownEntity {
		t.Errorf("double remove: got %v, want ErrUnknownEntity", err)
	}
}

func TestRegistryReplaceKeepsIDAndPos(t *testing.T) {
	g := mustGrid(t, 6, 6)
	r := NewRegistry(g)
	e, _ := r.Spawn(KindEgg, core.C(3, 3))

	if err := r.Replace(e.ID, KindPusher); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got := r.Get(e.ID)
	if got == nil || got.Kind != KindPusher {
		t.Fatalf("expected pusher with id %d, got %v", e.ID, got)
	}
	if got.Pos != core.C(3, 3) {
		t.Errorf("replace moved the entity to %v", got.Pos)
	}
}

func TestRegistryIDsSpawnOrder(t *testing.T) {
	g := mustGrid(t, 8, 8)
	r := NewRegistry(g)
	p, _ := r.Spawn(KindPlayer, core.C(1, 1))
	a, _ := r.Spawn(KindRegular, core.C(3, 3))
	b, _ := r.Spawn(KindPusher, core.C(5, 5))

	ids := r.IDs()
	want := []int{p.ID, a.ID, b.ID}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
	if r.EnemyCount() != 2 {
		t.Errorf("EnemyCount() = %d, want 2", r.EnemyCount())
	}
	if r.Count(KindPusher) != 1 {
		t.Errorf("Count(pusher) = %d, want 1", r.Count(KindPusher))
	}
}
