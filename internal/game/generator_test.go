package game

import (
	"math/rand"
	"testing"
)

func TestGenerateFieldDeterministic(t *testing.T) {
	cfg := GeneratorConfig{Width: 20, Height: 12, Coverage: 0.3, Enemies: 5, Hatch: 12}

	a := GenerateField(rand.New(rand.NewSource(99)), cfg)
	b := GenerateField(rand.New(rand.NewSource(99)), cfg)

	if a.Player != b.Player {
		t.Errorf("player placement diverged: %v vs %v", a.Player, b.Player)
	}
	if len(a.Rocks) != len(b.Rocks) {
		t.Fatalf("rock count diverged: %d vs %d", len(a.Rocks), len(b.Rocks))
	}
	for i := range a.Rocks {
		if a.Rocks[i] != b.Rocks[i] {
			t.Fatalf("rock %d diverged: %v vs %v", i, a.Rocks[i], b.Rocks[i])
		}
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Fatalf("enemy %d diverged: %+v vs %+v", i, a.Enemies[i], b.Enemies[i])
		}
	}
}

func TestGenerateFieldBuilds(t *testing.T) {
	cfg := GeneratorConfig{Width: 16, Height: 10, Coverage: 0.35, Enemies: 4, Hatch: 12}
	setup := GenerateField(rand.New(rand.NewSource(3)), cfg)

	grid, reg, playerID, err := setup.Build(12)
	if err != nil {
		t.Fatalf("generated setup failed to build: %v", err)
	}
	if grid.W != 16 || grid.H != 10 {
		t.Errorf("grid is %dx%d, want 16x10", grid.W, grid.H)
	}
	if reg.Get(playerID) == nil {
		t.Fatal("no player in the built level")
	}
	if reg.EnemyCount() != 4 {
		t.Errorf("enemy count = %d, want 4", reg.EnemyCount())
	}
	interior := (cfg.Width - 2) * (cfg.Height - 2)
	wantRocks := int(float64(interior) * cfg.Coverage)
	if reg.Count(KindRock) != wantRocks {
		t.Errorf("rock count = %d, want %d", reg.Count(KindRock), wantRocks)
	}
}

func TestGenerateFieldKindMix(t *testing.T) {
	cfg := GeneratorConfig{Width: 20, Height: 14, Coverage: 0.2, Enemies: 8, Hatch: 12}
	setup := GenerateField(rand.New(rand.NewSource(5)), cfg)

	counts := map[Kind]int{}
	for _, e := range setup.Enemies {
		counts[e.Kind]++
	}
	if counts[KindRegular] != 4 || counts[KindEgg] != 2 || counts[KindPusher] != 2 {
		t.Errorf("kind mix = %v, want 4 regulars, 2 eggs, 2 pushers", counts)
	}
}

func TestGenerateFieldPlayerKeepsDistance(t *testing.T) {
	cfg := GeneratorConfig{Width: 24, Height: 16, Coverage: 0.1, Enemies: 1, Hatch: 12}
	setup := GenerateField(rand.New(rand.NewSource(11)), cfg)

	if setup.Player.Manhattan(setup.Enemies[0].Pos) < 2 {
		t.Errorf("player at %v spawned adjacent to the enemy at %v",
			setup.Player, setup.Enemies[0].Pos)
	}
	for _, r := range setup.Rocks {
		if r == setup.Player {
			t.Fatalf("player placed on a rock at %v", r)
		}
	}
	if setup.Player.X <= 0 || setup.Player.Y <= 0 ||
		setup.Player.X >= cfg.Width-1 || setup.Player.Y >= cfg.Height-1 {
		t.Errorf("player at %v is outside the interior", setup.Player)
	}
}
