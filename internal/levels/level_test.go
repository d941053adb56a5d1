package levels

import (
	"errors"
	"testing"

	"github.com/michelv/squish/internal/core"
	"github.com/michelv/squish/internal/game"
)

func setupErrCode(t *testing.T, l Level) string {
	t.Helper()
	_, err := l.Setup()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var mErr game.MalformedLevelError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedLevelError, got %v", err)
	}
	return mErr.Code
}

func TestSetupParsesAllGlyphs(t *testing.T) {
	l := Level{
		ID: "glyphs",
		Layout: []string{
			"########",
			"#@.O.e.#",
			"#.g..P.#",
			"########",
		},
	}
	s, err := l.Setup()
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if s.Width != 8 || s.Height != 4 {
		t.Errorf("dimensions %dx%d, want 8x4", s.Width, s.Height)
	}
	if s.Player != core.C(1, 1) {
		t.Errorf("player at %v, want (1,1)", s.Player)
	}
	if len(s.Rocks) != 1 || s.Rocks[0] != core.C(3, 1) {
		t.Errorf("rocks = %v, want one at (3,1)", s.Rocks)
	}
	kinds := map[game.Kind]int{}
	for _, e := range s.Enemies {
		kinds[e.Kind]++
	}
	if kinds[game.KindRegular] != 1 || kinds[game.KindEgg] != 1 || kinds[game.KindPusher] != 1 {
		t.Errorf("enemies = %v, want one of each kind", s.Enemies)
	}
}

func TestSetupEggHatchOverride(t *testing.T) {
	l := Level{
		ID:            "hatch",
		EggHatchTicks: 4,
		Layout: []string{
			"#####",
			"#@.g#",
			"#####",
		},
	}
	s, err := l.Setup()
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if len(s.Enemies) != 1 || s.Enemies[0].Hatch != 4 {
		t.Errorf("enemies = %v, want one egg with hatch 4", s.Enemies)
	}
}

func TestSetupRejectsRaggedRows(t *testing.T) {
	l := Level{ID: "ragged", Layout: []string{
		"#####",
		"#@..#",
		"#..#",
		"#####",
	}}
	if code := setupErrCode(t, l); code != game.CodeRaggedRows {
		t.Errorf("code = %s, want %s", code, game.CodeRaggedRows)
	}
}

func TestSetupRejectsMissingPlayer(t *testing.T) {
	l := Level{ID: "empty", Layout: []string{
		"#####",
		"#..e#",
		"#####",
	}}
	if code := setupErrCode(t, l); code != game.CodeNoPlayer {
		t.Errorf("code = %s, want %s", code, game.CodeNoPlayer)
	}
}

func TestSetupRejectsDuplicatePlayer(t *testing.T) {
	l := Level{ID: "twins", Layout: []string{
		"#####",
		"#@.@#",
		"#####",
	}}
	if code := setupErrCode(t, l); code != game.CodeDuplicatePlayer {
		t.Errorf("code = %s, want %s", code, game.CodeDuplicatePlayer)
	}
}

func TestSetupRejectsUnknownGlyph(t *testing.T) {
	l := Level{ID: "weird", Layout: []string{
		"#####",
		"#@.?#",
		"#####",
	}}
	if code := setupErrCode(t, l); code != game.CodeUnknownGlyph {
		t.Errorf("code = %s, want %s", code, game.CodeUnknownGlyph)
	}
}

func TestSetupOpenBorderFailsBuild(t *testing.T) {
	l := Level{ID: "open", Layout: []string{
		"#####",
		"#@...",
		"#####",
	}}
	err := l.Validate(12)
	var mErr game.MalformedLevelError
	if !errors.As(err, &mErr) || mErr.Code != game.CodeOpenBorder {
		t.Errorf("err = %v, want %s", err, game.CodeOpenBorder)
	}
}

func TestBuiltinCampaignIsValid(t *testing.T) {
	list := Builtin()
	if len(list) < 4 {
		t.Fatalf("campaign has %d levels, want at least 4", len(list))
	}
	seen := map[string]bool{}
	for _, l := range list {
		if seen[l.ID] {
			t.Errorf("duplicate level id %s", l.ID)
		}
		seen[l.ID] = true
		if err := l.Validate(12); err != nil {
			t.Errorf("level %s: %v", l.ID, err)
		}
	}
}

func TestBuiltinDifficultyRampsUp(t *testing.T) {
	list := Builtin()
	first, err := list[0].Setup()
	if err != nil {
		t.Fatal(err)
	}
	last, err := list[len(list)-1].Setup()
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Enemies) <= len(first.Enemies) {
		t.Errorf("last level has %d enemies, first has %d; campaign should ramp up",
			len(last.Enemies), len(first.Enemies))
	}
}
