// Package levels parses level definitions into engine setups and holds the
// built-in campaign. It depends on the game engine but the engine does not
// depend on it.
package levels

import (
	"fmt"

	"github.com/michelv/squish/internal/core"
	"github.com/michelv/squish/internal/game"
)

// Map glyphs.
const (
	GlyphWall    = '#'
	GlyphEmpty   = '.'
	GlyphSpace   = ' '
	GlyphPlayer  = '@'
	GlyphRock    = 'O'
	GlyphRegular = 'e'
	GlyphEgg     = 'g'
	GlyphPusher  = 'P'
)

// Level is a parsed level definition: an ASCII layout plus optional per-level
// overrides.
type Level struct {
	ID   string
	Name string

	// Layout is the map, one string per row. All rows must have equal
	// length and the border must be sealed with walls.
	Layout []string

	// EnemyEveryTicks overrides the enemy cadence; 0 uses the engine default.
	EnemyEveryTicks int

	// EggHatchTicks overrides the hatch countdown for every egg in the
	// level; 0 uses the engine default.
	EggHatchTicks int

	FilePath string
}

// Setup converts the layout into an engine setup. Structural problems
// (ragged rows, missing or duplicate player, unknown glyphs) fail with a
// MalformedLevelError; terrain problems are caught later by the build.
func (l Level) Setup() (game.Setup, error) {
	s := game.Setup{
		Name:            l.Name,
		Height:          len(l.Layout),
		EnemyEveryTicks: l.EnemyEveryTicks,
	}
	if s.Height == 0 {
		return game.Setup{}, game.MalformedLevelError{
			Code: game.CodeTooSmall, Message: fmt.Sprintf("level %s has an empty layout", l.ID),
		}
	}
	s.Width = len([]rune(l.Layout[0]))

	playerSeen := false
	for y, row := range l.Layout {
		runes := []rune(row)
		if len(runes) != s.Width {
			return game.Setup{}, game.MalformedLevelError{
				Code:    game.CodeRaggedRows,
				Message: fmt.Sprintf("row %d is %d cells wide, row 0 is %d", y, len(runes), s.Width),
			}
		}
		for x, r := range runes {
			pos := core.C(x, y)
			switch r {
			case GlyphWall:
				s.Walls = append(s.Walls, pos)
			case GlyphEmpty, GlyphSpace:
			case GlyphPlayer:
				if playerSeen {
					return game.Setup{}, game.MalformedLevelError{
						Code:    game.CodeDuplicatePlayer,
						Message: fmt.Sprintf("second player at %v", pos),
					}
				}
				playerSeen = true
				s.Player = pos
			case GlyphRock:
				s.Rocks = append(s.Rocks, pos)
			case GlyphRegular:
				s.Enemies = append(s.Enemies, game.EnemyPlacement{Kind: game.KindRegular, Pos: pos})
			case GlyphEgg:
				s.Enemies = append(s.Enemies, game.EnemyPlacement{
					Kind: game.KindEgg, Pos: pos, Hatch: l.EggHatchTicks,
				})
			case GlyphPusher:
				s.Enemies = append(s.Enemies, game.EnemyPlacement{Kind: game.KindPusher, Pos: pos})
			default:
				return game.Setup{}, game.MalformedLevelError{
					Code:    game.CodeUnknownGlyph,
					Message: fmt.Sprintf("glyph %q at %v", r, pos),
				}
			}
		}
	}

	if !playerSeen {
		return game.Setup{}, game.MalformedLevelError{
			Code: game.CodeNoPlayer, Message: fmt.Sprintf("level %s places no player", l.ID),
		}
	}
	return s, nil
}

// Validate runs the full parse and build pipeline without keeping the result.
func (l Level) Validate(defaultHatch int) error {
	s, err := l.Setup()
	if err != nil {
		return err
	}
	_, _, _, err = s.Build(defaultHatch)
	return err
}
