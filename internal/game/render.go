package game

import (
	"fmt"

	"github.com/michelv/squish/internal/core"
)

// Field glyphs.
const (
	glyphWall    = '▓'
	glyphRock    = '▒'
	glyphPlayer  = '@'
	glyphRegular = 'x'
	glyphEgg     = 'o'
	glyphPusher  = 'X'
)

func kindGlyph(k Kind) (rune, core.Color) {
	switch k {
	case KindPlayer:
		return glyphPlayer, core.ColorBrightCyan
	case KindRock:
		return glyphRock, core.ColorWhite
	case KindRegular:
		return glyphRegular, core.ColorBrightRed
	case KindEgg:
		return glyphEgg, core.ColorOrange
	case KindPusher:
		return glyphPusher, core.ColorBrightMagenta
	default:
		return '?', core.ColorDefault
	}
}

// Render draws the HUD, the field and any status overlay.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.loadErr != nil {
		g.centeredColored(screen, screen.Height()/2, "level failed to load", core.ColorBrightRed)
		g.centeredColored(screen, screen.Height()/2+1, g.loadErr.Error(), core.ColorGray)
		return
	}
	if g.tooSmall {
		g.centeredColored(screen, screen.Height()/2, "terminal too small", core.ColorBrightRed)
		need := fmt.Sprintf("need at least %dx%d", g.grid.W+2, g.grid.H+g.hudHeight+1)
		g.centeredColored(screen, screen.Height()/2+1, need, core.ColorGray)
		return
	}

	g.renderHUD(screen)
	g.renderField(screen)
	g.renderOverlay(screen)
}

func (g *Game) centeredColored(screen *core.Screen, y int, text string, c core.Color) {
	screen.DrawTextColored((screen.Width()-len(text))/2, y, text, c)
}

func (g *Game) renderHUD(screen *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Level: %d  Enemies: %d  Moves: %d",
		g.score, g.levelIndex+1, g.reg.EnemyCount(), g.moves)
	screen.DrawTextColored(0, 0, hud, core.ColorWhite)
	if g.levelName != "" && len(hud)+len(g.levelName)+2 < screen.Width() {
		screen.DrawTextColored(screen.Width()-len(g.levelName)-1, 0, g.levelName, core.ColorGray)
	}
	screen.DrawHLine(0, 1, screen.Width(), '─')
}

func (g *Game) renderField(screen *core.Screen) {
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			if g.grid.IsWall(core.C(x, y)) {
				screen.SetColored(g.mapOffsetX+x, g.mapOffsetY+y, glyphWall, core.ColorYellow)
			}
		}
	}
	for _, id := range g.reg.IDs() {
		e := g.reg.Get(id)
		if e == nil {
			continue
		}
		r, c := kindGlyph(e.Kind)
		screen.SetColored(g.mapOffsetX+e.Pos.X, g.mapOffsetY+e.Pos.Y, r, c)
	}
}

func (g *Game) renderOverlay(screen *core.Screen) {
	switch {
	case g.status == StatusPaused:
		g.drawBanner(screen, core.ColorBrightYellow, "PAUSED", "press P to resume")
	case g.finished:
		g.drawBanner(screen, core.ColorBrightGreen, "YOU WIN!",
			fmt.Sprintf("final score: %d", g.score), "press R to play again")
	case g.status == StatusWon:
		g.drawBanner(screen, core.ColorBrightGreen,
			fmt.Sprintf("LEVEL %d CLEARED", g.levelIndex+1), "press R for the next level")
	case g.status == StatusLost:
		g.drawBanner(screen, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("score: %d", g.score), "press R to restart")
	}
}

// drawBanner draws a boxed, centered overlay over the field.
func (g *Game) drawBanner(screen *core.Screen, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	x := (screen.Width() - w) / 2
	y := (screen.Height() - h) / 2
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			screen.Set(i, j, ' ')
		}
	}
	screen.DrawBox(x, y, w, h)
	for i, l := range lines {
		screen.DrawTextColored(x+(w-len(l))/2, y+1+i, l, color)
	}
}
