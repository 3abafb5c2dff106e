package escape

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/games/escape/sim"
)

// Visual characters for rendering
const (
	PlatformChar   = '█'
	PlayerChar     = '█'
	EnemyChar      = '▓'
	NoteChar       = '♪'
	KeyChar        = 'K'
	ExitChar       = '▒'
	LifeChar       = '♥'
	NoiseFullChar  = '■'
	NoiseEmptyChar = '·'
)

// Minimum playable screen size.
const (
	MinScreenW = 40
	MinScreenH = 12
)

const noiseBarWidth = 10

// viewport maps world coordinates to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(snap sim.Snapshot, dst *core.Screen) viewport {
	h := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / snap.FieldW,
		sy:  float64(h) / snap.FieldH,
		top: 1,
		w:   dst.Width(),
		h:   h,
	}
}

// rect projects a world box, keeping at least one cell so thin ledges stay visible.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y*v.sy) + v.top
}

// Render draws the current world state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(snap, dst)

	for _, p := range snap.Platforms {
		dst.DrawRect(v.rect(p), PlatformChar, core.ColorGray)
	}

	exitColor := core.ColorRed
	if !snap.Exit.Locked {
		exitColor = core.ColorBrightGreen
	}
	dst.DrawRect(v.rect(snap.Exit.Box), ExitChar, exitColor)

	for _, n := range snap.Notes {
		if n.Collected {
			continue
		}
		x, y := v.point(n.X, n.Y)
		dst.SetColor(x, y, NoteChar, core.ColorBrightWhite)
	}

	if !snap.Key.Taken {
		x, y := v.point(snap.Key.X, snap.Key.Y)
		dst.SetColor(x, y, KeyChar, core.ColorBrightYellow)
	}

	enemyColor := core.ColorRed
	if sim.BehaviorFor(snap.Noise, snap.Threshold) == sim.BehaviorChase {
		enemyColor = core.ColorBrightRed
	}
	for _, e := range snap.Enemies {
		dst.DrawRect(v.rect(e.Box()), EnemyChar, enemyColor)
	}

	dst.DrawRect(v.rect(snap.Player.Box()), PlayerChar, playerColor(snap.Player))

	g.renderHUD(dst, snap)
	g.renderOverlay(dst, snap)
}

// playerColor dims the player on alternating six-tick spans while invulnerable.
func playerColor(p sim.Player) core.Color {
	if p.Invul > 0 && (p.Invul/6)%2 == 0 {
		return core.ColorBlue
	}
	return core.ColorBrightCyan
}

func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := snap.HUD

	x := 0
	put := func(s string, c core.Color) {
		dst.DrawTextColor(x, 0, s, c)
		x += len([]rune(s))
	}

	put(fmt.Sprintf("Notes: %d  Keys: %d  ", hud.Score, hud.Keys), core.ColorWhite)
	put("Lives: ", core.ColorWhite)
	put(strings.Repeat(string(LifeChar), hud.Lives), core.ColorBrightRed)
	put("  ", core.ColorDefault)

	if hud.LevelName != "" {
		put(levelLabel(hud.Level, hud.LevelName)+"  ", core.ColorCyan)
	}

	filled := int(math.Round(snap.Noise / 100 * noiseBarWidth))
	noiseColor := core.ColorYellow
	if snap.Noise > snap.Threshold {
		noiseColor = core.ColorBrightRed
	}
	put("Noise ", core.ColorWhite)
	put(strings.Repeat(string(NoiseFullChar), filled), noiseColor)
	put(strings.Repeat(string(NoiseEmptyChar), noiseBarWidth-filled), core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	var lines []string
	var color core.Color

	switch snap.Phase {
	case sim.PhaseIdle:
		color = core.ColorBrightCyan
		lines = []string{
			"ESCAPE THE NIGHT",
			"",
			"Collect the key, avoid the entity.",
			"Sprinting and jumping create noise.",
			"",
			"←/→ move   Space jump   Shift+←/→ sprint",
			"Enter: start   Q: quit",
		}
	case sim.PhaseWon:
		color = core.ColorBrightGreen
		lines = []string{
			"YOU ESCAPED",
			"",
			fmt.Sprintf("You escaped the facility. Notes collected: %d.", snap.HUD.Score),
			"",
			"Enter/Y: play again   R: title   Q: quit",
		}
	case sim.PhaseLost:
		color = core.ColorBrightRed
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("You were caught. Notes: %d", snap.HUD.Score),
			"",
			"Enter/Y: replay   R: title   Q: quit",
		}
	default:
		if b := g.Banner(); b != "" {
			dst.DrawTextCentered(dst.Height()/3, " "+b+" ", core.ColorBrightYellow)
		}
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width)/2-2, (dst.Height()-len(lines))/2-1, width+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := fmt.Sprintf("Screen too small (%dx%d)", dst.Width(), dst.Height())
	need := fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH)
	dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorBrightRed)
	dst.DrawTextCentered(dst.Height()/2, need, core.ColorWhite)
}

func levelLabel(idx int, name string) string {
	return fmt.Sprintf("Level %d: %s", idx+1, name)
}
