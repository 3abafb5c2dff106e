package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/games/escape/sim"
)

const (
	hudPad     = 10
	lineHeight = 16
	noiseBarW  = 120
	noiseBarH  = 10
)

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x0d, B: 0x17, A: 0xff}
	overlayColor    = color.RGBA{A: 0xc8}
)

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	screen.Fill(backgroundColor)

	for _, p := range snap.Platforms {
		fillBox(screen, p, colornames.Dimgray)
	}

	exitColor := colornames.Darkred
	if !snap.Exit.Locked {
		exitColor = colornames.Limegreen
	}
	fillBox(screen, snap.Exit.Box, exitColor)
	vector.StrokeRect(screen, float32(snap.Exit.X), float32(snap.Exit.Y),
		float32(snap.Exit.W), float32(snap.Exit.H), 2, colornames.White, false)

	for _, n := range snap.Notes {
		if !n.Collected {
			vector.DrawFilledCircle(screen, float32(n.X), float32(n.Y), float32(n.R), colornames.Lightskyblue, true)
		}
	}
	if !snap.Key.Taken {
		vector.DrawFilledCircle(screen, float32(snap.Key.X), float32(snap.Key.Y), float32(snap.Key.R), colornames.Gold, true)
	}

	enemyColor := colornames.Firebrick
	if sim.BehaviorFor(snap.Noise, snap.Threshold) == sim.BehaviorChase {
		enemyColor = colornames.Red
	}
	for _, e := range snap.Enemies {
		fillBox(screen, e.Box(), enemyColor)
	}

	// hidden on alternating six-tick spans while invulnerable
	if snap.Player.Invul == 0 || (snap.Player.Invul/6)%2 == 1 {
		fillBox(screen, snap.Player.Box(), colornames.Deepskyblue)
	}

	g.drawHUD(screen, snap)
	g.drawOverlay(screen, snap)
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(dst, s, g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, y float64, c color.Color) {
	w := ebtext.Advance(s, g.face)
	g.drawText(dst, s, (float64(dst.Bounds().Dx())-w)/2, y, c)
}

func (g *Game) drawHUD(dst *ebiten.Image, snap sim.Snapshot) {
	hud := snap.HUD
	g.drawText(dst, fmt.Sprintf("Notes: %d  Keys: %d  Lives: %d", hud.Score, hud.Keys, hud.Lives),
		hudPad, hudPad, colornames.White)
	if hud.LevelName != "" {
		g.drawText(dst, fmt.Sprintf("Level %d: %s", hud.Level+1, hud.LevelName),
			hudPad, hudPad+lineHeight, colornames.Lightcyan)
	}

	x := float32(dst.Bounds().Dx() - hudPad - noiseBarW)
	y := float32(hudPad + 2)
	barColor := colornames.Yellow
	if snap.Noise > snap.Threshold {
		barColor = colornames.Orangered
	}
	g.drawText(dst, "Noise", float64(x)-48, hudPad, colornames.White)
	vector.DrawFilledRect(dst, x, y, float32(snap.Noise/config.NoiseMax*noiseBarW), noiseBarH, barColor, false)
	vector.StrokeRect(dst, x, y, noiseBarW, noiseBarH, 1, colornames.Gray, false)
}

func (g *Game) drawOverlay(dst *ebiten.Image, snap sim.Snapshot) {
	var lines []string
	var title color.Color

	switch snap.Phase {
	case sim.PhaseIdle:
		title = colornames.Deepskyblue
		lines = []string{
			"ESCAPE THE NIGHT",
			"",
			"Collect the key, avoid the entity.",
			"Sprinting and jumping create noise.",
			"",
			"Arrows/A/D move   Space jump   Shift sprint",
			"Enter: start   Q: quit",
		}
		if g.best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d notes", g.best))
		}
	case sim.PhaseWon:
		title = colornames.Limegreen
		lines = []string{
			"YOU ESCAPED",
			"",
			fmt.Sprintf("You escaped the facility. Notes collected: %d.", snap.HUD.Score),
			"",
			"Enter/Y: play again   R: title   Q: quit",
		}
	case sim.PhaseLost:
		title = colornames.Red
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("You were caught. Notes: %d", snap.HUD.Score),
			"",
			"Enter/Y: replay   R: title   Q: quit",
		}
	default:
		if b := g.game.Banner(); b != "" {
			g.drawCentered(dst, b, float64(dst.Bounds().Dy())/3, colornames.Gold)
		}
		return
	}

	bounds := dst.Bounds()
	h := float32(len(lines)*lineHeight + 2*hudPad)
	w := float32(bounds.Dx()) / 2
	x := (float32(bounds.Dx()) - w) / 2
	y := (float32(bounds.Dy()) - h) / 2
	vector.DrawFilledRect(dst, x, y, w, h, overlayColor, false)
	vector.StrokeRect(dst, x, y, w, h, 2, title, false)

	for i, l := range lines {
		c := color.Color(colornames.White)
		if i == 0 {
			c = title
		}
		g.drawCentered(dst, l, float64(y)+hudPad+float64(i*lineHeight), c)
	}
}
