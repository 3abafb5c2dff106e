// Package window runs the game in a desktop window with Ebitengine. Unlike
// a terminal it sees real key-up events, so movement is sampled as held
// state every tick.
package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/logging"
	"github.com/vovakirdan/nightescape/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Store    *storage.Store  // run history; nil disables recording
	Logger   *log.Logger     // nil discards
	Watcher  *config.Watcher // live tuning; nil disables hot reload
	TickRate int             // simulation ticks per second, 0 for 60
	Scale    float64         // window size relative to the field, 0 for 1
}

// Game adapts escape.Game to ebiten.Game.
type Game struct {
	game     *escape.Game
	store    *storage.Store
	logger   *log.Logger
	watcher  *config.Watcher
	face     ebtext.Face
	frame    core.InputFrame
	runSaved bool
	best     int // best recorded score, shown on the overlays
}

// New wraps a reset escape game for the window frontend.
func New(game *escape.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	g := &Game{
		game:    game,
		store:   opts.Store,
		logger:  logger,
		watcher: opts.Watcher,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		frame:   core.NewInputFrame(),
	}
	g.loadBest()
	return g
}

func (g *Game) loadBest() {
	if g.store == nil {
		return
	}
	best, err := g.store.BestScore(g.game.ID())
	if err != nil {
		g.logger.Warn("could not read best score", "err", err)
		return
	}
	g.best = best
}

// Update samples the keyboard and advances the simulation one tick.
func (g *Game) Update() error {
	g.frame.Clear()
	g.sampleKeys()
	if g.frame.Has(core.ActionQuit) || g.frame.Has(core.ActionBack) {
		return ebiten.Termination
	}

	g.pollConfig()
	res := g.game.Step(g.frame)
	g.recordRun(res.State)
	return nil
}

// pollConfig applies pending reloads between ticks without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.game.Retune(cfg); err != nil {
			g.logger.Warn("config reload rejected", "err", err)
		}
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		g.logger.Warn("config reload rejected, keeping previous tuning", "err", err)
	default:
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// sampleKeys fills the frame: movement from held keys, the rest on press.
func (g *Game) sampleKeys() {
	left := anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA)
	right := anyPressed(ebiten.KeyArrowRight, ebiten.KeyD)
	if left && !right {
		g.frame.Set(core.ActionLeft)
	}
	if right && !left {
		g.frame.Set(core.ActionRight)
	}
	if anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight) {
		g.frame.Set(core.ActionSprint)
	}

	oneShot := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionReplay, []ebiten.Key{ebiten.KeyY}},
		{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	}
	for _, s := range oneShot {
		if anyJustPressed(s.keys...) {
			g.frame.Set(s.action)
		}
	}
}

// recordRun saves a finished run once per terminal state.
func (g *Game) recordRun(st core.GameState) {
	run, finished := storage.RunFromState(g.game.ID(), st)
	if !finished {
		g.runSaved = false
		return
	}
	if g.runSaved {
		return
	}
	g.runSaved = true

	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(run); err != nil {
		g.logger.Error("could not record run", "err", err)
		return
	}
	g.loadBest()
}

// Layout keeps the logical screen at the field size; Ebitengine scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := g.game.Snapshot()
	return int(snap.FieldW), int(snap.FieldH)
}

// Run opens the window and blocks until it is closed.
func Run(game *escape.Game, opts Options) error {
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	game.Reset(core.RuntimeConfig{TickRate: rate})
	snap := game.Snapshot()
	w, h := int(snap.FieldW), int(snap.FieldH)
	game.Resize(w, h)

	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rate)

	return ebiten.RunGame(New(game, opts))
}
