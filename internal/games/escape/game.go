// Package escape adapts the escape simulation to the frontend Game contract:
// it turns frame actions into simulation input, drives the lifecycle and
// draws the world into a character screen.
package escape

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/games/escape/sim"
	"github.com/vovakirdan/nightescape/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "escape"

// configPath stores the custom config path set via CLI
var configPath string

// logger receives lifecycle events; silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game implements registry.Game for Escape the Night.
type Game struct {
	world   *sim.World
	runtime core.RuntimeConfig
	events  []sim.Event

	// level banner shown after an advance
	banner      string
	bannerTicks int
}

// New creates a game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Escape the Night" }

// Reset loads the tuning and returns the game to its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadEscape(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultEscapeConfig()
	}

	world, err := sim.NewDefault(cfg)
	if err != nil {
		logger.Warn("invalid tuning, using defaults", "err", err)
		world, _ = sim.NewDefault(config.DefaultEscapeConfig())
	}
	g.world = world
	g.events = nil
	g.banner = ""
	g.bannerTicks = 0
}

// Resize updates the screen dimensions without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step applies lifecycle actions, then advances the simulation one tick.
//
// Enter starts from the title screen and replays from a finished run,
// R returns to the title screen, Y replays from anywhere.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch {
	case in.Has(core.ActionReplay):
		g.replay()
	case in.Has(core.ActionRestart):
		g.world.Reset()
		logger.Info("run reset")
	case in.Has(core.ActionConfirm):
		switch {
		case g.world.Phase() == sim.PhaseIdle:
			g.world.Start()
			logger.Info("run started", "level", g.world.LevelName())
		case g.world.Phase().Terminal():
			g.replay()
		}
	}

	res := g.world.Step(sim.Input{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Jump:   in.Has(core.ActionJump),
		Sprint: in.Has(core.ActionSprint),
	})
	g.events = res.Events
	g.handleEvents(res.Events)

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) replay() {
	g.world.Replay()
	g.banner = ""
	g.bannerTicks = 0
	logger.Info("run replayed")
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventNoteCollected:
			logger.Debug("note collected", "score", ev.Score, "level", ev.Level)
		case sim.EventKeyTaken:
			logger.Debug("key taken, exit unlocked", "keys", ev.Keys, "level", ev.Level)
		case sim.EventLevelAdvanced:
			logger.Info("level advanced", "level", ev.Level+1, "name", ev.LevelName)
			g.showBanner(ev)
		case sim.EventDied:
			logger.Info("caught", "lives", ev.Lives, "level", ev.Level)
		case sim.EventWon:
			logger.Info("escaped the facility", "score", ev.Score, "keys", ev.Keys, "ticks", g.world.Tick())
		case sim.EventLost:
			logger.Info("game over", "score", ev.Score, "level", ev.Level+1, "ticks", g.world.Tick())
		}
	}
}

func (g *Game) showBanner(ev sim.Event) {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.banner = levelLabel(ev.Level, ev.LevelName)
	g.bannerTicks = rate * 2
}

// State returns the current game state for the frontend.
func (g *Game) State() core.GameState {
	hud := g.world.HUD()
	return core.GameState{
		Score:     hud.Score,
		Keys:      hud.Keys,
		Lives:     hud.Lives,
		Level:     hud.Level,
		LevelName: hud.LevelName,
		Running:   hud.Phase == sim.PhaseRunning,
		GameOver:  hud.Phase == sim.PhaseLost,
		Won:       hud.Phase == sim.PhaseWon,
		Ticks:     g.world.Tick(),
	}
}

// Retune applies a reloaded config to the running world.
func (g *Game) Retune(cfg config.EscapeConfig) error {
	if err := g.world.Retune(cfg); err != nil {
		return err
	}
	logger.Info("tuning reloaded")
	return nil
}

// Snapshot returns the world state for renderers that draw it themselves.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Events returns the simulation events of the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Banner returns the level banner text while it is visible.
func (g *Game) Banner() string {
	if g.bannerTicks <= 0 {
		return ""
	}
	return g.banner
}

// Levels returns the level catalog in play.
func (g *Game) Levels() []sim.LevelDef {
	return g.world.Levels()
}
