package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
)

// ErrLevelOutOfRange is returned by LoadLevel for an index outside the catalog.
var ErrLevelOutOfRange = errors.New("level index out of range")

// World is the complete mutable state of one game session.
type World struct {
	cfg    config.EscapeConfig
	levels []LevelDef

	player    Player
	platforms []core.Box
	notes     []Note
	key       Key
	exit      Exit
	enemies   []Enemy

	noise     float64
	score     int
	keysFound int
	lives     int
	level     int
	phase     Phase
	tick      int

	events []Event
}

// New creates a world over the given catalog and resets it to Idle on the
// first level. The catalog is copied.
func New(cfg config.EscapeConfig, levels []LevelDef) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateCatalog(levels); err != nil {
		return nil, fmt.Errorf("sim: invalid catalog: %w", err)
	}

	w := &World{
		cfg:    cfg,
		levels: make([]LevelDef, len(levels)),
	}
	for i, l := range levels {
		w.levels[i] = l.Clone()
	}
	w.Reset()
	return w, nil
}

// NewDefault creates a world with the built-in campaign sized to cfg.Field.
func NewDefault(cfg config.EscapeConfig) (*World, error) {
	return New(cfg, BuiltinLevels(cfg.Field.Width, cfg.Field.Height))
}

// LoadLevel replaces the level entities with fresh copies of catalog entry
// idx: notes uncollected, key untaken, exit locked. An out-of-range index
// leaves the world untouched and returns ErrLevelOutOfRange.
func (w *World) LoadLevel(idx int) error {
	if idx < 0 || idx >= len(w.levels) {
		return fmt.Errorf("sim: load level %d of %d: %w", idx, len(w.levels), ErrLevelOutOfRange)
	}
	def := w.levels[idx]

	w.platforms = append(w.platforms[:0:0], def.Platforms...)

	w.notes = make([]Note, len(def.Notes))
	for i, n := range def.Notes {
		w.notes[i] = Note{X: n.X, Y: n.Y, R: w.cfg.Pickups.NoteRadius}
	}

	w.key = Key{X: def.Key.X, Y: def.Key.Y, R: w.cfg.Pickups.KeyRadius}
	w.exit = Exit{Box: def.Exit, Locked: true}

	w.enemies = make([]Enemy, len(def.Enemies))
	for i, e := range def.Enemies {
		w.enemies[i] = Enemy{X: e.X, Y: e.Y, W: e.W, H: e.H, Dir: e.Dir, Speed: e.Speed}
	}

	w.level = idx
	return nil
}

// Respawn puts the player at the current level's spawn point with zero
// velocity and a fresh invulnerability window. Level entities are untouched.
func (w *World) Respawn() {
	spawn := w.levels[w.level].Spawn
	pc := w.cfg.Player
	w.player = Player{
		X:            spawn.X,
		Y:            spawn.Y,
		W:            pc.Width,
		H:            pc.Height,
		Speed:        pc.Speed,
		JumpStrength: pc.JumpStrength,
		Invul:        pc.InvulnerabilityTick,
	}
}

// Reset returns to Idle with counters zeroed, lives restored and the first
// level loaded. Valid from any phase, including mid-run.
func (w *World) Reset() {
	w.score = 0
	w.keysFound = 0
	w.lives = w.cfg.Gameplay.Lives
	w.noise = 0
	w.tick = 0
	w.events = nil
	w.phase = PhaseIdle
	_ = w.LoadLevel(0) // catalog is validated non-empty
	w.Respawn()
}

// Start begins a run. It only succeeds from Idle; a finished run must be
// Reset first.
func (w *World) Start() bool {
	if w.phase != PhaseIdle {
		return false
	}
	w.phase = PhaseRunning
	return true
}

// Replay resets and starts immediately.
func (w *World) Replay() {
	w.Reset()
	w.Start()
}

// Retune swaps the tuning for subsequent ticks. The field width and height
// are kept because level geometry is authored against them. Pickup radii
// of the loaded level and the player's speed and jump strength change
// immediately; the player's size changes at the next respawn.
func (w *World) Retune(cfg config.EscapeConfig) error {
	cfg.Field.Width = w.cfg.Field.Width
	cfg.Field.Height = w.cfg.Field.Height
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	w.player.Speed = cfg.Player.Speed
	w.player.JumpStrength = cfg.Player.JumpStrength
	for i := range w.notes {
		w.notes[i].R = cfg.Pickups.NoteRadius
	}
	w.key.R = cfg.Pickups.KeyRadius
	w.lives = min(w.lives, cfg.Gameplay.Lives)
	return nil
}

// Config returns the active tuning.
func (w *World) Config() config.EscapeConfig { return w.cfg }

// Levels returns a copy of the catalog.
func (w *World) Levels() []LevelDef {
	out := make([]LevelDef, len(w.levels))
	for i, l := range w.levels {
		out[i] = l.Clone()
	}
	return out
}

// Phase returns the lifecycle state.
func (w *World) Phase() Phase { return w.phase }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Noise returns the current noise level.
func (w *World) Noise() float64 { return w.noise }

// SetNoise overrides the noise level, clamped to [0, NoiseMax].
func (w *World) SetNoise(n float64) {
	w.noise = core.ClampF(n, 0, config.NoiseMax)
}

// Tick returns the number of ticks simulated since the last reset.
func (w *World) Tick() int { return w.tick }

// HUD returns the current counters.
func (w *World) HUD() HUD {
	return HUD{
		Score:     w.score,
		Keys:      w.keysFound,
		Lives:     w.lives,
		Level:     w.level,
		LevelName: w.LevelName(),
		Noise:     w.noise,
		Phase:     w.phase,
	}
}

// LevelName returns the current level's name, or "" once the campaign is won.
func (w *World) LevelName() string {
	if w.level < 0 || w.level >= len(w.levels) {
		return ""
	}
	return w.levels[w.level].Name
}

// Notes returns a copy of the current level's notes.
func (w *World) Notes() []Note {
	return append([]Note(nil), w.notes...)
}

// Key returns a copy of the current level's key.
func (w *World) Key() Key { return w.key }

// Exit returns a copy of the current level's exit.
func (w *World) Exit() Exit { return w.exit }

// Enemies returns a copy of the current level's enemies.
func (w *World) Enemies() []Enemy {
	return append([]Enemy(nil), w.enemies...)
}

// Platforms returns a copy of the current level's platforms.
func (w *World) Platforms() []core.Box {
	return append([]core.Box(nil), w.platforms...)
}
