package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/nightescape/internal/config"
)

func newWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewDefault(config.DefaultEscapeConfig())
	if err != nil {
		t.Fatalf("NewDefault() error: %v", err)
	}
	return w
}

func newRunningWorld(t *testing.T) *World {
	t.Helper()
	w := newWorld(t)
	if !w.Start() {
		t.Fatal("Start() from Idle should succeed")
	}
	return w
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(config.DefaultEscapeConfig(), nil); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultEscapeConfig()
	cfg.Gameplay.Lives = 0
	if _, err := NewDefault(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestNewWorldIsIdle(t *testing.T) {
	w := newWorld(t)

	if w.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", w.Phase())
	}
	hud := w.HUD()
	if hud.Lives != 3 || hud.Score != 0 || hud.Keys != 0 || hud.Level != 0 {
		t.Errorf("unexpected initial HUD: %+v", hud)
	}
	if hud.LevelName != "Facility Entrance" {
		t.Errorf("LevelName = %q", hud.LevelName)
	}
	p := w.Player()
	if p.X != 60 || p.Y != 400 || p.Invul != 90 {
		t.Errorf("player should be at spawn with full invulnerability, got %+v", p)
	}
	if !w.Exit().Locked {
		t.Error("exit should start locked")
	}
}

func TestLoadLevel(t *testing.T) {
	w := newWorld(t)

	if err := w.LoadLevel(1); err != nil {
		t.Fatalf("LoadLevel(1) error: %v", err)
	}
	if w.HUD().Level != 1 || w.LevelName() != "Flicker Halls" {
		t.Errorf("expected level 1 Flicker Halls, got %d %q", w.HUD().Level, w.LevelName())
	}
	if len(w.Notes()) != 3 || len(w.Enemies()) != 2 || len(w.Platforms()) != 5 {
		t.Errorf("unexpected entity counts: notes=%d enemies=%d platforms=%d",
			len(w.Notes()), len(w.Enemies()), len(w.Platforms()))
	}
	for _, n := range w.Notes() {
		if n.R != 10 || n.Collected {
			t.Errorf("note should load uncollected with radius 10, got %+v", n)
		}
	}
	if k := w.Key(); k.R != 12 || k.Taken {
		t.Errorf("key should load untaken with radius 12, got %+v", k)
	}
}

func TestLoadLevelOutOfRange(t *testing.T) {
	w := newWorld(t)
	before := w.Snapshot().Hash()

	for _, idx := range []int{-1, 3, 100} {
		err := w.LoadLevel(idx)
		if !errors.Is(err, ErrLevelOutOfRange) {
			t.Errorf("LoadLevel(%d) error = %v, expected ErrLevelOutOfRange", idx, err)
		}
	}
	if w.Snapshot().Hash() != before {
		t.Error("out-of-range load should leave the world untouched")
	}
}

func TestLoadLevelDoesNotAliasCatalog(t *testing.T) {
	w := newRunningWorld(t)
	w.notes[0].Collected = true
	w.platforms[0].X = 500

	if err := w.LoadLevel(0); err != nil {
		t.Fatal(err)
	}
	if w.notes[0].Collected {
		t.Error("reloading the same level should reset notes")
	}
	if w.platforms[0].X != 0 {
		t.Error("runtime platform edits leaked into the catalog")
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	w := newWorld(t)
	levels := w.Levels()
	levels[0].Platforms[0].X = 123
	levels[0].Name = "changed"

	if w.Levels()[0].Platforms[0].X == 123 || w.LevelName() == "changed" {
		t.Error("Levels() should return a copy")
	}
}

func TestLifecycle(t *testing.T) {
	w := newWorld(t)

	// Idle: Step is a no-op
	res := w.Step(Input{Right: true})
	if len(res.Events) != 0 || w.Tick() != 0 {
		t.Error("Step before Start should do nothing")
	}

	if !w.Start() {
		t.Fatal("Start() from Idle should succeed")
	}
	if w.Start() {
		t.Error("Start() while running should be a no-op")
	}
	if w.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected running", w.Phase())
	}

	w.Step(Input{})
	if w.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", w.Tick())
	}

	// Reset while running returns to Idle
	w.score = 4
	w.Reset()
	if w.Phase() != PhaseIdle || w.HUD().Score != 0 || w.Tick() != 0 {
		t.Errorf("Reset should zero the run, got phase=%v hud=%+v", w.Phase(), w.HUD())
	}

	// Terminal states need a reset before starting again
	w.Start()
	w.phase = PhaseLost
	if w.Start() {
		t.Error("Start() from Lost should fail")
	}

	w.Replay()
	if w.Phase() != PhaseRunning {
		t.Errorf("Replay should leave the world running, got %v", w.Phase())
	}
	if w.HUD().Lives != 3 || w.HUD().Level != 0 {
		t.Errorf("Replay should restore lives and level, got %+v", w.HUD())
	}
}

func TestSetNoiseClamps(t *testing.T) {
	w := newWorld(t)

	w.SetNoise(250)
	if w.Noise() != config.NoiseMax {
		t.Errorf("Noise() = %v, expected %v", w.Noise(), config.NoiseMax)
	}
	w.SetNoise(-5)
	if w.Noise() != 0 {
		t.Errorf("Noise() = %v, expected 0", w.Noise())
	}
}

func TestRetune(t *testing.T) {
	w := newRunningWorld(t)

	cfg := config.DefaultEscapeConfig()
	cfg.Gameplay.Lives = 2
	cfg.Pickups.NoteRadius = 15
	cfg.Field.Width = 2000
	cfg.Field.FallMargin = 50
	cfg.Field.WrapInset = 4
	cfg.Player.Speed = 4
	cfg.Player.JumpStrength = 13
	cfg.Player.Width = 20

	if err := w.Retune(cfg); err != nil {
		t.Fatalf("Retune() error: %v", err)
	}
	if w.HUD().Lives != 2 {
		t.Errorf("lives should be capped to the new maximum, got %d", w.HUD().Lives)
	}
	if w.Notes()[0].R != 15 {
		t.Errorf("loaded notes should pick up the new radius, got %v", w.Notes()[0].R)
	}
	if f := w.Config().Field; f.Width != 960 || f.Height != 540 {
		t.Errorf("field size should not change on retune, got %vx%v", f.Width, f.Height)
	}
	if f := w.Config().Field; f.FallMargin != 50 || f.WrapInset != 4 {
		t.Errorf("fall margin and wrap inset should follow the reload, got %+v", f)
	}
	if p := w.Player(); p.Speed != 4 || p.JumpStrength != 13 {
		t.Errorf("speed and jump should apply immediately, got %+v", p)
	}
	if w.Player().W != 36 {
		t.Errorf("player size should wait for a respawn, got %v", w.Player().W)
	}
	w.Respawn()
	if w.Player().W != 20 {
		t.Errorf("respawn should pick up the new size, got %v", w.Player().W)
	}

	bad := config.DefaultEscapeConfig()
	bad.Physics.Friction = 0
	if err := w.Retune(bad); err == nil {
		t.Error("expected error for invalid tuning")
	}
	if w.Config().Physics.Friction == 0 {
		t.Error("invalid tuning should not be applied")
	}
}

func TestBehaviorFor(t *testing.T) {
	tests := []struct {
		noise float64
		want  Behavior
	}{
		{0, BehaviorPatrol},
		{14, BehaviorPatrol},
		{14.01, BehaviorChase},
		{20, BehaviorChase},
		{100, BehaviorChase},
	}

	for _, tc := range tests {
		if got := BehaviorFor(tc.noise, 14); got != tc.want {
			t.Errorf("BehaviorFor(%v, 14) = %v, expected %v", tc.noise, got, tc.want)
		}
	}
}
