package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/nightescape/internal/core"
)

// settle runs idle ticks until the player stands on the ground.
func settle(t *testing.T, w *World) {
	t.Helper()
	for range 60 {
		w.Step(Input{})
	}
	if !w.player.Grounded {
		t.Fatalf("player did not land, got %+v", w.player)
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	w := newRunningWorld(t)
	if w.player.Grounded {
		t.Fatal("player should spawn in the air")
	}

	for range 60 {
		w.Step(Input{})
	}

	ground := w.platforms[0]
	p := w.player
	if p.Y != ground.Y-p.H {
		t.Errorf("Y = %v, expected %v", p.Y, ground.Y-p.H)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
	if !p.Grounded {
		t.Error("player should be grounded")
	}
	if p.X != 60 {
		t.Errorf("X drifted without input: %v", p.X)
	}
}

func TestHorizontalControl(t *testing.T) {
	w := newRunningWorld(t)
	w.enemies = nil
	settle(t, w)

	w.Step(Input{Right: true})
	// accel then friction
	want := 0.9 * 0.86
	if math.Abs(w.player.VX-want) > 1e-9 {
		t.Errorf("VX after one tick = %v, expected %v", w.player.VX, want)
	}

	for range 30 {
		w.Step(Input{Right: true})
	}
	if w.player.VX > 3.2 {
		t.Errorf("VX = %v should never exceed the speed cap", w.player.VX)
	}

	for range 30 {
		w.Step(Input{Right: true, Sprint: true})
	}
	if w.player.VX <= 3.2*0.86 || w.player.VX > 3.2*1.8 {
		t.Errorf("sprint VX = %v, expected above the walk cap and within the sprint cap", w.player.VX)
	}
}

func TestJumpAddsNoise(t *testing.T) {
	w := newRunningWorld(t)
	settle(t, w)
	w.SetNoise(0)

	w.Step(Input{Jump: true})

	if w.player.Grounded {
		t.Error("player should be airborne after jumping")
	}
	if w.player.VY >= 0 {
		t.Errorf("VY = %v, expected upward velocity", w.player.VY)
	}
	if math.Abs(w.noise-(20-0.7)) > 1e-9 {
		t.Errorf("noise = %v, expected jump noise minus one decay", w.noise)
	}

	// no double jump
	vy := w.player.VY
	w.Step(Input{Jump: true})
	if w.player.VY < vy {
		t.Error("jump should require being grounded")
	}
}

func TestNoiseStaysInRange(t *testing.T) {
	w := newRunningWorld(t)
	w.SetNoise(99)

	inputs := []Input{
		{Right: true, Sprint: true, Jump: true},
		{Left: true, Sprint: true, Jump: true},
		{Right: true, Sprint: true},
		{},
	}
	for i := range 2000 {
		// keep the run alive so every tick exercises the noise path
		w.player.Invul = 10
		w.lives = 3
		res := w.Step(inputs[i%len(inputs)])
		if res.HUD.Noise < 0 || res.HUD.Noise > 100 {
			t.Fatalf("tick %d: noise %v out of range", i, res.HUD.Noise)
		}
	}
}

func TestNoiseDecayFloorsAtZero(t *testing.T) {
	w := newRunningWorld(t)
	w.SetNoise(0.3)
	w.Step(Input{})
	if w.noise != 0 {
		t.Errorf("decay should floor at 0, got %v", w.noise)
	}
}

func TestNoiseDecaysOnExitTick(t *testing.T) {
	w := newRunningWorld(t)
	w.exit.Locked = false
	w.player.X, w.player.Y = w.exit.X, w.exit.Y
	w.player.VX, w.player.VY = 0, 0
	w.SetNoise(50)

	res := w.Step(Input{})

	if !res.Has(EventLevelAdvanced) {
		t.Fatalf("expected level advance, got %+v", res.Events)
	}
	if want := 50 - w.cfg.Noise.Decay; math.Abs(w.noise-want) > 1e-9 {
		t.Errorf("noise = %v, expected %v", w.noise, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"off left edge", -36.5, 958},
		{"off right edge", 961, -34},
		{"partly visible stays", -10, -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newRunningWorld(t)
			w.player.X = tc.x
			w.player.Y = 100
			w.Step(Input{})
			if w.player.X != tc.wantX {
				t.Errorf("X = %v, expected %v", w.player.X, tc.wantX)
			}
		})
	}
}

func TestSideCollision(t *testing.T) {
	w := newRunningWorld(t)
	ledge := w.platforms[2] // 420..600 at y 320

	w.player.X = 390
	w.player.Y = 310
	w.player.VX = 0
	w.player.VY = 0
	w.Step(Input{})

	if want := ledge.X - w.player.W - 1; w.player.X != want {
		t.Errorf("X = %v, expected push to %v", w.player.X, want)
	}
	if w.player.VX != 0 {
		t.Errorf("VX = %v, expected 0 after side hit", w.player.VX)
	}
	if w.player.Grounded {
		t.Error("side hit should not ground the player")
	}
}

func TestPlatformResolutionOrder(t *testing.T) {
	floor := core.NewBox(0, 100, 200, 14)
	pillar := core.NewBox(30, 60, 20, 200)

	tests := []struct {
		name      string
		platforms []core.Box
		x, y      float64
		grounded  bool
	}{
		// the floor snaps the player down, then the pillar pushes it left
		{"landing then side hit", []core.Box{floor, pillar}, -7, 54, true},
		{"side hit then landing", []core.Box{pillar, floor}, -7, 54, true},
		{"landing only", []core.Box{floor}, 10, 54, true},
		{"side hit only", []core.Box{pillar}, -7, 54, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			w.platforms = tt.platforms
			w.player.X, w.player.Y = 10, 54
			w.player.VX, w.player.VY = 2, 0

			w.collidePlatforms()

			p := w.player
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tt.x, tt.y)
			}
			if p.VY != 0 {
				t.Errorf("VY = %v, expected 0", p.VY)
			}
			if p.Grounded != tt.grounded {
				t.Errorf("Grounded = %v, expected %v", p.Grounded, tt.grounded)
			}
			if tt.x != 10 && p.VX != 0 {
				t.Errorf("VX = %v, expected 0 after a side hit", p.VX)
			}
		})
	}
}

func TestCollectNote(t *testing.T) {
	w := newRunningWorld(t)
	n := w.notes[0]
	w.player.X = n.X - w.player.W/2
	w.player.Y = n.Y - w.player.H/2

	res := w.Step(Input{})

	if !w.notes[0].Collected {
		t.Fatal("note should be collected")
	}
	if w.score != 1 || !res.Has(EventNoteCollected) {
		t.Errorf("score = %d, events = %+v", w.score, res.Events)
	}

	// collected notes stay collected and score once
	for range 30 {
		w.Step(Input{})
	}
	if !w.notes[0].Collected || w.score != 1 {
		t.Errorf("note state changed: collected=%v score=%d", w.notes[0].Collected, w.score)
	}
}

func TestLockedExitNeverTriggers(t *testing.T) {
	w := newRunningWorld(t)
	exit := w.exit

	for range 20 {
		w.player.X = exit.X
		w.player.Y = exit.Y
		w.player.VY = 0
		res := w.Step(Input{})
		if res.Has(EventLevelAdvanced) || w.level != 0 {
			t.Fatal("locked exit triggered a level advance")
		}
		if !w.exit.Locked {
			t.Fatal("exit unlocked without the key")
		}
	}
}

func TestKeyUnlocksExit(t *testing.T) {
	w := newRunningWorld(t)
	k := w.key
	w.player.X = k.X - w.player.W/2
	w.player.Y = k.Y - w.player.H/2

	res := w.Step(Input{})

	if !w.key.Taken || w.keysFound != 1 || !res.Has(EventKeyTaken) {
		t.Fatalf("key not taken: key=%+v keys=%d", w.key, w.keysFound)
	}
	if w.exit.Locked {
		t.Fatal("taking the key should unlock the exit")
	}

	// exit stays unlocked for the rest of the level
	for range 10 {
		w.Step(Input{})
		if w.exit.Locked {
			t.Fatal("exit relocked")
		}
	}

	w.player.X = w.exit.X
	w.player.Y = w.exit.Y
	w.player.VY = 0
	res = w.Step(Input{})

	if !res.Has(EventLevelAdvanced) {
		t.Fatalf("expected level advance, got %+v", res.Events)
	}
	ev := res.Events[len(res.Events)-1]
	if ev.Level != 1 || ev.LevelName != "Flicker Halls" {
		t.Errorf("advance event = %+v", ev)
	}
	if !w.exit.Locked || w.key.Taken {
		t.Error("new level should load with a locked exit and untaken key")
	}
	if w.player.X != 60 || w.player.Y != 400 {
		t.Errorf("player should respawn on the new level, got (%v, %v)", w.player.X, w.player.Y)
	}
	if w.keysFound != 1 {
		t.Errorf("keysFound should carry across levels, got %d", w.keysFound)
	}
}

func TestNonFatalDeath(t *testing.T) {
	w := newRunningWorld(t)

	// collect a note first so there is progress to keep
	n := w.notes[0]
	w.player.X = n.X - w.player.W/2
	w.player.Y = n.Y - w.player.H/2
	w.Step(Input{})
	if w.score != 1 {
		t.Fatalf("setup: score = %d", w.score)
	}

	e := w.enemies[0]
	w.player.X = e.X + 2
	w.player.Y = 476
	w.player.VY = 0
	w.player.Invul = 0

	res := w.Step(Input{})

	if !res.Has(EventDied) {
		t.Fatalf("expected death, got %+v", res.Events)
	}
	if w.lives != 2 {
		t.Errorf("lives = %d, expected 2", w.lives)
	}
	if w.score != 1 || w.keysFound != 0 {
		t.Errorf("counters changed on death: score=%d keys=%d", w.score, w.keysFound)
	}
	spawn := w.levels[0].Spawn
	if w.player.X != spawn.X || w.player.Y != spawn.Y {
		t.Errorf("player at (%v, %v), expected spawn %+v", w.player.X, w.player.Y, spawn)
	}
	if w.player.Invul != 90 {
		t.Errorf("Invul = %d, expected 90", w.player.Invul)
	}
	if !w.notes[0].Collected {
		t.Error("level progress should survive a non-fatal death")
	}
	if w.phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", w.phase)
	}
}

func TestInvulnerablePlayerIgnoresEnemies(t *testing.T) {
	w := newRunningWorld(t)
	e := w.enemies[0]
	w.player.X = e.X + 2
	w.player.Y = 476
	w.player.Invul = 5

	res := w.Step(Input{})
	if res.Has(EventDied) || w.lives != 3 {
		t.Error("invulnerable player should not take damage")
	}
	if w.player.Invul != 4 {
		t.Errorf("Invul = %d, expected countdown to 4", w.player.Invul)
	}
}

func TestFallDeath(t *testing.T) {
	w := newRunningWorld(t)
	w.player.Y = 741
	w.player.Invul = 0

	res := w.Step(Input{})
	if !res.Has(EventDied) || w.lives != 2 {
		t.Errorf("falling off the map should cost a life, lives=%d", w.lives)
	}
}

func TestLostFiresOnce(t *testing.T) {
	w := newRunningWorld(t)
	w.lives = 1
	w.score = 2

	e := w.enemies[0]
	w.player.X = e.X + 2
	w.player.Y = 476
	w.player.Invul = 0

	res := w.Step(Input{})

	lost := 0
	for _, ev := range res.Events {
		if ev.Kind == EventLost {
			lost++
			if ev.Score != 2 {
				t.Errorf("lost event score = %d, expected 2", ev.Score)
			}
		}
	}
	if lost != 1 {
		t.Fatalf("expected exactly one lost event, got %d", lost)
	}
	if w.phase != PhaseLost || w.lives != 0 {
		t.Errorf("phase=%v lives=%d", w.phase, w.lives)
	}

	before := w.Snapshot().Hash()
	for range 10 {
		res := w.Step(Input{Right: true, Jump: true})
		if len(res.Events) != 0 {
			t.Fatalf("Step after loss produced events: %+v", res.Events)
		}
	}
	if w.Snapshot().Hash() != before {
		t.Error("world changed after the run was lost")
	}
}

func TestWinKeepsScore(t *testing.T) {
	w := newRunningWorld(t)
	if err := w.LoadLevel(2); err != nil {
		t.Fatal(err)
	}
	w.Respawn()
	w.score = 5
	w.keysFound = 3
	w.key.Taken = true
	w.exit.Locked = false

	w.player.X = w.exit.X
	w.player.Y = w.exit.Y
	res := w.Step(Input{})

	if !res.Has(EventWon) {
		t.Fatalf("expected win, got %+v", res.Events)
	}
	if w.phase != PhaseWon {
		t.Errorf("phase = %v, expected won", w.phase)
	}
	if res.HUD.Score != 5 || res.Events[len(res.Events)-1].Score != 5 {
		t.Errorf("score should be exposed unchanged, hud=%+v", res.HUD)
	}
	if res.HUD.Level != 3 || res.HUD.LevelName != "" {
		t.Errorf("level index should equal catalog length at win, got %d %q", res.HUD.Level, res.HUD.LevelName)
	}

	if r := w.Step(Input{}); len(r.Events) != 0 {
		t.Error("Step after win should be a no-op")
	}
}

func TestPatrolReversesAtBounds(t *testing.T) {
	w := newRunningWorld(t)
	w.enemies[0].X = 19.5
	w.enemies[0].Dir = -1
	w.enemies[0].Speed = 1

	w.Step(Input{})
	if w.enemies[0].Dir != 1 {
		t.Errorf("enemy past the left bound should turn right, dir=%d", w.enemies[0].Dir)
	}

	w.enemies[0].X = 900
	w.enemies[0].Dir = 1
	w.Step(Input{})
	if w.enemies[0].Dir != -1 {
		t.Errorf("enemy past the right bound should turn left, dir=%d", w.enemies[0].Dir)
	}
}

func TestChaseMovesTowardPlayer(t *testing.T) {
	w := newRunningWorld(t)
	if err := w.LoadLevel(2); err != nil {
		t.Fatal(err)
	}
	w.Respawn()
	w.SetNoise(20)
	before := w.Enemies()

	w.Step(Input{})

	px, py := w.player.Center()
	for i, e := range w.Enemies() {
		bx, by := before[i].Box().Center()
		ax, ay := e.Box().Center()
		if math.Hypot(px-ax, py-ay) >= math.Hypot(px-bx, py-by) {
			t.Errorf("enemy %d did not close in on the player", i)
		}
		// player is to the left of every enemy on this level
		if e.X >= before[i].X {
			t.Errorf("enemy %d moved along its patrol instead of chasing (x %v -> %v)", i, before[i].X, e.X)
		}
	}
}

func TestPatrolIgnoresPlayerBelowThreshold(t *testing.T) {
	w := newRunningWorld(t)
	w.SetNoise(14.5) // decays to 13.8 before enemies move
	before := w.enemies[0]

	w.Step(Input{})

	if got := w.enemies[0].X; got != before.X+before.Speed {
		t.Errorf("enemy X = %v, expected patrol step to %v", got, before.X+before.Speed)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]Input, 600)
	for i := range inputs {
		inputs[i] = Input{
			Right:  i%7 < 4,
			Left:   i%11 == 0,
			Jump:   i%23 == 0,
			Sprint: i%5 == 0,
		}
	}

	run := func() uint64 {
		w := newRunningWorld(t)
		for _, in := range inputs {
			w.Step(in)
		}
		return w.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same inputs produced different states: %d vs %d", a, b)
	}
}
