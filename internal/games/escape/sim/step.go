package sim

import (
	"math"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
)

// Step advances the world by one tick. Outside PhaseRunning it does nothing
// and returns the current HUD with no events.
//
// Order within a tick:
//  1. horizontal control, jump and movement noise
//  2. gravity, position integration, friction
//  3. horizontal wrap
//  4. platform collision in catalog order
//  5. note and key pickups
//  6. exit; reaching an unlocked exit decays noise and ends the tick
//  7. noise decay, then one behavior for all enemies
//  8. enemy movement and contact damage
//  9. invulnerability countdown and fall check
//
// A lost run stops the tick immediately, so EventLost fires once.
func (w *World) Step(in Input) StepResult {
	if w.phase != PhaseRunning {
		return StepResult{HUD: w.HUD()}
	}
	w.events = nil
	w.tick++

	w.control(in)
	w.integrate()
	w.wrap()
	w.collidePlatforms()
	w.collectPickups()

	if !w.exit.Locked && w.player.Box().Overlaps(w.exit.Box) {
		w.advanceLevel()
		w.decayNoise()
		return w.result()
	}

	w.decayNoise()
	mode := BehaviorFor(w.noise, w.cfg.Noise.DetectionThreshold)
	caught := false
	for i := range w.enemies {
		w.moveEnemy(&w.enemies[i], mode)
		if w.player.Invul <= 0 && w.enemies[i].Box().Overlaps(w.player.Box()) {
			w.die()
			if w.phase != PhaseRunning {
				return w.result()
			}
			caught = true
		}
	}

	// A fresh respawn keeps its full window for this tick.
	if !caught && w.player.Invul > 0 {
		w.player.Invul--
	}

	if w.player.Y > w.cfg.Field.Height+w.cfg.Field.FallMargin {
		w.die()
	}

	return w.result()
}

// decayNoise runs once on every running tick, including one that ends on
// the exit.
func (w *World) decayNoise() {
	w.noise = math.Max(0, w.noise-w.cfg.Noise.Decay)
}

func (w *World) result() StepResult {
	return StepResult{Events: w.events, HUD: w.HUD()}
}

func (w *World) emit(kind EventKind) {
	w.events = append(w.events, Event{
		Kind:      kind,
		Level:     w.level,
		LevelName: w.LevelName(),
		Score:     w.score,
		Keys:      w.keysFound,
		Lives:     w.lives,
	})
}

// addNoise raises the noise level, never past NoiseMax.
func (w *World) addNoise(n float64) {
	w.noise = math.Min(config.NoiseMax, w.noise+n)
}

func (w *World) control(in Input) {
	p := &w.player
	phys := w.cfg.Physics

	limit := p.Speed
	if in.Sprint {
		limit *= phys.SprintMultiplier
	}
	if in.Left {
		p.VX = math.Max(p.VX-phys.Accel, -limit)
	}
	if in.Right {
		p.VX = math.Min(p.VX+phys.Accel, limit)
	}

	if in.Jump && p.Grounded {
		p.VY = -p.JumpStrength
		p.Grounded = false
		w.addNoise(w.cfg.Noise.Jump)
	}

	nc := w.cfg.Noise
	if in.Moving() && p.Grounded && math.Abs(p.VX) > p.Speed*nc.RunSpeedRatio {
		w.addNoise(nc.RunStep)
	}
	if in.Sprint && in.Moving() {
		w.addNoise(nc.Sprint * nc.SprintScale)
	}
}

// integrate applies semi-implicit Euler: velocity first, then position,
// then friction on the horizontal velocity.
func (w *World) integrate() {
	p := &w.player
	p.VY += w.cfg.Physics.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.VX *= w.cfg.Physics.Friction
}

// wrap teleports the player to the opposite edge once fully off-field.
func (w *World) wrap() {
	p := &w.player
	f := w.cfg.Field
	if p.X+p.W < 0 {
		p.X = f.Width - f.WrapInset
	}
	if p.X > f.Width {
		p.X = -p.W + f.WrapInset
	}
}

// collidePlatforms resolves every overlapping platform in order. A contact
// is a landing when the player's bottom edge was within GroundTolerance of
// the platform top before this tick's vertical move; anything else pushes
// the player out sideways. Later platforms override earlier resolutions.
func (w *World) collidePlatforms() {
	p := &w.player
	phys := w.cfg.Physics

	p.Grounded = false
	for _, plat := range w.platforms {
		if !p.Box().Overlaps(plat) {
			continue
		}
		if p.Y+p.H-p.VY <= plat.Y+phys.GroundTolerance {
			p.Y = plat.Y - p.H
			p.VY = 0
			p.Grounded = true
			continue
		}
		px, _ := p.Center()
		platX, _ := plat.Center()
		if px < platX {
			p.X = plat.X - p.W - phys.SidePush
		} else {
			p.X = plat.Right() + phys.SidePush
		}
		p.VX = 0
	}
}

// inReach reports whether an item at (x, y) with radius r is close enough
// to the player's center to be picked up.
func (w *World) inReach(x, y, r float64) bool {
	cx, cy := w.player.Center()
	reach := r + math.Max(w.player.W, w.player.H)/2 - w.cfg.Pickups.ReachSlack
	return core.Dist(cx, cy, x, y) < reach
}

func (w *World) collectPickups() {
	for i := range w.notes {
		n := &w.notes[i]
		if n.Collected || !w.inReach(n.X, n.Y, n.R) {
			continue
		}
		n.Collected = true
		w.score++
		w.emit(EventNoteCollected)
	}

	if !w.key.Taken && w.inReach(w.key.X, w.key.Y, w.key.R) {
		w.key.Taken = true
		w.keysFound++
		w.exit.Locked = false
		w.emit(EventKeyTaken)
	}
}

func (w *World) moveEnemy(e *Enemy, mode Behavior) {
	ec := w.cfg.Enemy

	if mode == BehaviorPatrol {
		e.X += float64(e.Dir) * e.Speed
		if e.X < ec.PatrolMinX {
			e.Dir = 1
		}
		if e.X > w.cfg.Field.Width-ec.PatrolRightMargin {
			e.Dir = -1
		}
		return
	}

	px, py := w.player.Center()
	ex, ey := e.Box().Center()
	dx, dy := px-ex, py-ey
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	speed := e.Speed * (ec.ChaseBase + math.Min(ec.ChaseBonusCap, w.noise/ec.ChaseNoiseDivisor))
	e.X += dx / dist * speed
	e.Y += dy / dist * speed * ec.VerticalFactor
}

// advanceLevel moves to the next level, or ends the run as won after the last one.
func (w *World) advanceLevel() {
	next := w.level + 1
	if next >= len(w.levels) {
		w.level = len(w.levels)
		w.phase = PhaseWon
		w.emit(EventWon)
		return
	}
	_ = w.LoadLevel(next) // next is in range
	w.Respawn()
	w.emit(EventLevelAdvanced)
}

// die costs a life. Losing the last one ends the run; otherwise the player
// respawns with the level's progress intact.
func (w *World) die() {
	w.lives = max(0, w.lives-1)
	if w.lives == 0 {
		w.phase = PhaseLost
		w.emit(EventLost)
		return
	}
	w.Respawn()
	w.emit(EventDied)
}
