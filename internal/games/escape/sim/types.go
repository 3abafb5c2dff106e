// Package sim is the frontend-independent simulation of Escape the Night:
// level catalog, world state and the per-tick update step. It never touches
// a terminal, window or clock; callers feed it one Input per tick.
package sim

import "github.com/vovakirdan/nightescape/internal/core"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Player is the controllable character.
type Player struct {
	X, Y         float64
	VX, VY       float64
	W, H         float64
	Speed        float64 // horizontal speed cap before the sprint multiplier
	JumpStrength float64
	Grounded     bool
	Invul        int // ticks of remaining invulnerability
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Center returns the center of the player's bounding box.
func (p Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Note is a collectible. Collected only ever goes from false to true.
type Note struct {
	X, Y      float64
	R         float64
	Collected bool
}

// Key unlocks the level exit once taken.
type Key struct {
	X, Y  float64
	R     float64
	Taken bool
}

// Exit is the level door.
type Exit struct {
	core.Box
	Locked bool
}

// Enemy patrols or chases depending on the global noise level.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Dir   int // +1 right, -1 left
	Speed float64
}

// Box returns the enemy's bounding box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Input is the control snapshot for one tick.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Sprint bool
}

// Moving reports whether a horizontal direction is held.
func (in Input) Moving() bool {
	return in.Left || in.Right
}

// Phase is the game lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // loaded, waiting for start
	PhaseRunning              // ticks advance the world
	PhaseWon                  // every level cleared
	PhaseLost                 // out of lives
)

// String returns the phase name used in logs and HUDs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a run.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Behavior is the enemy movement mode shared by every enemy in a tick.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorChase
)

// String returns the behavior name.
func (b Behavior) String() string {
	if b == BehaviorChase {
		return "chase"
	}
	return "patrol"
}

// BehaviorFor derives the enemy mode from the noise level. It is computed
// once per tick and handed to every enemy.
func BehaviorFor(noise, threshold float64) Behavior {
	if noise > threshold {
		return BehaviorChase
	}
	return BehaviorPatrol
}
