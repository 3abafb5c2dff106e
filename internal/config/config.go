// Package config provides YAML-based tuning for the escape simulation:
// play-field size, physics, player, noise, enemy and pickup parameters.
package config

import "fmt"

// NoiseMax is the upper bound of the noise meter. It is part of the meter's
// definition rather than a tuning knob.
const NoiseMax = 100.0

// EscapeConfig contains every tunable constant of the simulation.
type EscapeConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Noise    NoiseConfig    `yaml:"noise"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Pickups  PickupConfig   `yaml:"pickups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the play field in world pixels.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fall_margin"` // death once y exceeds height + margin
	WrapInset  float64 `yaml:"wrap_inset"`  // overlap kept when wrapping across an edge
}

// PhysicsConfig defines integration and collision parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	Accel            float64 `yaml:"accel"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	GroundTolerance  float64 `yaml:"ground_tolerance"`
	SidePush         float64 `yaml:"side_push"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Speed               float64 `yaml:"speed"`
	JumpStrength        float64 `yaml:"jump_strength"`
	InvulnerabilityTick int     `yaml:"invulnerability_ticks"`
}

// NoiseConfig defines how movement feeds the global noise meter.
type NoiseConfig struct {
	Decay              float64 `yaml:"decay"`
	Jump               float64 `yaml:"jump"`
	RunStep            float64 `yaml:"run_step"`
	RunSpeedRatio      float64 `yaml:"run_speed_ratio"`
	Sprint             float64 `yaml:"sprint"`
	SprintScale        float64 `yaml:"sprint_scale"`
	DetectionThreshold float64 `yaml:"detection_threshold"`
}

// EnemyConfig defines patrol bounds and chase speed.
type EnemyConfig struct {
	PatrolMinX        float64 `yaml:"patrol_min_x"`
	PatrolRightMargin float64 `yaml:"patrol_right_margin"`
	ChaseBase         float64 `yaml:"chase_base"`
	ChaseNoiseDivisor float64 `yaml:"chase_noise_divisor"`
	ChaseBonusCap     float64 `yaml:"chase_bonus_cap"`
	VerticalFactor    float64 `yaml:"vertical_factor"`
}

// PickupConfig defines note and key pickup reach.
type PickupConfig struct {
	NoteRadius float64 `yaml:"note_radius"`
	KeyRadius  float64 `yaml:"key_radius"`
	ReachSlack float64 `yaml:"reach_slack"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// Validate checks that the configuration describes a playable simulation.
func (c EscapeConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Speed <= 0:
		return fmt.Errorf("config: player speed must be positive, got %v", c.Player.Speed)
	case c.Player.InvulnerabilityTick < 0:
		return fmt.Errorf("config: invulnerability_ticks must not be negative, got %d", c.Player.InvulnerabilityTick)
	case c.Physics.Friction <= 0 || c.Physics.Friction > 1:
		return fmt.Errorf("config: friction must be in (0, 1], got %v", c.Physics.Friction)
	case c.Physics.SprintMultiplier < 1:
		return fmt.Errorf("config: sprint_multiplier must be at least 1, got %v", c.Physics.SprintMultiplier)
	case c.Noise.Decay < 0:
		return fmt.Errorf("config: noise decay must not be negative, got %v", c.Noise.Decay)
	case c.Noise.DetectionThreshold < 0 || c.Noise.DetectionThreshold > NoiseMax:
		return fmt.Errorf("config: detection_threshold must be in [0, %v], got %v", NoiseMax, c.Noise.DetectionThreshold)
	case c.Enemy.ChaseNoiseDivisor <= 0:
		return fmt.Errorf("config: chase_noise_divisor must be positive, got %v", c.Enemy.ChaseNoiseDivisor)
	case c.Pickups.NoteRadius <= 0 || c.Pickups.KeyRadius <= 0:
		return fmt.Errorf("config: pickup radii must be positive")
	case c.Gameplay.Lives < 1 || c.Gameplay.Lives > 3:
		return fmt.Errorf("config: lives must be in [1, 3], got %d", c.Gameplay.Lives)
	}
	return nil
}
