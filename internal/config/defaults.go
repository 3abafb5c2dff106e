package config

import (
	_ "embed"
)

//go:embed defaults/escape.yaml
var defaultEscapeYAML []byte

// DefaultEscapeConfig returns the built-in tuning.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		Field: FieldConfig{
			Width:      960,
			Height:     540,
			FallMargin: 200,
			WrapInset:  2,
		},
		Physics: PhysicsConfig{
			Gravity:          0.56,
			Friction:         0.86,
			Accel:            0.9,
			SprintMultiplier: 1.8,
			GroundTolerance:  6,
			SidePush:         1,
		},
		Player: PlayerConfig{
			Width:               36,
			Height:              46,
			Speed:               3.2,
			JumpStrength:        11,
			InvulnerabilityTick: 90,
		},
		Noise: NoiseConfig{
			Decay:              0.7,
			Jump:               20,
			RunStep:            4,
			RunSpeedRatio:      0.9,
			Sprint:             28,
			SprintScale:        0.02,
			DetectionThreshold: 14,
		},
		Enemy: EnemyConfig{
			PatrolMinX:        20,
			PatrolRightMargin: 60,
			ChaseBase:         1.6,
			ChaseNoiseDivisor: 40,
			ChaseBonusCap:     1.8,
			VerticalFactor:    0.12,
		},
		Pickups: PickupConfig{
			NoteRadius: 10,
			KeyRadius:  12,
			ReachSlack: 6,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}
