package sim

import (
	"fmt"

	"github.com/vovakirdan/nightescape/internal/core"
)

// EnemyDef is the authored starting state of an enemy.
type EnemyDef struct {
	X, Y  float64
	W, H  float64
	Dir   int
	Speed float64
}

// LevelDef is one hand-authored level. Every geometry value is explicit;
// nothing is derived from the field size at load time.
type LevelDef struct {
	Name      string
	Spawn     Point
	Platforms []core.Box
	Notes     []Point
	Key       Point
	Exit      core.Box
	Enemies   []EnemyDef
}

// Clone creates a deep copy of the level definition.
func (l LevelDef) Clone() LevelDef {
	clone := l
	clone.Platforms = append([]core.Box(nil), l.Platforms...)
	clone.Notes = append([]Point(nil), l.Notes...)
	clone.Enemies = append([]EnemyDef(nil), l.Enemies...)
	return clone
}

// ValidationError contains details about a catalog validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateCatalog checks that a level list is playable:
//   - at least one level
//   - every platform, exit and enemy has a positive size
//   - enemy directions are ±1 and speeds are positive
func ValidateCatalog(levels []LevelDef) error {
	if len(levels) == 0 {
		return ValidationError{Code: "EMPTY_CATALOG", Message: "catalog has no levels"}
	}

	for i, l := range levels {
		for j, p := range l.Platforms {
			if !p.Valid() {
				return ValidationError{
					Code:    "BAD_PLATFORM",
					Message: fmt.Sprintf("level %d (%s): platform %d has non-positive size", i, l.Name, j),
				}
			}
		}
		if !l.Exit.Valid() {
			return ValidationError{
				Code:    "BAD_EXIT",
				Message: fmt.Sprintf("level %d (%s): exit has non-positive size", i, l.Name),
			}
		}
		for j, e := range l.Enemies {
			if e.W <= 0 || e.H <= 0 {
				return ValidationError{
					Code:    "BAD_ENEMY",
					Message: fmt.Sprintf("level %d (%s): enemy %d has non-positive size", i, l.Name, j),
				}
			}
			if e.Dir != 1 && e.Dir != -1 {
				return ValidationError{
					Code:    "BAD_ENEMY",
					Message: fmt.Sprintf("level %d (%s): enemy %d direction %d is not ±1", i, l.Name, j, e.Dir),
				}
			}
			if e.Speed <= 0 {
				return ValidationError{
					Code:    "BAD_ENEMY",
					Message: fmt.Sprintf("level %d (%s): enemy %d speed must be positive", i, l.Name, j),
				}
			}
		}
	}
	return nil
}

// Standard sizes shared by the built-in levels.
const (
	groundHeight   = 18
	ledgeHeight    = 14
	exitW, exitH   = 40, 56
	exitLift       = 92 // exit top sits this far above the field bottom
	enemySize      = 40
	enemyLift      = 70
	spawnX, spawnY = 60, 140 // spawnY is measured up from the field bottom
)

// BuiltinLevels returns the authored campaign for a field of the given size.
// Heights are measured up from the bottom edge so the layouts keep their
// shape on any field height.
func BuiltinLevels(fieldW, fieldH float64) []LevelDef {
	h := fieldH
	ground := core.NewBox(0, h-groundHeight, fieldW, groundHeight)
	ledge := func(x, lift, w float64) core.Box {
		return core.NewBox(x, h-lift, w, ledgeHeight)
	}
	at := func(x, lift float64) Point {
		return Point{X: x, Y: h - lift}
	}
	exit := func(x float64) core.Box {
		return core.NewBox(x, h-exitLift, exitW, exitH)
	}
	enemy := func(x float64, dir int, speed float64) EnemyDef {
		return EnemyDef{X: x, Y: h - enemyLift, W: enemySize, H: enemySize, Dir: dir, Speed: speed}
	}
	spawn := Point{X: spawnX, Y: h - spawnY}

	return []LevelDef{
		{
			Name:  "Facility Entrance",
			Spawn: spawn,
			Platforms: []core.Box{
				ground,
				ledge(160, 120, 160),
				ledge(420, 220, 180),
				ledge(720, 150, 180),
			},
			Notes:   []Point{at(210, 140), at(520, 240)},
			Key:     at(840, 170),
			Exit:    exit(920),
			Enemies: []EnemyDef{enemy(360, 1, 1.1)},
		},
		{
			Name:  "Flicker Halls",
			Spawn: spawn,
			Platforms: []core.Box{
				ground,
				ledge(120, 160, 140),
				ledge(320, 240, 160),
				ledge(560, 180, 140),
				ledge(820, 280, 140),
			},
			Notes:   []Point{at(140, 180), at(380, 260), at(680, 200)},
			Key:     at(760, 300),
			Exit:    exit(40),
			Enemies: []EnemyDef{enemy(240, 1, 1.2), enemy(640, -1, 1.4)},
		},
		{
			Name:  "Holding Cells",
			Spawn: spawn,
			Platforms: []core.Box{
				ground,
				ledge(200, 140, 120),
				ledge(340, 240, 120),
				ledge(520, 200, 160),
				ledge(740, 280, 120),
			},
			Notes:   []Point{at(240, 160), at(380, 260), at(460, 120)},
			Key:     at(780, 300),
			Exit:    exit(920),
			Enemies: []EnemyDef{enemy(300, 1, 1.6), enemy(560, -1, 1.8)},
		},
	}
}
