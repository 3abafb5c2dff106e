package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/nightescape/internal/core"
)

func TestBuiltinLevels(t *testing.T) {
	levels := BuiltinLevels(960, 540)

	if err := ValidateCatalog(levels); err != nil {
		t.Fatalf("built-in catalog should validate: %v", err)
	}

	names := []string{"Facility Entrance", "Flicker Halls", "Holding Cells"}
	if len(levels) != len(names) {
		t.Fatalf("expected %d levels, got %d", len(names), len(levels))
	}
	for i, want := range names {
		if levels[i].Name != want {
			t.Errorf("level %d name = %q, expected %q", i, levels[i].Name, want)
		}
		if levels[i].Spawn != (Point{X: 60, Y: 400}) {
			t.Errorf("level %d spawn = %+v, expected (60, 400)", i, levels[i].Spawn)
		}
		ground := levels[i].Platforms[0]
		if ground != core.NewBox(0, 522, 960, 18) {
			t.Errorf("level %d ground = %+v", i, ground)
		}
	}

	if got := levels[0].Exit; got != core.NewBox(920, 448, 40, 56) {
		t.Errorf("level 0 exit = %+v, expected explicit 920,448,40,56", got)
	}
	if got := levels[1].Exit.X; got != 40 {
		t.Errorf("level 1 exit x = %v, expected 40", got)
	}
	if got := len(levels[2].Enemies); got != 2 {
		t.Errorf("level 2 should have 2 enemies, got %d", got)
	}
}

func TestBuiltinLevelsFollowFieldHeight(t *testing.T) {
	tall := BuiltinLevels(960, 720)
	if tall[0].Platforms[0].Y != 702 {
		t.Errorf("ground should sit at the bottom of a taller field, got y=%v", tall[0].Platforms[0].Y)
	}
	if tall[0].Spawn.Y != 580 {
		t.Errorf("spawn should keep its height above the floor, got y=%v", tall[0].Spawn.Y)
	}
}

func TestValidateCatalog(t *testing.T) {
	good := BuiltinLevels(960, 540)[0]

	tests := []struct {
		name   string
		levels func() []LevelDef
		code   string
	}{
		{
			name:   "empty",
			levels: func() []LevelDef { return nil },
			code:   "EMPTY_CATALOG",
		},
		{
			name: "zero-width platform",
			levels: func() []LevelDef {
				l := good.Clone()
				l.Platforms[1].W = 0
				return []LevelDef{l}
			},
			code: "BAD_PLATFORM",
		},
		{
			name: "missing exit size",
			levels: func() []LevelDef {
				l := good.Clone()
				l.Exit.H = 0
				return []LevelDef{l}
			},
			code: "BAD_EXIT",
		},
		{
			name: "enemy direction zero",
			levels: func() []LevelDef {
				l := good.Clone()
				l.Enemies[0].Dir = 0
				return []LevelDef{l}
			},
			code: "BAD_ENEMY",
		},
		{
			name: "enemy standing still",
			levels: func() []LevelDef {
				l := good.Clone()
				l.Enemies[0].Speed = 0
				return []LevelDef{l}
			},
			code: "BAD_ENEMY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCatalog(tc.levels())
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestLevelDefCloneIsDeep(t *testing.T) {
	orig := BuiltinLevels(960, 540)[0]
	clone := orig.Clone()

	clone.Platforms[0].X = 999
	clone.Notes[0].X = 999
	clone.Enemies[0].Speed = 999

	if orig.Platforms[0].X == 999 || orig.Notes[0].X == 999 || orig.Enemies[0].Speed == 999 {
		t.Error("Clone should not share slices with the original")
	}
}
