package sim

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/nightescape/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick      int
	Phase     Phase
	FieldW    float64
	FieldH    float64
	Player    Player
	Platforms []core.Box
	Notes     []Note
	Key       Key
	Exit      Exit
	Enemies   []Enemy
	Noise     float64
	Threshold float64
	HUD       HUD
}

// Snapshot returns a deep copy of the world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		Phase:     w.phase,
		FieldW:    w.cfg.Field.Width,
		FieldH:    w.cfg.Field.Height,
		Player:    w.player,
		Platforms: w.Platforms(),
		Notes:     w.Notes(),
		Key:       w.key,
		Exit:      w.exit,
		Enemies:   w.Enemies(),
		Noise:     w.noise,
		Threshold: w.cfg.Noise.DetectionThreshold,
		HUD:       w.HUD(),
	}
}

// NotesLeft returns the number of uncollected notes on the level.
func (s Snapshot) NotesLeft() int {
	n := 0
	for _, note := range s.Notes {
		if !note.Collected {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a hash over the simulation-relevant state, used to
// compare two runs fed the same inputs.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putF := func(f float64) {
		putU(h, buf[:], math.Float64bits(f))
	}
	putI := func(i int) {
		putU(h, buf[:], uint64(int64(i))) //#nosec G115 -- hash computation
	}
	putB := func(b bool) {
		if b {
			putI(1)
		} else {
			putI(0)
		}
	}

	putI(s.Tick)
	putI(int(s.Phase))
	putF(s.Player.X)
	putF(s.Player.Y)
	putF(s.Player.VX)
	putF(s.Player.VY)
	putB(s.Player.Grounded)
	putI(s.Player.Invul)
	for _, n := range s.Notes {
		putB(n.Collected)
	}
	putB(s.Key.Taken)
	putB(s.Exit.Locked)
	for _, e := range s.Enemies {
		putF(e.X)
		putF(e.Y)
		putI(e.Dir)
	}
	putF(s.Noise)
	putI(s.HUD.Score)
	putI(s.HUD.Keys)
	putI(s.HUD.Lives)
	putI(s.HUD.Level)
	return h.Sum64()
}

func putU(h interface{ Write([]byte) (int, error) }, buf []byte, v uint64) {
	for i := range 8 {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(buf)
}
