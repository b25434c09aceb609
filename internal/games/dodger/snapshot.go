package dodger

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot captures the game state for determinism testing and the
// headless simulator's summary.
type Snapshot struct {
	Frames        uint64
	Score         int
	Lives         int
	Speed         float64
	SpawnInterval float64
	PlayerX       float64
	PlayerY       float64
	Rotation      float64
	Power         PowerState
	Obstacles     int
	Particles     int
	Over          bool
	Checksum      uint64 // FNV-1a over obstacle positions and velocities
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:        g.frames,
		Score:         g.score,
		Lives:         g.lives,
		Speed:         g.ramp.Speed,
		SpawnInterval: g.ramp.SpawnInterval,
		PlayerX:       g.player.Pos.X,
		PlayerY:       g.player.Pos.Y,
		Rotation:      g.player.Rotation,
		Power:         g.player.PowerState(),
		Obstacles:     len(g.obstacles),
		Particles:     g.explosions.Len() + g.trail.Len(),
		Over:          g.over,
		Checksum:      g.obstacleChecksum(),
	}
}

func (g *Game) obstacleChecksum() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, o := range g.obstacles {
		put(o.Pos.X)
		put(o.Pos.Y)
		put(o.Vel.X)
		put(o.Vel.Y)
		put(o.Radius)
	}
	return h.Sum64()
}
