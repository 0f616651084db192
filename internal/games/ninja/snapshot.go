package ninja

import "math"

// Snapshot contains the simulation state that determinism tests compare.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick      int
	Paused    bool
	Respawns  int
	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	AirTime   int
	JumpCount int
	WallSlide bool
	Dashing   int
	Action    string
	ScrollX   float64
	ScrollY   float64

	// Particles are flattened as (kind, x, y, frame) quadruples.
	ParticleData []float64

	// Cloud positions are flattened as (x, y) pairs.
	CloudData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:      g.tickCount,
		Paused:    g.paused,
		Respawns:  g.respawns,
		PlayerX:   p.Pos.X,
		PlayerY:   p.Pos.Y,
		PlayerVX:  p.Velocity.X,
		PlayerVY:  p.Velocity.Y,
		AirTime:   p.AirTime,
		JumpCount: p.JumpCount,
		WallSlide: p.WallSlide,
		Dashing:   p.Dashing,
		Action:    p.Action().String(),
		ScrollX:   g.camera.Scroll.X,
		ScrollY:   g.camera.Scroll.Y,
	}

	live := g.particles.Particles()
	snap.ParticleData = make([]float64, 0, len(live)*4)
	for _, pt := range live {
		snap.ParticleData = append(snap.ParticleData,
			float64(pt.Kind), pt.Pos.X, pt.Pos.Y, float64(pt.Animation().Frame()))
	}

	cl := g.clouds.Clouds()
	snap.CloudData = make([]float64, 0, len(cl)*2)
	for _, c := range cl {
		snap.CloudData = append(snap.CloudData, c.Pos.X, c.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixB(snap.Paused)
	mix(uint64(snap.Respawns)) //#nosec G115 -- hash computation
	mixF(snap.PlayerX)
	mixF(snap.PlayerY)
	mixF(snap.PlayerVX)
	mixF(snap.PlayerVY)
	mix(uint64(snap.AirTime))   //#nosec G115 -- hash computation
	mix(uint64(snap.JumpCount)) //#nosec G115 -- hash computation
	mixB(snap.WallSlide)
	mix(uint64(int64(snap.Dashing))) //#nosec G115 -- hash computation
	for _, r := range snap.Action {
		mix(uint64(r))
	}
	mixF(snap.ScrollX)
	mixF(snap.ScrollY)
	for _, f := range snap.ParticleData {
		mixF(f)
	}
	for _, f := range snap.CloudData {
		mixF(f)
	}
	return h
}
