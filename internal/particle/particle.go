// Package particle implements short-lived animated sprites and the leaf
// spawners that feed them.
package particle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ninja/internal/anim"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// Kind is the particle type; it selects the animation.
type Kind int

const (
	KindLeaf Kind = iota
	KindParticle
)

// String returns the asset key suffix for the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Particle is a sprite that moves at a constant velocity until its
// animation finishes.
type Particle struct {
	Kind      Kind
	Pos       core.Vec2
	Velocity  core.Vec2
	animation *anim.Animation
}

// New creates a particle playing tmpl from the given frame.
func New(kind Kind, tmpl *anim.Template, pos, vel core.Vec2, frame int) *Particle {
	a := tmpl.New()
	a.SetFrame(frame)
	return &Particle{Kind: kind, Pos: pos, Velocity: vel, animation: a}
}

// Animation returns the particle's animation instance.
func (p *Particle) Animation() *anim.Animation {
	return p.animation
}

// Update advances one tick and reports whether the particle is finished.
func (p *Particle) Update() bool {
	p.animation.Update()
	p.Pos = p.Pos.Add(p.Velocity)
	return p.animation.Done()
}

// Render draws the current frame centered on the particle position.
func (p *Particle) Render(dst gfx.Surface, offset [2]int) {
	img := p.animation.Image()
	w, h := img.Size()
	x := int(math.Floor(p.Pos.X)) - offset[0] - w/2
	y := int(math.Floor(p.Pos.Y)) - offset[1] - h/2
	dst.Blit(img, x, y, false)
}

// LeafDrift sways leaves sideways as they fall. Other kinds are untouched.
func LeafDrift(p *Particle) {
	if p.Kind != KindLeaf {
		return
	}
	p.Pos.X += math.Sin(float64(p.animation.Frame())*0.035) * 0.3
}

// System owns the live particles.
type System struct {
	live []*Particle
}

// Add appends a particle to the live set.
func (s *System) Add(p *Particle) {
	s.live = append(s.live, p)
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.live)
}

// Particles returns the live particles in update order.
func (s *System) Particles() []*Particle {
	return s.live
}

// Clear drops every particle.
func (s *System) Clear() {
	clear(s.live)
	s.live = s.live[:0]
}

// Step updates every particle once, applies drift (if any) after each
// update, and drops the ones that finished.
func (s *System) Step(drift func(*Particle)) {
	n := 0
	for _, p := range s.live {
		done := p.Update()
		if drift != nil {
			drift(p)
		}
		if !done {
			s.live[n] = p
			n++
		}
	}
	clear(s.live[n:])
	s.live = s.live[:n]
}

// Render draws every live particle.
func (s *System) Render(dst gfx.Surface, offset [2]int) {
	for _, p := range s.live {
		p.Render(dst, offset)
	}
}

// DefaultRateDivisor scales spawn chance: a spawner fires on a tick when
// divisor*r < area.
const DefaultRateDivisor = 30000

// Spawner emits particles at random points of an area.
type Spawner struct {
	Area        core.Rect
	RateDivisor float64
}

// Maybe rolls for a spawn this tick and returns the spawn position.
func (s Spawner) Maybe(rng *rand.Rand) (core.Vec2, bool) {
	div := s.RateDivisor
	if div <= 0 {
		div = DefaultRateDivisor
	}
	if div*rng.Float64() >= float64(s.Area.Area()) {
		return core.Vec2{}, false
	}
	return core.V(
		float64(s.Area.X)+float64(s.Area.W)*rng.Float64(),
		float64(s.Area.Y)+float64(s.Area.H)*rng.Float64(),
	), true
}
