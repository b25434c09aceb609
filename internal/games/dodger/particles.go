package dodger

import (
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// Particle radii in world units.
const (
	ExplosionRadius = 2.0
	TrailRadius     = 3.0
)

// Particle is a short-lived fading dot.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
}

// Update ages the particle and moves it.
func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Dead reports whether the particle has expired.
func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Alpha returns the remaining life fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem owns a set of particles and sweeps out dead ones.
type ParticleSystem struct {
	particles []Particle
}

// Emit adds a particle.
func (s *ParticleSystem) Emit(p Particle) {
	s.particles = append(s.particles, p)
}

// Update ages every particle and removes the expired ones in place.
func (s *ParticleSystem) Update(dt float64) {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Update(dt)
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	clear(s.particles[len(alive):])
	s.particles = alive
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is owned by the system.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Clear removes every particle.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

// Speck is a decorative background dot. Specks are recycled, never destroyed.
type Speck struct {
	Pos    core.Vec2
	Radius float64
}

// Starfield scrolls specks down the screen and wraps them to the top.
type Starfield struct {
	specks []Speck
	width  float64
	height float64
}

// NewStarfield creates an empty field for a world of the given size.
func NewStarfield(width, height float64) *Starfield {
	return &Starfield{width: width, height: height}
}

// Reset scatters n specks uniformly over the world.
func (f *Starfield) Reset(n int, rng core.Rand) {
	f.specks = f.specks[:0]
	for range n {
		f.specks = append(f.specks, Speck{
			Pos:    core.V(core.Uniform(rng, 0, f.width), core.Uniform(rng, 0, f.height)),
			Radius: core.Uniform(rng, 1, 2.5),
		})
	}
}

// Update scrolls every speck by speed*dt; specks past the bottom edge
// reappear just above the top at a new random x.
func (f *Starfield) Update(dt, speed float64, rng core.Rand) {
	for i := range f.specks {
		s := &f.specks[i]
		s.Pos.Y += speed * dt
		if s.Pos.Y > f.height {
			s.Pos.X = core.Uniform(rng, 0, f.width)
			s.Pos.Y = -20
		}
	}
}

// Specks returns the specks. The slice is owned by the field.
func (f *Starfield) Specks() []Speck {
	return f.specks
}
