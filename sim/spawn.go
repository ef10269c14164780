package sim

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"flaglaunch/vmath"
)

// celebrationPalette is the fixed set of particle colours
var celebrationPalette = []color.RGBA{
	colornames.Gold,
	colornames.Tomato,
	colornames.Deepskyblue,
	colornames.Limegreen,
	colornames.Hotpink,
	colornames.Mediumpurple,
}

// between returns a uniform sample in [lo, hi]
func (s *Simulation) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// spawnCelebration queues ParticleCount particles bursting upward from origin.
// They join the world when the step finishes.
func (s *Simulation) spawnCelebration(origin vmath.Vec2) {
	cfg := s.cfg
	for i := 0; i < cfg.ParticleCount; i++ {
		angle := -math.Pi/2 + s.between(-cfg.ParticleSpread, cfg.ParticleSpread)
		speed := s.between(cfg.ParticleSpeedMin, cfg.ParticleSpeedMax)
		spec := ParticleSpec{
			Pos:      origin,
			Vel:      vmath.FromAngle(angle, speed),
			Gravity:  cfg.ParticleGravity,
			Damping:  cfg.ParticleDamping,
			Friction: cfg.ParticleFriction,
			TTL:      s.between(cfg.ParticleTTLMin, cfg.ParticleTTLMax),
			Size:     s.between(cfg.ParticleSizeMin, cfg.ParticleSizeMax),
			Color:    celebrationPalette[s.rng.Intn(len(celebrationPalette))],
		}
		if err := spec.validate(); err != nil {
			s.rejected++
			continue
		}
		s.pending = append(s.pending, spec)
	}
}

// flushSpawns moves queued particles into the world
func (s *Simulation) flushSpawns() {
	for _, spec := range s.pending {
		if _, err := NewParticle(s.world, spec); err != nil {
			s.rejected++
		}
	}
	s.pending = s.pending[:0]
}
