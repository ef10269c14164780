package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/yohamta/donburi"
	"golang.org/x/image/colornames"

	"flaglaunch/terrain"
	"flaglaunch/vmath"
)

// ErrInvalidEntity is returned when an entity is missing a field its capabilities require
var ErrInvalidEntity = errors.New("invalid entity")

// ParticleSpec describes one celebration particle before it joins the world
type ParticleSpec struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Gravity  float64
	Damping  float64
	Friction float64
	TTL      float64
	Size     float64
	Color    color.RGBA
}

func (p ParticleSpec) validate() error {
	switch {
	case !p.Pos.IsFinite() || !p.Vel.IsFinite():
		return fmt.Errorf("particle state not finite: %w", ErrInvalidEntity)
	case !validFactor(p.Damping):
		return fmt.Errorf("particle damping %v: %w", p.Damping, ErrInvalidEntity)
	case !validFactor(p.Friction):
		return fmt.Errorf("particle friction %v: %w", p.Friction, ErrInvalidEntity)
	case !(p.TTL >= 0):
		return fmt.Errorf("particle ttl %v: %w", p.TTL, ErrInvalidEntity)
	case p.Size <= 0:
		return fmt.Errorf("particle size %v: %w", p.Size, ErrInvalidEntity)
	}
	return nil
}

// Validate checks the capability prerequisites of an entry.
// Passes assume every entry in the world has passed this check.
func Validate(e *donburi.Entry) error {
	physical := e.HasComponent(Velocity) || e.HasComponent(Collision) ||
		e.HasComponent(Stick) || e.HasComponent(Gravity) || e.HasComponent(Damping)
	if physical && !e.HasComponent(Position) {
		return fmt.Errorf("physical entity without position: %w", ErrInvalidEntity)
	}
	if (e.HasComponent(Gravity) || e.HasComponent(Damping) || e.HasComponent(Collision)) && !e.HasComponent(Velocity) {
		return fmt.Errorf("dynamic entity without velocity: %w", ErrInvalidEntity)
	}
	if e.HasComponent(Collision) && e.HasComponent(Stick) {
		return fmt.Errorf("entity is both collided and stuck to the ground: %w", ErrInvalidEntity)
	}
	if e.HasComponent(Position) && !Position.Get(e).IsFinite() {
		return fmt.Errorf("position not finite: %w", ErrInvalidEntity)
	}
	if e.HasComponent(Damping) && !validFactor(*Damping.Get(e)) {
		return fmt.Errorf("damping %v outside [0, 1]: %w", *Damping.Get(e), ErrInvalidEntity)
	}
	if e.HasComponent(Collision) {
		c := Collision.Get(e)
		if c.Bounce < 0 || !validFactor(c.Friction) {
			return fmt.Errorf("collision %+v: %w", *c, ErrInvalidEntity)
		}
		if c.Model != CollisionVertical && c.Model != CollisionSlope {
			return fmt.Errorf("collision model %d: %w", c.Model, ErrInvalidEntity)
		}
	}
	if e.HasComponent(Age) {
		a := Age.Get(e)
		if a.Mortal && !(a.TTL >= 0) {
			return fmt.Errorf("ttl %v: %w", a.TTL, ErrInvalidEntity)
		}
	}
	if e.HasComponent(Jump) && e.HasComponent(Stick) {
		return fmt.Errorf("mover cannot be stuck to the ground: %w", ErrInvalidEntity)
	}
	return nil
}

// checked validates a freshly created entry and removes it on failure
func checked(w donburi.World, e *donburi.Entry) (*donburi.Entry, error) {
	if err := Validate(e); err != nil {
		w.Remove(e.Entity())
		return nil, err
	}
	return e, nil
}

// NewPlayer creates the mover
func NewPlayer(w donburi.World, pos vmath.Vec2, cfg Config) (*donburi.Entry, error) {
	if cfg.PlayerJump <= 0 || math.IsNaN(cfg.PlayerJump) {
		return nil, fmt.Errorf("player jump %v: %w", cfg.PlayerJump, ErrInvalidEntity)
	}
	e := w.Entry(w.Create(Position, Velocity, Gravity, Damping, Collision, Jump, Shadow, Body))
	Position.SetValue(e, pos)
	Gravity.SetValue(e, cfg.PlayerGravity)
	Damping.SetValue(e, cfg.PlayerDamping)
	Collision.SetValue(e, CollisionData{
		Model:    cfg.PlayerModel,
		Bounce:   cfg.PlayerBounce,
		Friction: cfg.PlayerFrict,
	})
	Jump.SetValue(e, cfg.PlayerJump)
	Shadow.SetValue(e, cfg.PlayerRadius)
	Body.SetValue(e, BodyData{Radius: cfg.PlayerRadius, Color: colornames.Crimson})
	return checked(w, e)
}

// NewFlag creates the goal, planted in the trough nearest to x so the mover can come to rest at it
func NewFlag(w donburi.World, x float64, tr terrain.Terrain) (*donburi.Entry, error) {
	e := w.Entry(w.Create(Position, Rotation, Age, Stick, Goal, Shadow, Banner))
	x = tr.Valley(x)
	Position.SetValue(e, vmath.Vec2{X: x, Y: tr.Height(x)})
	Shadow.SetValue(e, 0.01)
	Banner.SetValue(e, BannerData{Height: 0.08, Color: colornames.Orange})
	return checked(w, e)
}

// NewParticle creates a celebration particle from spec
func NewParticle(w donburi.World, spec ParticleSpec) (*donburi.Entry, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	e := w.Entry(w.Create(Position, Velocity, Gravity, Damping, Collision, Age, Particle))
	Position.SetValue(e, spec.Pos)
	Velocity.SetValue(e, spec.Vel)
	Gravity.SetValue(e, spec.Gravity)
	Damping.SetValue(e, spec.Damping)
	Collision.SetValue(e, CollisionData{Model: CollisionVertical, Bounce: 0, Friction: spec.Friction})
	Age.SetValue(e, AgeData{TTL: spec.TTL, Mortal: true})
	Particle.SetValue(e, ParticleData{Size: spec.Size, Color: spec.Color})
	return checked(w, e)
}
