// Package sim is the entity update pipeline: a donburi world of component-tagged
// entities advanced by a fixed sequence of physics passes.
package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"flaglaunch/terrain"
	"flaglaunch/vmath"
)

var (
	movers    = donburi.NewQuery(filter.Contains(Jump, Position, Velocity))
	goals     = donburi.NewQuery(filter.Contains(Goal, Position))
	swinging  = donburi.NewQuery(filter.Contains(Goal, Rotation, Age))
	aging     = donburi.NewQuery(filter.Contains(Age))
	stuck     = donburi.NewQuery(filter.Contains(Stick, Position))
	falling   = donburi.NewQuery(filter.And(filter.Contains(Gravity, Velocity), filter.Not(filter.Contains(Stick))))
	moving    = donburi.NewQuery(filter.And(filter.Contains(Position, Velocity), filter.Not(filter.Contains(Stick))))
	damped    = donburi.NewQuery(filter.And(filter.Contains(Damping, Velocity), filter.Not(filter.Contains(Stick))))
	colliding = donburi.NewQuery(filter.Contains(Collision, Position, Velocity))
	killed    = donburi.NewQuery(filter.Contains(Kill))
	particles = donburi.NewQuery(filter.Contains(Particle))
)

// Simulation owns the entity world and everything Step needs between frames
type Simulation struct {
	world  donburi.World
	cfg    Config
	ground terrain.Terrain
	rng    *rand.Rand

	pending []ParticleSpec

	lastDT      float64
	lastGesture Gesture
	grounded    bool
	wins        int
	rejected    int
}

// New creates a simulation with an empty world
func New(cfg Config, ground terrain.Terrain) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulation{
		world:  donburi.NewWorld(),
		cfg:    cfg,
		ground: ground,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// NewLevel creates a simulation holding the player and the flag
func NewLevel(cfg Config, ground terrain.Terrain) (*Simulation, error) {
	s, err := New(cfg, ground)
	if err != nil {
		return nil, err
	}
	if err := s.spawnLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) spawnLevel() error {
	start := vmath.Vec2{X: s.cfg.PlayerStart, Y: s.ground.Height(s.cfg.PlayerStart) - 0.3}
	if _, err := NewPlayer(s.world, start, s.cfg); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	if _, err := NewFlag(s.world, s.cfg.FlagStart, s.ground); err != nil {
		return fmt.Errorf("spawn flag: %w", err)
	}
	return nil
}

// Reset discards every entity and rebuilds the level
func (s *Simulation) Reset() error {
	s.world = donburi.NewWorld()
	s.pending = s.pending[:0]
	s.lastDT = 0
	s.lastGesture = Gesture{}
	s.grounded = false
	s.wins = 0
	s.rejected = 0
	return s.spawnLevel()
}

// World returns the entity world. Callers outside Step must treat it as read-only.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Terrain returns the ground curve
func (s *Simulation) Terrain() terrain.Terrain {
	return s.ground
}

// Config returns the physics tuning
func (s *Simulation) Config() Config {
	return s.cfg
}

// Mover returns the entity carrying Jump
func (s *Simulation) Mover() (*donburi.Entry, bool) {
	return movers.First(s.world)
}

// Goal returns the first goal entity
func (s *Simulation) Goal() (*donburi.Entry, bool) {
	return goals.First(s.world)
}

// Grounded reports whether e is on the ground and at rest
func (s *Simulation) Grounded(e *donburi.Entry) bool {
	return s.ground.Above(*Position.Get(e)) <= s.cfg.GroundEpsilon && Velocity.Get(e).Len() < s.cfg.RestSpeed
}

// snapshot collects the entries matching q before a pass mutates the world
func (s *Simulation) snapshot(q *donburi.Query) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// Step advances the world by dt seconds and returns the gesture with any released drag consumed.
// Particles spawned by a win join the world after the cleanup pass, so they are first
// simulated on the next step.
func (s *Simulation) Step(dt float64, g Gesture) Gesture {
	dt = ClampDelta(dt, s.cfg.MaxDelta)
	s.lastDT = dt

	mover, hasMover := s.Mover()
	s.grounded = hasMover && s.Grounded(mover)
	if s.grounded {
		// grounded means at rest; residual speed would lift it off the ground next step
		Velocity.SetValue(mover, vmath.Zero())
	}

	if hasMover {
		s.winPass(mover)
	}
	s.animatePass()
	g = s.impulsePass(mover, g)
	s.agePass(dt)
	s.stickPass()
	s.gravityPass(mover, dt)
	s.integratePass(dt)
	s.dampingPass(dt)
	s.collisionPass(dt)
	s.cleanupPass()
	s.flushSpawns()

	s.lastGesture = g
	return g
}

// winPass celebrates and moves to the next trough every goal the grounded mover has reached
func (s *Simulation) winPass(mover *donburi.Entry) {
	if !s.grounded {
		return
	}
	at := *Position.Get(mover)
	for _, goal := range s.snapshot(goals) {
		pos := Position.Get(goal)
		if pos.Dist(at) >= s.cfg.WinDistance {
			continue
		}
		s.spawnCelebration(*pos)
		pos.X = s.ground.Valley(pos.X + s.cfg.GoalShift)
		s.wins++
	}
}

// animatePass swings the flag from its age before this step's aging
func (s *Simulation) animatePass() {
	for _, e := range s.snapshot(swinging) {
		age := Age.Get(e).Age
		Rotation.SetValue(e, s.cfg.FlagSwing*math.Sin(s.cfg.FlagSwingRate*age))
	}
}

// impulsePass turns a released drag into a launch. Pulling back launches forward.
func (s *Simulation) impulsePass(mover *donburi.Entry, g Gesture) Gesture {
	if g.Active {
		return g
	}
	drag := g.Drag()
	if mover != nil && s.grounded && drag.Len() > s.cfg.DragThreshold {
		vel := Velocity.Get(mover)
		*vel = vel.Add(drag.Scale(-*Jump.Get(mover)))
		s.grounded = false
	}
	return g.Consumed()
}

func (s *Simulation) agePass(dt float64) {
	for _, e := range s.snapshot(aging) {
		a := Age.Get(e)
		a.Age += dt
		if a.Mortal && a.Age > a.TTL && !e.HasComponent(Kill) {
			e.AddComponent(Kill)
		}
	}
}

func (s *Simulation) stickPass() {
	for _, e := range s.snapshot(stuck) {
		pos := Position.Get(e)
		pos.Y = s.ground.Height(pos.X)
	}
}

// gravityPass accelerates everything with Gravity except a grounded mover
func (s *Simulation) gravityPass(mover *donburi.Entry, dt float64) {
	for _, e := range s.snapshot(falling) {
		if s.grounded && mover != nil && e.Entity() == mover.Entity() {
			continue
		}
		vel := Velocity.Get(e)
		vel.Y += *Gravity.Get(e) * dt
	}
}

func (s *Simulation) integratePass(dt float64) {
	for _, e := range s.snapshot(moving) {
		pos := Position.Get(e)
		*pos = pos.Add(Velocity.Get(e).Scale(dt))
	}
}

// dampingPass decays velocity as damping^dt so the result is frame-rate independent
func (s *Simulation) dampingPass(dt float64) {
	for _, e := range s.snapshot(damped) {
		vel := Velocity.Get(e)
		*vel = vel.Scale(math.Pow(*Damping.Get(e), dt))
	}
}

func (s *Simulation) collisionPass(dt float64) {
	for _, e := range s.snapshot(colliding) {
		c := *Collision.Get(e)
		pos := Position.Get(e)
		vel := Velocity.Get(e)
		switch c.Model {
		case CollisionSlope:
			collideSlope(s.ground, pos, vel, c, dt)
		default:
			collideVertical(s.ground, pos, vel, c, s.cfg.ContactBand, dt)
		}
	}
}

func (s *Simulation) cleanupPass() {
	for _, e := range s.snapshot(killed) {
		s.world.Remove(e.Entity())
	}
}
