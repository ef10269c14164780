package sim

import "flaglaunch/vmath"

// DebugSnapshot is the informational state shown by the debug overlay
type DebugSnapshot struct {
	DT        float64
	MoverPos  vmath.Vec2
	MoverVel  vmath.Vec2
	Grounded  bool
	Gesture   Gesture
	Entities  int
	Particles int
	Wins      int
	Rejected  int
}

// Snapshot returns the state after the last step
func (s *Simulation) Snapshot() DebugSnapshot {
	snap := DebugSnapshot{
		DT:        s.lastDT,
		Grounded:  s.grounded,
		Gesture:   s.lastGesture,
		Entities:  s.world.Len(),
		Particles: particles.Count(s.world),
		Wins:      s.wins,
		Rejected:  s.rejected,
	}
	if m, ok := s.Mover(); ok {
		snap.MoverPos = *Position.Get(m)
		snap.MoverVel = *Velocity.Get(m)
	}
	return snap
}
