package sim

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"

	"flaglaunch/vmath"
)

// CollisionModel selects how an entity responds to ground contact
type CollisionModel int

const (
	// CollisionVertical reflects only the vertical velocity and applies friction to x while resting
	CollisionVertical CollisionModel = iota
	// CollisionSlope reflects the full velocity about the terrain normal
	CollisionSlope
)

func (m CollisionModel) String() string {
	switch m {
	case CollisionVertical:
		return "vertical"
	case CollisionSlope:
		return "slope"
	default:
		return "unknown"
	}
}

// CollisionData holds ground-contact response parameters
type CollisionData struct {
	Model    CollisionModel
	Bounce   float64
	Friction float64
}

// AgeData tracks lifespan. Mortal entities are killed once Age exceeds TTL.
type AgeData struct {
	Age    float64
	TTL    float64
	Mortal bool
}

// ParticleData is render metadata for celebration particles
type ParticleData struct {
	Size  float64
	Color color.RGBA
}

// BodyData is render metadata for the player ball
type BodyData struct {
	Radius float64
	Color  color.RGBA
}

// BannerData is render metadata for the goal flag
type BannerData struct {
	Height float64
	Color  color.RGBA
}

var (
	Position  = donburi.NewComponentType[vmath.Vec2]()
	Velocity  = donburi.NewComponentType[vmath.Vec2]()
	Rotation  = donburi.NewComponentType[float64]()
	Gravity   = donburi.NewComponentType[float64]()
	Damping   = donburi.NewComponentType[float64]()
	Collision = donburi.NewComponentType[CollisionData]()
	Age       = donburi.NewComponentType[AgeData]()
	Jump      = donburi.NewComponentType[float64]()
	Shadow    = donburi.NewComponentType[float64]()
	Particle  = donburi.NewComponentType[ParticleData]()
	Body      = donburi.NewComponentType[BodyData]()
	Banner    = donburi.NewComponentType[BannerData]()

	// Stick pins an entity's y to the ground every step
	Stick = donburi.NewTag()
	// Goal marks the entity whose proximity to the mover wins the level
	Goal = donburi.NewTag()
	// Kill marks an entity for removal by the cleanup pass
	Kill = donburi.NewTag()
)

// ParseCollisionModel parses "vertical" or "slope"
func ParseCollisionModel(s string) (CollisionModel, error) {
	switch s {
	case "vertical":
		return CollisionVertical, nil
	case "slope":
		return CollisionSlope, nil
	}
	return 0, fmt.Errorf("unknown collision model %q: %w", s, ErrInvalidConfig)
}
