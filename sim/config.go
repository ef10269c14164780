package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the physics tuning of a simulation.
// All distances are in world units; one unit spans the canvas height.
type Config struct {
	// MaxDelta caps a single step's elapsed time in seconds
	MaxDelta float64

	// RestSpeed is the speed below which a mover on the ground counts as grounded
	RestSpeed float64

	// GroundEpsilon is the tolerance for "at or below the ground"
	GroundEpsilon float64

	// ContactBand is the height above the ground within which vertical-model friction applies
	ContactBand float64

	// DragThreshold is the minimum released drag length that launches the mover
	DragThreshold float64

	// WinDistance is the mover-to-goal distance that triggers the celebration
	WinDistance float64

	// GoalShift moves the goal along +x after a win
	GoalShift float64

	// Flag swing animation
	FlagSwing     float64
	FlagSwingRate float64

	// Celebration particles
	ParticleCount    int
	ParticleSpread   float64 // half-angle of the upward cone, radians
	ParticleSpeedMin float64
	ParticleSpeedMax float64
	ParticleTTLMin   float64
	ParticleTTLMax   float64
	ParticleSizeMin  float64
	ParticleSizeMax  float64
	ParticleGravity  float64
	ParticleDamping  float64
	ParticleFriction float64

	// Player
	PlayerStart   float64 // x of the player's spawn point
	PlayerGravity float64
	PlayerDamping float64
	PlayerBounce  float64
	PlayerFrict   float64
	PlayerJump    float64
	PlayerRadius  float64
	PlayerModel   CollisionModel

	// FlagStart is where the first goal is placed before it settles into the nearest trough
	FlagStart float64

	// Seed for the particle RNG; 0 picks one from the wall clock
	Seed int64
}

// DefaultConfig returns the tuning of the canonical sketch
func DefaultConfig() Config {
	return Config{
		MaxDelta:      1.0 / 15,
		RestSpeed:     1e-2,
		GroundEpsilon: 1e-6,
		ContactBand:   1e-3,
		DragThreshold: 0.02,
		WinDistance:   0.05,
		GoalShift:     10,

		FlagSwing:     0.15,
		FlagSwingRate: 3,

		ParticleCount:    80,
		ParticleSpread:   math.Pi / 8,
		ParticleSpeedMin: 0.5,
		ParticleSpeedMax: 1.2,
		ParticleTTLMin:   1,
		ParticleTTLMax:   3,
		ParticleSizeMin:  0.003,
		ParticleSizeMax:  0.008,
		ParticleGravity:  1,
		ParticleDamping:  0.5,
		ParticleFriction: 1e-5,

		PlayerStart:   0.1,
		PlayerGravity: 1,
		PlayerDamping: 0.3,
		PlayerBounce:  0.5,
		PlayerFrict:   0.05,
		PlayerJump:    10,
		PlayerRadius:  0.02,
		PlayerModel:   CollisionSlope,

		FlagStart: 0.8,
	}
}

// Validate checks the tuning for values that would break the step
func (c Config) Validate() error {
	switch {
	case !(c.MaxDelta > 0):
		return fmt.Errorf("max delta %v must be positive: %w", c.MaxDelta, ErrInvalidConfig)
	case !(c.RestSpeed > 0):
		return fmt.Errorf("rest speed %v must be positive: %w", c.RestSpeed, ErrInvalidConfig)
	case c.GroundEpsilon < 0 || c.ContactBand < 0:
		return fmt.Errorf("ground tolerances must not be negative: %w", ErrInvalidConfig)
	case c.DragThreshold < 0 || c.WinDistance < 0:
		return fmt.Errorf("thresholds must not be negative: %w", ErrInvalidConfig)
	case c.ParticleCount < 0:
		return fmt.Errorf("particle count %d is negative: %w", c.ParticleCount, ErrInvalidConfig)
	case c.ParticleSpeedMin > c.ParticleSpeedMax:
		return fmt.Errorf("particle speed range [%v, %v]: %w", c.ParticleSpeedMin, c.ParticleSpeedMax, ErrInvalidConfig)
	case c.ParticleTTLMin > c.ParticleTTLMax || c.ParticleTTLMin < 0:
		return fmt.Errorf("particle ttl range [%v, %v]: %w", c.ParticleTTLMin, c.ParticleTTLMax, ErrInvalidConfig)
	case c.ParticleSizeMin > c.ParticleSizeMax:
		return fmt.Errorf("particle size range [%v, %v]: %w", c.ParticleSizeMin, c.ParticleSizeMax, ErrInvalidConfig)
	case !validFactor(c.ParticleDamping) || !validFactor(c.PlayerDamping):
		return fmt.Errorf("damping must be within [0, 1]: %w", ErrInvalidConfig)
	case !validFactor(c.ParticleFriction) || !validFactor(c.PlayerFrict):
		return fmt.Errorf("friction must be within [0, 1]: %w", ErrInvalidConfig)
	case c.PlayerBounce < 0:
		return fmt.Errorf("bounce %v is negative: %w", c.PlayerBounce, ErrInvalidConfig)
	case c.PlayerModel != CollisionVertical && c.PlayerModel != CollisionSlope:
		return fmt.Errorf("unknown collision model %d: %w", c.PlayerModel, ErrInvalidConfig)
	}
	return nil
}

func validFactor(f float64) bool {
	return f >= 0 && f <= 1
}
