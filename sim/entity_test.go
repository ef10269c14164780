package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"flaglaunch/terrain"
	"flaglaunch/vmath"
)

func TestValidateRejectsMalformedEntities(t *testing.T) {
	tests := []struct {
		name  string
		comps []donburi.IComponentType
		setup func(e *donburi.Entry)
	}{
		{"velocity without position", []donburi.IComponentType{Velocity}, nil},
		{"gravity without velocity", []donburi.IComponentType{Position, Gravity}, nil},
		{"collision and stick", []donburi.IComponentType{Position, Velocity, Collision, Stick}, nil},
		{"damping out of range", []donburi.IComponentType{Position, Velocity, Damping}, func(e *donburi.Entry) {
			Damping.SetValue(e, 1.5)
		}},
		{"negative ttl", []donburi.IComponentType{Age}, func(e *donburi.Entry) {
			Age.SetValue(e, AgeData{TTL: -1, Mortal: true})
		}},
		{"nan position", []donburi.IComponentType{Position}, func(e *donburi.Entry) {
			Position.SetValue(e, vmath.Vec2{X: math.NaN()})
		}},
		{"unknown collision model", []donburi.IComponentType{Position, Velocity, Collision}, func(e *donburi.Entry) {
			Collision.SetValue(e, CollisionData{Model: CollisionModel(7), Friction: 1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			e := w.Entry(w.Create(tt.comps...))
			if tt.setup != nil {
				tt.setup(e)
			}
			if err := Validate(e); !errors.Is(err, ErrInvalidEntity) {
				t.Fatalf("Validate = %v, want ErrInvalidEntity", err)
			}
		})
	}
}

func TestConstructorsProduceValidEntities(t *testing.T) {
	w := donburi.NewWorld()
	cfg := DefaultConfig()
	tr := terrain.Default()

	p, err := NewPlayer(w, vmath.Vec2{X: 0.1, Y: 0.5}, cfg)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if !p.HasComponent(Jump) || *Jump.Get(p) != cfg.PlayerJump {
		t.Fatalf("player missing jump")
	}
	f, err := NewFlag(w, 0.7, tr)
	if err != nil {
		t.Fatalf("NewFlag: %v", err)
	}
	fp := *Position.Get(f)
	if fp.X != tr.Valley(0.7) {
		t.Fatalf("flag x = %f, want trough at %f", fp.X, tr.Valley(0.7))
	}
	if fp.Y != tr.Height(fp.X) {
		t.Fatalf("flag not planted: y=%f", fp.Y)
	}
	if w.Len() != 2 {
		t.Fatalf("world len = %d, want 2", w.Len())
	}
}

func TestConstructorRejectsAndCleansUp(t *testing.T) {
	w := donburi.NewWorld()
	cfg := DefaultConfig()
	cfg.PlayerJump = 0
	if _, err := NewPlayer(w, vmath.Zero(), cfg); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("NewPlayer with zero jump = %v", err)
	}

	cfg = DefaultConfig()
	cfg.PlayerFrict = 2
	if _, err := NewPlayer(w, vmath.Zero(), cfg); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("NewPlayer with friction 2 = %v", err)
	}
	if _, err := NewParticle(w, ParticleSpec{Size: 0, Damping: 1, Friction: 1}); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("NewParticle with zero size = %v", err)
	}
	if w.Len() != 0 {
		t.Fatalf("rejected entities left in world: %d", w.Len())
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	breakers := map[string]func(*Config){
		"max delta":      func(c *Config) { c.MaxDelta = 0 },
		"rest speed":     func(c *Config) { c.RestSpeed = math.NaN() },
		"speed range":    func(c *Config) { c.ParticleSpeedMin = 5 },
		"ttl range":      func(c *Config) { c.ParticleTTLMin = -1 },
		"damping":        func(c *Config) { c.PlayerDamping = 1.2 },
		"model":          func(c *Config) { c.PlayerModel = CollisionModel(9) },
		"particle count": func(c *Config) { c.ParticleCount = -1 },
	}
	for name, brk := range breakers {
		cfg := DefaultConfig()
		brk(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: Validate = %v, want ErrInvalidConfig", name, err)
		}
		if _, err := New(cfg, terrain.Default()); err == nil {
			t.Fatalf("%s: New accepted invalid config", name)
		}
	}
}

func TestParseCollisionModel(t *testing.T) {
	for _, m := range []CollisionModel{CollisionVertical, CollisionSlope} {
		got, err := ParseCollisionModel(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseCollisionModel(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseCollisionModel("bouncy"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("ParseCollisionModel(bouncy) = %v", err)
	}
}
