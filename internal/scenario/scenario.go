package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/physics"
	"github.com/zeusync/impulse/internal/core/vector"
)

var (
	ErrUnknownObjectKind = errors.New("unknown object kind")
	ErrInvalidObject     = errors.New("invalid object")
	ErrInvalidRun        = errors.New("invalid run parameters")
)

type Kind string

const (
	KindBall      Kind = "ball"
	KindPeg       Kind = "peg"
	KindTriangle  Kind = "triangle"
	KindBlock     Kind = "block"
	KindBucket    Kind = "bucket"
	KindExplosion Kind = "explosion"
)

// Scenario is a world configuration plus the objects placed in it.
type Scenario struct {
	Name     string         `yaml:"name"`
	World    physics.Config `yaml:"world"`
	Duration float64        `yaml:"duration"`
	Steps    int            `yaml:"steps"`
	// OutOfBoundsY removes balls that fall below it.
	OutOfBoundsY *float64 `yaml:"out_of_bounds_y,omitempty"`
	Objects      []Object `yaml:"objects"`
}

// Object describes one game object. Which fields apply depends on Kind.
type Object struct {
	Kind     Kind          `yaml:"kind"`
	Position vector.Point  `yaml:"position"`
	Velocity vector.Vector `yaml:"velocity,omitempty"`
	// Angle and Speed launch a ball like a cannon and win over Velocity.
	Angle       float64  `yaml:"angle,omitempty"`
	Speed       float64  `yaml:"speed,omitempty"`
	Radius      float64  `yaml:"radius,omitempty"`
	MaxRadius   float64  `yaml:"max_radius,omitempty"`
	Width       float64  `yaml:"width,omitempty"`
	Height      float64  `yaml:"height,omitempty"`
	Side        float64  `yaml:"side,omitempty"`
	Rotation    float64  `yaml:"rotation,omitempty"`
	Mass        float64  `yaml:"mass,omitempty"`
	Restitution *float64 `yaml:"restitution,omitempty"`
	MaxSpeed    float64  `yaml:"max_speed,omitempty"`
	Range       float64  `yaml:"range,omitempty"`
	Period      float64  `yaml:"period,omitempty"`
	Duration    float64  `yaml:"duration,omitempty"`
}

// Load decodes a scenario, filling unset world settings from
// physics.DefaultConfig.
func Load(r io.Reader) (*Scenario, error) {
	sc := &Scenario{World: physics.DefaultConfig(), Duration: 1, Steps: 60}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

func (s *Scenario) Validate() error {
	if err := s.World.Validate(); err != nil {
		return err
	}
	if !(s.Duration > 0) || s.Steps <= 0 {
		return fmt.Errorf("%w: duration %v over %d steps", ErrInvalidRun, s.Duration, s.Steps)
	}
	for i, obj := range s.Objects {
		if err := obj.Validate(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func (o Object) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > 0) {
			return fmt.Errorf("%w: %s %s must be positive, got %v", ErrInvalidObject, o.Kind, name, v)
		}
		return nil
	}

	var err error
	switch o.Kind {
	case KindBall:
		err = errors.Join(positive("radius", o.Radius), nonNegative(o, "mass", o.Mass))
	case KindPeg:
		err = positive("radius", o.Radius)
	case KindTriangle:
		err = positive("side", o.Side)
	case KindBlock:
		err = errors.Join(positive("width", o.Width), positive("height", o.Height))
	case KindBucket:
		err = errors.Join(positive("width", o.Width), nonNegative(o, "period", o.Period))
	case KindExplosion:
		err = errors.Join(nonNegative(o, "radius", o.Radius), positive("max_radius", o.MaxRadius))
		if err == nil && o.MaxRadius < o.Radius {
			err = fmt.Errorf("%w: explosion max_radius %v below radius %v", ErrInvalidObject, o.MaxRadius, o.Radius)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownObjectKind, o.Kind)
	}
	if err == nil && o.Restitution != nil && *o.Restitution < 0 {
		err = fmt.Errorf("%w: restitution must not be negative", ErrInvalidObject)
	}
	return err
}

func nonNegative(o Object, name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s %s must not be negative, got %v", ErrInvalidObject, o.Kind, name, v)
	}
	return nil
}

// Bodies builds the rigid bodies of the object. A bucket yields three.
func (o Object) Bodies() ([]*physics.RigidBody, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch o.Kind {
	case KindBall:
		return []*physics.RigidBody{o.ball().Body()}, nil
	case KindPeg:
		return []*physics.RigidBody{Peg{Center: o.Position, Radius: o.Radius}.Body()}, nil
	case KindTriangle:
		return []*physics.RigidBody{TrianglePeg{Center: o.Position, Side: o.Side, Rotation: o.Rotation}.Body()}, nil
	case KindBlock:
		return []*physics.RigidBody{Block{Center: o.Position, Width: o.Width, Height: o.Height}.Body()}, nil
	case KindBucket:
		b := NewBucket(o.Position, o.Width, o.Range)
		if o.Period > 0 {
			b.Period = o.Period
		}
		return b.Bodies().All(), nil
	default:
		return []*physics.RigidBody{o.explosion().Body()}, nil
	}
}

func (o Object) ball() Ball {
	velocity := o.Velocity
	if o.Speed != 0 {
		velocity = Launch(o.Angle, o.Speed)
	}
	b := NewBall(o.Position, o.Radius, velocity)
	if o.Mass > 0 {
		b.Mass = o.Mass
	}
	if o.Restitution != nil {
		b.Material = dynamics.Solid(*o.Restitution)
	}
	b.MaxSpeed = o.MaxSpeed
	return b
}

func (o Object) explosion() Explosion {
	e := NewExplosion(o.Position, o.Radius, o.MaxRadius)
	if o.Duration > 0 {
		e.Duration = o.Duration
	}
	return e
}
