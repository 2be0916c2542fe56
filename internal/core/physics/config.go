package physics

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/impulse/internal/core/vector"
)

// DefaultGravity pulls towards negative Y at Earth strength.
var DefaultGravity = vector.New(0, -9.81)

// Bounds optionally closes each side of the world with an immovable wall.
type Bounds struct {
	MinX *float64 `json:"min_x,omitempty" yaml:"min_x,omitempty"`
	MaxX *float64 `json:"max_x,omitempty" yaml:"max_x,omitempty"`
	MinY *float64 `json:"min_y,omitempty" yaml:"min_y,omitempty"`
	MaxY *float64 `json:"max_y,omitempty" yaml:"max_y,omitempty"`
}

// Bound is a helper for building Bounds literals.
func Bound(v float64) *float64 {
	return &v
}

func (b Bounds) Validate() error {
	for _, v := range []*float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%w: bound must be finite", ErrInvalidBounds)
		}
	}
	if b.MinX != nil && b.MaxX != nil && *b.MinX >= *b.MaxX {
		return fmt.Errorf("%w: min_x %v >= max_x %v", ErrInvalidBounds, *b.MinX, *b.MaxX)
	}
	if b.MinY != nil && b.MaxY != nil && *b.MinY >= *b.MaxY {
		return fmt.Errorf("%w: min_y %v >= max_y %v", ErrInvalidBounds, *b.MinY, *b.MaxY)
	}
	return nil
}

type Config struct {
	CellSize float64       `json:"cell_size" yaml:"cell_size"`
	Bounds   Bounds        `json:"bounds" yaml:"bounds"`
	Gravity  vector.Vector `json:"gravity" yaml:"gravity"`
}

func DefaultConfig() Config {
	return Config{
		CellSize: 10,
		Gravity:  DefaultGravity,
	}
}

func (c Config) Validate() error {
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	}
	if math.IsNaN(c.Gravity.X) || math.IsNaN(c.Gravity.Y) || math.IsInf(c.Gravity.X, 0) || math.IsInf(c.Gravity.Y, 0) {
		return fmt.Errorf("%w: gravity must be finite", ErrInvalidConfig)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML world config on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode world config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
