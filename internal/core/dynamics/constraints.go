package dynamics

import (
	"math"

	"github.com/zeusync/impulse/internal/core/vector"
)

// MotionConstraints caps position and velocity per axis. A nil limit leaves
// that axis free; a limit m keeps the value within [-m, m].
type MotionConstraints struct {
	PositionX *float64 `json:"position_x,omitempty" yaml:"position_x,omitempty"`
	PositionY *float64 `json:"position_y,omitempty" yaml:"position_y,omitempty"`
	VelocityX *float64 `json:"velocity_x,omitempty" yaml:"velocity_x,omitempty"`
	VelocityY *float64 `json:"velocity_y,omitempty" yaml:"velocity_y,omitempty"`
}

// Limit builds a magnitude cap. The sign of m is ignored.
func Limit(m float64) *float64 {
	m = math.Abs(m)
	return &m
}

// VelocityCap limits the speed on both axes to m.
func VelocityCap(m float64) MotionConstraints {
	return MotionConstraints{VelocityX: Limit(m), VelocityY: Limit(m)}
}

func (c MotionConstraints) IsZero() bool {
	return c.PositionX == nil && c.PositionY == nil && c.VelocityX == nil && c.VelocityY == nil
}

func (c MotionConstraints) ClampPosition(p vector.Point) vector.Point {
	return vector.NewPoint(clampAxis(p.X, c.PositionX), clampAxis(p.Y, c.PositionY))
}

func (c MotionConstraints) ClampVelocity(v vector.Vector) vector.Vector {
	return vector.New(clampAxis(v.X, c.VelocityX), clampAxis(v.Y, c.VelocityY))
}

func clampAxis(v float64, limit *float64) float64 {
	if limit == nil {
		return v
	}
	m := math.Abs(*limit)
	return vector.Clamp(v, -m, m)
}
