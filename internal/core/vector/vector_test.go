package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVector_Magnitude(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{New(3, 4), 5},
		{New(-5, 12), 13},
		{Zero, 0},
		{New(-1, 0), 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.v.Magnitude(), eps, "%v", tt.v)
	}
}

func TestVector_Unit(t *testing.T) {
	u := New(3, 4).Unit()
	assert.InDelta(t, 0.6, u.X, eps)
	assert.InDelta(t, 0.8, u.Y, eps)
	assert.InDelta(t, 1, New(-7, 2).Unit().Magnitude(), eps)

	assert.Equal(t, New(1, 0), Zero.Unit(), "zero vector has a fixed fallback direction")
}

func TestVector_DotCross(t *testing.T) {
	assert.Equal(t, -14.0, New(-4, -9).Dot(New(-1, 2)))
	assert.Equal(t, 0.0, New(1, 0).Dot(New(0, 5)))

	assert.Equal(t, 1.0, New(1, 0).Cross(New(0, 1)))
	assert.Equal(t, -1.0, New(0, 1).Cross(New(1, 0)))
	assert.Equal(t, 0.0, New(2, 2).Cross(New(-3, -3)))
}

func TestVector_Arithmetic(t *testing.T) {
	a, b := New(1, 2), New(-3, 5)
	assert.Equal(t, New(-2, 7), a.Add(b))
	assert.Equal(t, New(4, -3), a.Sub(b))
	assert.Equal(t, New(-1, -2), a.Neg())
	assert.Equal(t, New(2.5, 5), a.Scale(2.5))
	assert.Equal(t, New(0.5, 1), a.Div(2))
	assert.Equal(t, New(1, 0), a.XComponent())
	assert.Equal(t, New(0, 2), a.YComponent())
	assert.True(t, Zero.IsZero())
}

func TestVector_Rotate(t *testing.T) {
	assert.Equal(t, New(0, 1), New(1, 0).Rotate(90))
	assert.Equal(t, New(-1, 0), New(1, 0).Rotate(180))
	assert.Equal(t, New(0, -2), New(2, 0).Rotate(-90))

	r := New(1, 0).Rotate(45)
	assert.InDelta(t, math.Sqrt2/2, r.X, eps)
	assert.InDelta(t, math.Sqrt2/2, r.Y, eps)
}

func TestFromAngle(t *testing.T) {
	assert.Equal(t, New(0, -10), FromAngle(270, 10))
	v := FromAngle(30, 2)
	assert.InDelta(t, math.Sqrt(3), v.X, eps)
	assert.InDelta(t, 1, v.Y, eps)
}

func TestPoint_DistanceTo(t *testing.T) {
	assert.InDelta(t, 5, Origin.DistanceTo(NewPoint(3, 4)), eps)
	assert.InDelta(t, 13, NewPoint(1, 1).DistanceTo(NewPoint(-4, -11)), eps)
	assert.Equal(t, 0.0, NewPoint(2, 2).DistanceTo(NewPoint(2, 2)))
}

func TestPoint_TranslateRotate(t *testing.T) {
	p := NewPoint(1, 1)
	assert.Equal(t, NewPoint(3, 0), p.Translate(New(2, -1)))
	assert.Equal(t, New(2, -1), Between(p, NewPoint(3, 0)))
	assert.Equal(t, NewPoint(1, 2), NewPoint(2, 1).Rotate(p, 90))
	assert.Equal(t, New(1, 1), p.Vector())
	assert.Equal(t, p, p.Vector().ToPoint())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 10))
	assert.Equal(t, 10.0, Clamp(11.0, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
	assert.Equal(t, 3, Clamp(3, 3, 3))
}

func TestTrigDegrees(t *testing.T) {
	assert.Equal(t, 1.0, SinDegrees(90))
	assert.Equal(t, 0.0, SinDegrees(360))
	assert.Equal(t, -1.0, SinDegrees(-90))
	assert.Equal(t, -1.0, CosDegrees(180))
	assert.Equal(t, 0.0, CosDegrees(270))
	assert.InDelta(t, 0.5, SinDegrees(30), eps)
	assert.InDelta(t, 0.5, CosDegrees(60), eps)
}
