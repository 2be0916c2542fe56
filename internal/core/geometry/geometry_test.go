package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/impulse/internal/core/vector"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, BoundingBox{MinX: -1, MaxX: 3, MinY: 0, MaxY: 4}, NewCircle(pt(1, 2), 2).Bounds())
	assert.Equal(t, BoundingBox{MinX: 0, MaxX: 100, MinY: 0, MaxY: 200}, NewRect(pt(50, 100), 100, 200).Bounds())
	assert.Equal(t, BoundingBox{MinX: -3, MaxX: 3, MinY: 0, MaxY: 5}, NewTriangle(pt(-3, 0), pt(0, 5), pt(3, 1)).Bounds())

	tri := NewTriangle(pt(-3, 0), pt(0, 5), pt(3, 1))
	assert.Equal(t, 6.0, tri.Width())
	assert.Equal(t, 5.0, tri.Height())
	assert.Equal(t, 4.0, NewCircle(pt(0, 0), 2).Width())
}

func TestWithCenter(t *testing.T) {
	assert.Equal(t, NewCircle(pt(5, 5), 2), NewCircle(pt(0, 0), 2).WithCenter(pt(5, 5)))
	assert.Equal(t, NewRect(pt(-1, 3), 2, 4), NewRect(pt(0, 0), 2, 4).WithCenter(pt(-1, 3)))

	tri := NewTriangle(pt(0, 0), pt(3, 0), pt(0, 3))
	moved := tri.WithCenter(pt(11, 11))
	require.IsType(t, Triangle{}, moved)
	assert.Equal(t, NewTriangle(pt(10, 10), pt(13, 10), pt(10, 13)), moved)
}

func TestScaled(t *testing.T) {
	assert.Equal(t, NewCircle(pt(1, 1), 3), NewCircle(pt(1, 1), 1.5).Scaled(2))
	assert.Equal(t, NewRect(pt(1, 1), 1, 2), NewRect(pt(1, 1), 2, 4).Scaled(0.5))

	tri := NewTriangle(pt(0, 0), pt(3, 0), pt(0, 3)).Scaled(2).(Triangle)
	assert.Equal(t, pt(1, 1), tri.Center())
	assert.Equal(t, NewTriangle(pt(-1, -1), pt(5, -1), pt(-1, 5)), tri)
}

func TestTriangle_Rotated(t *testing.T) {
	tri := NewTriangle(pt(-1, -1), pt(2, -1), pt(-1, 2))
	r := tri.Rotated(90)
	c := tri.Center()
	assert.InDelta(t, c.X, r.Center().X, eps)
	assert.InDelta(t, c.Y, r.Center().Y, eps)
	assert.InDelta(t, 1, r.A.X, eps)
	assert.InDelta(t, -1, r.A.Y, eps)
	assert.InDelta(t, tri.A.DistanceTo(tri.B), r.A.DistanceTo(r.B), eps)
}

func TestEquilateralTriangle(t *testing.T) {
	tri := EquilateralTriangle(pt(10, 20), 6)
	assert.InDelta(t, 10, tri.Center().X, eps)
	assert.InDelta(t, 20, tri.Center().Y, eps)
	assert.InDelta(t, 6, tri.A.DistanceTo(tri.B), eps)
	assert.InDelta(t, 6, tri.B.DistanceTo(tri.C), eps)
	assert.InDelta(t, 6, tri.C.DistanceTo(tri.A), eps)
	assert.Less(t, tri.A.Y, tri.B.Y)
	assert.Equal(t, tri.B.Y, tri.C.Y)
	assert.InDelta(t, 6*math.Sqrt(3)/2, tri.Height(), eps)
}

func TestTriangle_NearestPoint(t *testing.T) {
	tests := []struct {
		name   string
		tri    Triangle
		query  vector.Point
		want   vector.Point
		inside bool
	}{
		{"inside", NewTriangle(pt(0, 0), pt(1, 2), pt(2, 0)), pt(1, 1), pt(1, 1), true},
		{"vertex a", NewTriangle(pt(-3, 0), pt(-1, 1), pt(3, 0)), pt(-4, -1), pt(-3, 0), false},
		{"vertex b", NewTriangle(pt(3, 3), pt(4.5, 6), pt(6, 3)), pt(7, 8), pt(4.5, 6), false},
		{"vertex c", NewTriangle(pt(0, 0), pt(0, 5), pt(4, 0)), pt(5, -1), pt(4, 0), false},
		{"edge bc", NewTriangle(pt(0, 0), pt(-4, 3), pt(4, 3)), pt(2, 5), pt(2, 3), false},
		{"hypotenuse", NewTriangle(pt(0, 0), pt(0, 6), pt(6, 0)), pt(4.5, 3.5), pt(3.5, 2.5), false},
		{"edge ab", NewTriangle(pt(0, 0), pt(0, 6), pt(6, 0)), pt(-2, 4), pt(0, 4), false},
		{"edge ac", NewTriangle(pt(0, 0), pt(0, 6), pt(6, 0)), pt(2, -3), pt(2, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inside := tt.tri.NearestPoint(tt.query)
			assert.Equal(t, tt.inside, inside)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestRect_ClosestPoint(t *testing.T) {
	r := NewRect(pt(0, 0), 4, 2)
	assert.Equal(t, pt(2, 1), r.ClosestPoint(pt(5, 5)))
	assert.Equal(t, pt(-2, 0.5), r.ClosestPoint(pt(-3, 0.5)))
	assert.Equal(t, pt(1, -1), r.ClosestPoint(pt(1, -4)))
	assert.Equal(t, pt(0.5, 0.5), r.ClosestPoint(pt(0.5, 0.5)))
}
