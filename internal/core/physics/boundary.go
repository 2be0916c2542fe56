package physics

import (
	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/vector"
)

// BoundaryExtent is the size of a boundary wall. Walls are finite so that
// separating-axis projections against them stay finite.
const BoundaryExtent = 1e12

const boundaryTag = "boundary"

// newBoundaries builds one static wall per configured side. Each wall's inner
// edge lies exactly on the bound.
func newBoundaries(b Bounds) []*RigidBody {
	const half = BoundaryExtent / 2

	var walls []*RigidBody
	if b.MinX != nil {
		walls = append(walls, newWall(vector.NewPoint(*b.MinX-half, 0)))
	}
	if b.MaxX != nil {
		walls = append(walls, newWall(vector.NewPoint(*b.MaxX+half, 0)))
	}
	if b.MinY != nil {
		walls = append(walls, newWall(vector.NewPoint(0, *b.MinY-half)))
	}
	if b.MaxY != nil {
		walls = append(walls, newWall(vector.NewPoint(0, *b.MaxY+half)))
	}
	return walls
}

func newWall(center vector.Point) *RigidBody {
	return NewShapedBody(
		dynamics.NewStatic(center),
		geometry.NewRect(center, BoundaryExtent, BoundaryExtent),
		WithMaterial(dynamics.PerfectlyElastic),
		WithTag(boundaryTag),
	)
}
