package geometry

import (
	"math"

	"github.com/zeusync/impulse/internal/core/vector"
)

func rectRect(r1, r2 Rect) (CollisionInfo, bool) {
	dx, dy := r2.C.X-r1.C.X, r2.C.Y-r1.C.Y
	xOverlap := (r1.W+r2.W)/2 - math.Abs(dx)
	yOverlap := (r1.H+r2.H)/2 - math.Abs(dy)
	if xOverlap <= 0 || yOverlap <= 0 {
		return CollisionInfo{}, false
	}
	if xOverlap < yOverlap {
		return collided(xOverlap, vector.New(sign(dx), 0))
	}
	return collided(yOverlap, vector.New(0, sign(dy)))
}

// sign treats zero as positive so that coincident centers still get a normal.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ClosestPoint returns the point of the rectangle (boundary or interior)
// nearest to p.
func (r Rect) ClosestPoint(p vector.Point) vector.Point {
	b := r.Bounds()
	return vector.NewPoint(vector.Clamp(p.X, b.MinX, b.MaxX), vector.Clamp(p.Y, b.MinY, b.MaxY))
}

func rectCircle(r Rect, c Circle) (CollisionInfo, bool) {
	closest := r.ClosestPoint(c.C)
	if closest != c.C {
		dist := closest.DistanceTo(c.C)
		if dist >= c.Radius {
			return CollisionInfo{}, false
		}
		return collided(c.Radius-dist, vector.Between(closest, c.C).Unit())
	}

	// The center is inside: leave through the nearest edge.
	b := r.Bounds()
	edges := [...]struct {
		dist   float64
		normal vector.Vector
	}{
		{c.C.X - b.MinX, vector.New(-1, 0)},
		{b.MaxX - c.C.X, vector.New(1, 0)},
		{c.C.Y - b.MinY, vector.New(0, -1)},
		{b.MaxY - c.C.Y, vector.New(0, 1)},
	}
	nearest := edges[0]
	for _, e := range edges[1:] {
		if e.dist < nearest.dist {
			nearest = e
		}
	}
	return collided(c.Radius+nearest.dist, nearest.normal)
}
