package geometry

import "github.com/zeusync/impulse/internal/core/vector"

// CollisionInfo describes how deep two shapes overlap. PenetrationNormal is a
// unit vector giving the direction the second shape has to move to separate
// from the first.
type CollisionInfo struct {
	PenetrationDistance float64
	PenetrationNormal   vector.Vector
}

// Flipped describes the same overlap from the other shape's point of view.
func (c CollisionInfo) Flipped() CollisionInfo {
	return CollisionInfo{PenetrationDistance: c.PenetrationDistance, PenetrationNormal: c.PenetrationNormal.Neg()}
}

// CollisionBetween runs the exact overlap test for a pair of shapes. Shapes
// that only touch do not collide.
func CollisionBetween(g1, g2 Geometry) (CollisionInfo, bool) {
	switch s1 := g1.(type) {
	case Circle:
		switch s2 := g2.(type) {
		case Circle:
			return circleCircle(s1, s2)
		case Rect:
			return flip(rectCircle(s2, s1))
		case Triangle:
			return flip(triangleCircle(s2, s1))
		}
	case Rect:
		switch s2 := g2.(type) {
		case Circle:
			return rectCircle(s1, s2)
		case Rect:
			return rectRect(s1, s2)
		case Triangle:
			return flip(triangleRect(s2, s1))
		}
	case Triangle:
		switch s2 := g2.(type) {
		case Circle:
			return triangleCircle(s1, s2)
		case Rect:
			return triangleRect(s1, s2)
		case Triangle:
			return triangleTriangle(s1, s2)
		}
	}
	return CollisionInfo{}, false
}

// Overlaps reports whether the shapes collide.
func Overlaps(g1, g2 Geometry) bool {
	_, ok := CollisionBetween(g1, g2)
	return ok
}

func flip(info CollisionInfo, ok bool) (CollisionInfo, bool) {
	if !ok {
		return CollisionInfo{}, false
	}
	return info.Flipped(), true
}

func collided(distance float64, normal vector.Vector) (CollisionInfo, bool) {
	if !(distance > 0) {
		return CollisionInfo{}, false
	}
	return CollisionInfo{PenetrationDistance: distance, PenetrationNormal: normal}, true
}

func circleCircle(c1, c2 Circle) (CollisionInfo, bool) {
	sum := c1.Radius + c2.Radius
	dist := c1.C.DistanceTo(c2.C)
	if dist >= sum {
		return CollisionInfo{}, false
	}
	if dist == 0 {
		return collided(max(c1.Radius, c2.Radius), vector.New(1, 0))
	}
	return collided(sum-dist, vector.Between(c1.C, c2.C).Unit())
}
