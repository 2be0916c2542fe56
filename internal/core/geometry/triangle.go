package geometry

import "github.com/zeusync/impulse/internal/core/vector"

// NearestPoint returns the point of the triangle closest to p. The second
// result is true when p lies strictly inside, in which case p itself is
// returned.
func (t Triangle) NearestPoint(p vector.Point) (vector.Point, bool) {
	ab, ac := vector.Between(t.A, t.B), vector.Between(t.A, t.C)

	ap := vector.Between(t.A, p)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A, false
	}

	bp := vector.Between(t.B, p)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B, false
	}

	if vc := d1*d4 - d3*d2; vc <= 0 && d1 >= 0 && d3 <= 0 {
		return t.A.Translate(ab.Scale(d1 / (d1 - d3))), false
	}

	cp := vector.Between(t.C, p)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C, false
	}

	if vb := d5*d2 - d1*d6; vb <= 0 && d2 >= 0 && d6 <= 0 {
		return t.A.Translate(ac.Scale(d2 / (d2 - d6))), false
	}

	if va := d3*d6 - d5*d4; va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Translate(vector.Between(t.B, t.C).Scale(w)), false
	}

	return p, true
}

// nearestEdge finds the edge whose supporting line is closest to p and
// returns that distance with the edge's outward unit normal. The distance is
// positive for points inside the triangle.
func (t Triangle) nearestEdge(p vector.Point) (float64, vector.Vector) {
	edges := [...][3]vector.Point{{t.A, t.B, t.C}, {t.B, t.C, t.A}, {t.C, t.A, t.B}}

	best, bestNormal := 0.0, vector.Zero
	for i, e := range edges {
		dir := vector.Between(e[0], e[1])
		n := vector.New(-dir.Y, dir.X).Unit()
		if n.Dot(vector.Between(e[0], e[2])) > 0 {
			n = n.Neg()
		}
		dist := n.Dot(vector.Between(p, e[0]))
		if i == 0 || dist < best {
			best, bestNormal = dist, n
		}
	}
	return best, bestNormal
}

func triangleCircle(t Triangle, c Circle) (CollisionInfo, bool) {
	nearest, inside := t.NearestPoint(c.C)
	dist := nearest.DistanceTo(c.C)
	if !inside && dist > 0 {
		if dist >= c.Radius {
			return CollisionInfo{}, false
		}
		return collided(c.Radius-dist, vector.Between(nearest, c.C).Unit())
	}

	// The center is inside or on the boundary: leave through the nearest edge.
	edgeDist, normal := t.nearestEdge(c.C)
	return collided(c.Radius+max(edgeDist, 0), normal)
}

func triangleRect(t Triangle, r Rect) (CollisionInfo, bool) {
	return polygonCollision(t.Vertices(), r.Vertices())
}

func triangleTriangle(t1, t2 Triangle) (CollisionInfo, bool) {
	return polygonCollision(t1.Vertices(), t2.Vertices())
}
