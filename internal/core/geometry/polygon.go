package geometry

import (
	"cmp"
	"math"
	"slices"

	"github.com/zeusync/impulse/internal/core/vector"
)

const axisTolerance = 1e-9

// polygonCollision is a separating axis test for convex polygons given by
// their vertices in order. The normal points towards where p2 has to move.
func polygonCollision(p1, p2 []vector.Point) (CollisionInfo, bool) {
	var (
		found   bool
		bestMTV float64
		bestAx  vector.Vector
	)
	for _, axis := range separatingAxes(p1, p2) {
		min1, max1 := project(p1, axis)
		min2, max2 := project(p2, axis)
		mtv, ok := mtvAlong(min1, max1, min2, max2)
		if !ok {
			return CollisionInfo{}, false
		}
		if !found || math.Abs(mtv) < math.Abs(bestMTV) {
			found, bestMTV, bestAx = true, mtv, axis
		}
	}
	if !found {
		return CollisionInfo{}, false
	}
	if bestMTV < 0 {
		return collided(-bestMTV, bestAx.Neg())
	}
	return collided(bestMTV, bestAx)
}

// separatingAxes collects the unit edge normals of both polygons. Every axis
// is folded onto the half-plane x > 0 (or x == 0, y > 0), parallel axes are
// merged and the result is sorted, so the set does not depend on argument
// order.
func separatingAxes(p1, p2 []vector.Point) []vector.Vector {
	axes := make([]vector.Vector, 0, len(p1)+len(p2))
	for _, poly := range [][]vector.Point{p1, p2} {
		for i, p := range poly {
			edge := vector.Between(p, poly[(i+1)%len(poly)])
			if edge.IsZero() {
				continue
			}
			n := vector.New(-edge.Y, edge.X).Unit()
			if n.X < 0 || (n.X == 0 && n.Y < 0) {
				n = n.Neg()
			}
			axes = append(axes, n)
		}
	}

	slices.SortFunc(axes, func(a, b vector.Vector) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return slices.CompactFunc(axes, func(a, b vector.Vector) bool {
		return math.Abs(a.X-b.X) < axisTolerance && math.Abs(a.Y-b.Y) < axisTolerance
	})
}

func project(poly []vector.Point, axis vector.Vector) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := p.Vector().Dot(axis)
		lo, hi = min(lo, d), max(hi, d)
	}
	return lo, hi
}

// mtvAlong returns the signed distance the second interval has to travel
// along the axis to stop overlapping the first. When one interval encloses
// the other the shorter way out is taken.
func mtvAlong(min1, max1, min2, max2 float64) (float64, bool) {
	overlap := min(max1, max2) - max(min1, min2)
	if overlap <= 0 {
		return 0, false
	}

	if max2 >= max1 {
		if min1 <= min2 {
			return overlap, true
		}
		left, right := min1-min2, max2-max1
		if left < right {
			return overlap + left, true
		}
		return -(overlap + right), true
	}

	if min2 <= min1 {
		return -overlap, true
	}
	left, right := min2-min1, max1-max2
	if left < right {
		return -(overlap + left), true
	}
	return overlap + right, true
}
