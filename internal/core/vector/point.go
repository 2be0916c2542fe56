package vector

import "math"

// Point is an immutable 2D position.
type Point struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

var Origin = Point{}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector returns the position vector of p.
func (p Point) Vector() Vector {
	return Vector(p)
}

// Rotate turns p counter-clockwise about pivot.
func (p Point) Rotate(pivot Point, degrees float64) Point {
	return pivot.Translate(Between(pivot, p).Rotate(degrees))
}
