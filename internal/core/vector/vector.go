package vector

import "math"

// Vector is an immutable 2D displacement.
type Vector struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

var Zero = Vector{}

func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Between returns the vector pointing from a to b.
func Between(a, b Point) Vector {
	return Vector{X: b.X - a.X, Y: b.Y - a.Y}
}

// FromAngle builds a vector of the given magnitude pointing at degrees,
// measured counter-clockwise from the positive X axis.
func FromAngle(degrees, magnitude float64) Vector {
	return Vector{X: CosDegrees(degrees) * magnitude, Y: SinDegrees(degrees) * magnitude}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

func (v Vector) Div(k float64) Vector {
	return Vector{X: v.X / k, Y: v.Y / k}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns v scaled to length 1. The zero vector has no direction, so it
// maps to (1, 0).
func (v Vector) Unit() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{X: 1}
	}
	return Vector{X: v.X / m, Y: v.Y / m}
}

func (v Vector) XComponent() Vector {
	return Vector{X: v.X}
}

func (v Vector) YComponent() Vector {
	return Vector{Y: v.Y}
}

// Rotate turns v counter-clockwise about the origin.
func (v Vector) Rotate(degrees float64) Vector {
	sin, cos := SinDegrees(degrees), CosDegrees(degrees)
	return Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ToPoint interprets v as a position vector.
func (v Vector) ToPoint() Point {
	return Point(v)
}
