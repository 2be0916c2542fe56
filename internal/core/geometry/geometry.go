package geometry

import (
	"math"

	"github.com/zeusync/impulse/internal/core/vector"
)

// Geometry is a hitbox shape. The set of shapes is closed: Circle, Rect and
// Triangle are the only implementations.
type Geometry interface {
	Center() vector.Point
	Width() float64
	Height() float64
	Bounds() BoundingBox
	WithCenter(center vector.Point) Geometry
	Scaled(factor float64) Geometry

	geometry()
}

var (
	_ Geometry = Circle{}
	_ Geometry = Rect{}
	_ Geometry = Triangle{}
)

// BoundingBox is an axis-aligned box enclosing a shape.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY float64
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

type Circle struct {
	C      vector.Point
	Radius float64
}

func NewCircle(center vector.Point, radius float64) Circle {
	return Circle{C: center, Radius: radius}
}

func (c Circle) Center() vector.Point { return c.C }
func (c Circle) Width() float64       { return 2 * c.Radius }
func (c Circle) Height() float64      { return 2 * c.Radius }

func (c Circle) Bounds() BoundingBox {
	return BoundingBox{
		MinX: c.C.X - c.Radius, MaxX: c.C.X + c.Radius,
		MinY: c.C.Y - c.Radius, MaxY: c.C.Y + c.Radius,
	}
}

func (c Circle) WithCenter(center vector.Point) Geometry {
	return Circle{C: center, Radius: c.Radius}
}

func (c Circle) Scaled(factor float64) Geometry {
	return Circle{C: c.C, Radius: c.Radius * factor}
}

func (Circle) geometry() {}

// Rect is an axis-aligned rectangle.
type Rect struct {
	C    vector.Point
	W, H float64
}

func NewRect(center vector.Point, width, height float64) Rect {
	return Rect{C: center, W: width, H: height}
}

func (r Rect) Center() vector.Point { return r.C }
func (r Rect) Width() float64       { return r.W }
func (r Rect) Height() float64      { return r.H }

func (r Rect) Bounds() BoundingBox {
	return BoundingBox{
		MinX: r.C.X - r.W/2, MaxX: r.C.X + r.W/2,
		MinY: r.C.Y - r.H/2, MaxY: r.C.Y + r.H/2,
	}
}

func (r Rect) WithCenter(center vector.Point) Geometry {
	return Rect{C: center, W: r.W, H: r.H}
}

func (r Rect) Scaled(factor float64) Geometry {
	return Rect{C: r.C, W: r.W * factor, H: r.H * factor}
}

// Vertices lists the corners starting at the bottom-left, clockwise.
func (r Rect) Vertices() []vector.Point {
	b := r.Bounds()
	return []vector.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MinY},
	}
}

func (Rect) geometry() {}

type Triangle struct {
	A, B, C vector.Point
}

func NewTriangle(a, b, c vector.Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// EquilateralTriangle builds a triangle with one vertex pointing down (towards
// negative Y) and the opposite edge horizontal.
func EquilateralTriangle(center vector.Point, side float64) Triangle {
	k := math.Sqrt(3) * side
	return Triangle{
		A: vector.NewPoint(center.X, center.Y-k/3),
		B: vector.NewPoint(center.X-side/2, center.Y+k/6),
		C: vector.NewPoint(center.X+side/2, center.Y+k/6),
	}
}

// Center is the centroid.
func (t Triangle) Center() vector.Point {
	return vector.NewPoint((t.A.X+t.B.X+t.C.X)/3, (t.A.Y+t.B.Y+t.C.Y)/3)
}

func (t Triangle) Width() float64  { return t.Bounds().Width() }
func (t Triangle) Height() float64 { return t.Bounds().Height() }

func (t Triangle) Bounds() BoundingBox {
	return BoundingBox{
		MinX: min(t.A.X, t.B.X, t.C.X), MaxX: max(t.A.X, t.B.X, t.C.X),
		MinY: min(t.A.Y, t.B.Y, t.C.Y), MaxY: max(t.A.Y, t.B.Y, t.C.Y),
	}
}

func (t Triangle) WithCenter(center vector.Point) Geometry {
	d := vector.Between(t.Center(), center)
	return Triangle{A: t.A.Translate(d), B: t.B.Translate(d), C: t.C.Translate(d)}
}

func (t Triangle) Scaled(factor float64) Geometry {
	c := t.Center()
	scale := func(p vector.Point) vector.Point {
		return c.Translate(vector.Between(c, p).Scale(factor))
	}
	return Triangle{A: scale(t.A), B: scale(t.B), C: scale(t.C)}
}

// Rotated turns the triangle counter-clockwise about its centroid.
func (t Triangle) Rotated(degrees float64) Triangle {
	c := t.Center()
	return Triangle{A: t.A.Rotate(c, degrees), B: t.B.Rotate(c, degrees), C: t.C.Rotate(c, degrees)}
}

func (t Triangle) Vertices() []vector.Point {
	return []vector.Point{t.A, t.B, t.C}
}

func (Triangle) geometry() {}
