package scenario

import (
	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/physics"
	"github.com/zeusync/impulse/internal/core/vector"
)

const (
	DefaultBallMass          = 10.0
	DefaultBallSpeed         = 450.0
	DefaultBucketPeriod      = 6.0
	DefaultExplosionDuration = 0.3

	// ExplosionRestitution is above 1 so that touching an explosion pushes
	// bodies away harder than they arrived.
	ExplosionRestitution = 1.7
)

// DefaultBallMaterial loses a little energy on every bounce.
var DefaultBallMaterial = dynamics.Solid(0.99)

// Body tags set by the factories.
const (
	TagBall         = "ball"
	TagPeg          = "peg"
	TagBlock        = "block"
	TagBucketEdge   = "bucket.edge"
	TagBucketInside = "bucket.inside"
	TagExplosion    = "explosion"
)

// Bucket proportions relative to its middle width.
const (
	bucketTopRatio    = 8.0 / 7.0
	bucketEdgeRatio   = 1.0 / 12.0
	bucketHeightRatio = 9.0 / 7.0
	bucketInsideRatio = 0.7
)

// Launch is the velocity of a ball fired at angle degrees with the given speed.
func Launch(angle, speed float64) vector.Vector {
	return vector.FromAngle(angle, speed)
}

// Ball is the player's projectile.
type Ball struct {
	Center   vector.Point
	Radius   float64
	Velocity vector.Vector
	Mass     float64
	Material dynamics.Material
	// MaxSpeed caps each velocity component. Zero means no cap.
	MaxSpeed float64
}

func NewBall(center vector.Point, radius float64, velocity vector.Vector) Ball {
	return Ball{
		Center:   center,
		Radius:   radius,
		Velocity: velocity,
		Mass:     DefaultBallMass,
		Material: DefaultBallMaterial,
	}
}

func (b Ball) Body() *physics.RigidBody {
	opts := []physics.BodyOption{physics.WithMaterial(b.Material), physics.WithTag(TagBall)}
	if b.MaxSpeed > 0 {
		opts = append(opts, physics.WithConstraints(dynamics.VelocityCap(b.MaxSpeed)))
	}
	return physics.NewShapedBody(
		dynamics.NewDynamic(b.Center, b.Velocity, b.Mass),
		geometry.NewCircle(b.Center, b.Radius),
		opts...,
	)
}

// Peg is a round static obstacle.
type Peg struct {
	Center vector.Point
	Radius float64
}

func (p Peg) Body() *physics.RigidBody {
	return physics.NewShapedBody(
		dynamics.NewStatic(p.Center),
		geometry.NewCircle(p.Center, p.Radius),
		physics.WithTag(TagPeg),
	)
}

// TrianglePeg is an equilateral static obstacle, rotated about its centroid.
type TrianglePeg struct {
	Center   vector.Point
	Side     float64
	Rotation float64
}

func (p TrianglePeg) Body() *physics.RigidBody {
	return physics.NewShapedBody(
		dynamics.NewStatic(p.Center),
		geometry.EquilateralTriangle(p.Center, p.Side).Rotated(p.Rotation),
		physics.WithTag(TagPeg),
	)
}

// Block is an axis aligned static wall piece.
type Block struct {
	Center        vector.Point
	Width, Height float64
}

func (b Block) Body() *physics.RigidBody {
	return physics.NewShapedBody(
		dynamics.NewStatic(b.Center),
		geometry.NewRect(b.Center, b.Width, b.Height),
		physics.WithTag(TagBlock),
	)
}

// Bucket slides left and right on a sinusoidal path. Its two walls are solid
// and the inside is a passthrough sensor.
type Bucket struct {
	Center   vector.Point
	MidWidth float64
	// Range is the full horizontal distance swept in one period.
	Range  float64
	Period float64
}

type BucketBodies struct {
	Left, Right, Inside *physics.RigidBody
}

func (b BucketBodies) All() []*physics.RigidBody {
	return []*physics.RigidBody{b.Left, b.Right, b.Inside}
}

func NewBucket(center vector.Point, midWidth, horizontalRange float64) Bucket {
	return Bucket{Center: center, MidWidth: midWidth, Range: horizontalRange, Period: DefaultBucketPeriod}
}

func (b Bucket) TopWidth() float64  { return b.MidWidth * bucketTopRatio }
func (b Bucket) EdgeWidth() float64 { return b.MidWidth * bucketEdgeRatio }
func (b Bucket) Height() float64    { return b.MidWidth * bucketHeightRatio }

func (b Bucket) Bodies() BucketBodies {
	edgeOffset := b.TopWidth()/2 - b.EdgeWidth()/2
	return BucketBodies{
		Left:  b.edge(-edgeOffset),
		Right: b.edge(edgeOffset),
		Inside: physics.NewShapedBody(
			b.motion(b.Center),
			geometry.NewRect(b.Center, b.TopWidth()-2*b.EdgeWidth(), b.Height()*bucketInsideRatio),
			physics.WithMaterial(dynamics.PassthroughMaterial()),
			physics.WithTag(TagBucketInside),
		),
	}
}

func (b Bucket) edge(offset float64) *physics.RigidBody {
	center := b.Center.Translate(vector.New(offset, 0))
	return physics.NewShapedBody(
		b.motion(center),
		geometry.NewRect(center, b.EdgeWidth(), b.Height()),
		physics.WithTag(TagBucketEdge),
	)
}

func (b Bucket) motion(center vector.Point) dynamics.Controlled {
	return dynamics.NewControlled(dynamics.NewSinusoidalController(center, b.Period, b.Range, 0))
}

// Explosion is a static circle that grows linearly from InitialRadius to
// MaxRadius over Duration seconds.
type Explosion struct {
	Center        vector.Point
	InitialRadius float64
	MaxRadius     float64
	Duration      float64
}

func NewExplosion(center vector.Point, initialRadius, maxRadius float64) Explosion {
	return Explosion{
		Center:        center,
		InitialRadius: initialRadius,
		MaxRadius:     maxRadius,
		Duration:      DefaultExplosionDuration,
	}
}

// RadiusAt is the explosion radius after elapsed seconds.
func (e Explosion) RadiusAt(elapsed float64) float64 {
	if e.Duration <= 0 {
		return e.MaxRadius
	}
	return min(e.MaxRadius, elapsed/e.Duration*(e.MaxRadius-e.InitialRadius)+e.InitialRadius)
}

// Expired reports whether the explosion has run its course.
func (e Explosion) Expired(elapsed float64) bool {
	return elapsed >= e.Duration
}

func (e Explosion) Body() *physics.RigidBody {
	return physics.NewRigidBody(
		dynamics.NewStatic(e.Center),
		func(center vector.Point, elapsed float64) geometry.Geometry {
			return geometry.NewCircle(center, e.RadiusAt(elapsed))
		},
		physics.WithMaterial(dynamics.Solid(ExplosionRestitution)),
		physics.WithTag(TagExplosion),
	)
}
