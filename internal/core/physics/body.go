package physics

import (
	"github.com/google/uuid"

	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/vector"
)

// HitBoxFunc derives a body's shape from its current center and the time it
// has been alive. Most bodies ignore elapsed; growing explosions do not.
type HitBoxFunc func(center vector.Point, elapsed float64) geometry.Geometry

// FixedShape keeps the given shape and only moves it with the body.
func FixedShape(shape geometry.Geometry) HitBoxFunc {
	return func(center vector.Point, _ float64) geometry.Geometry {
		return shape.WithCenter(center)
	}
}

// RigidBody is a simulated object. Identity is the ID; two bodies with equal
// state are still different bodies.
type RigidBody struct {
	id          uuid.UUID
	tag         string
	motion      dynamics.Motion
	hitBox      geometry.Geometry
	hitBoxAt    HitBoxFunc
	material    dynamics.Material
	constraints dynamics.MotionConstraints
	elapsed     float64
}

type BodyOption func(*RigidBody)

// WithMaterial overrides the default perfectly elastic solid material.
func WithMaterial(m dynamics.Material) BodyOption {
	return func(b *RigidBody) { b.material = m }
}

func WithConstraints(c dynamics.MotionConstraints) BodyOption {
	return func(b *RigidBody) { b.constraints = c }
}

// WithTag labels the body for logs and snapshots.
func WithTag(tag string) BodyOption {
	return func(b *RigidBody) { b.tag = tag }
}

func WithID(id uuid.UUID) BodyOption {
	return func(b *RigidBody) { b.id = id }
}

func NewRigidBody(motion dynamics.Motion, hitBoxAt HitBoxFunc, opts ...BodyOption) *RigidBody {
	b := &RigidBody{
		id:       uuid.New(),
		motion:   motion,
		hitBoxAt: hitBoxAt,
		material: dynamics.PerfectlyElastic,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.hitBox = hitBoxAt(motion.Position(), 0)
	return b
}

// NewShapedBody is a body whose hitbox is shape centered on the body.
func NewShapedBody(motion dynamics.Motion, shape geometry.Geometry, opts ...BodyOption) *RigidBody {
	return NewRigidBody(motion, FixedShape(shape), opts...)
}

func (b *RigidBody) ID() uuid.UUID                           { return b.id }
func (b *RigidBody) Tag() string                             { return b.tag }
func (b *RigidBody) Motion() dynamics.Motion                 { return b.motion }
func (b *RigidBody) HitBox() geometry.Geometry               { return b.hitBox }
func (b *RigidBody) Material() dynamics.Material             { return b.material }
func (b *RigidBody) Constraints() dynamics.MotionConstraints { return b.constraints }
func (b *RigidBody) Elapsed() float64                        { return b.elapsed }
func (b *RigidBody) Position() vector.Point                  { return b.motion.Position() }
func (b *RigidBody) Velocity() vector.Vector                 { return b.motion.Velocity() }
func (b *RigidBody) InverseMass() float64                    { return b.motion.InverseMass() }
func (b *RigidBody) Bounds() geometry.BoundingBox            { return b.hitBox.Bounds() }

// IsMovable reports whether impulses can change the body's velocity.
func (b *RigidBody) IsMovable() bool {
	return b.motion.InverseMass() > 0
}

// Step advances the body by dt seconds and reports whether its motion or its
// hitbox changed.
func (b *RigidBody) Step(dt float64) bool {
	b.elapsed += dt

	prevPos, prevVel := b.motion.Position(), b.motion.Velocity()
	next, moved := b.motion.Step(dt)
	if !b.constraints.IsZero() {
		next = next.Constrained(b.constraints)
		if _, controlled := next.(dynamics.Controlled); !controlled {
			moved = next.Position() != prevPos || next.Velocity() != prevVel
		}
	}
	b.motion = next

	hitBox := b.hitBoxAt(next.Position(), b.elapsed)
	reshaped := hitBox != b.hitBox
	b.hitBox = hitBox

	return moved || reshaped
}

func (b *RigidBody) ApplyForce(force vector.Vector) {
	b.motion = b.motion.WithAppliedForce(force)
}

func (b *RigidBody) ApplyGravity(gravity vector.Vector) {
	b.motion = b.motion.WithAppliedGravity(gravity)
}

func (b *RigidBody) ApplyImpulse(impulse vector.Vector) {
	b.motion = b.motion.WithAppliedImpulse(impulse)
}

// Teleport moves the body without touching its velocity. Controlled bodies
// stay on their path and report false.
func (b *RigidBody) Teleport(position vector.Point) bool {
	next, ok := b.motion.WithPosition(position)
	if !ok {
		return false
	}
	b.motion = next
	b.hitBox = b.hitBoxAt(position, b.elapsed)
	return true
}
