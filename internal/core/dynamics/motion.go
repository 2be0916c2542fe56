package dynamics

import "github.com/zeusync/impulse/internal/core/vector"

// Motion is the kinematic state of a body. Static, Controlled and Dynamic are
// the only implementations; a body keeps its kind for life. Every transition
// returns a new value.
type Motion interface {
	Position() vector.Point
	Velocity() vector.Vector
	// InverseMass is zero for bodies that cannot be pushed.
	InverseMass() float64

	// Step advances the motion by dt seconds and reports whether anything
	// changed.
	Step(dt float64) (Motion, bool)
	WithAppliedForce(force vector.Vector) Motion
	WithAppliedGravity(gravity vector.Vector) Motion
	WithAppliedImpulse(impulse vector.Vector) Motion
	// WithPosition teleports the body, keeping its velocity. The second
	// result is false when the motion cannot be teleported.
	WithPosition(position vector.Point) (Motion, bool)
	Constrained(c MotionConstraints) Motion

	motion()
}

var (
	_ Motion = Static{}
	_ Motion = Controlled{}
	_ Motion = Dynamic{}
)

// Static bodies have infinite mass. They may drift at a constant velocity.
type Static struct {
	Pos vector.Point
	Vel vector.Vector
}

func NewStatic(position vector.Point) Static {
	return Static{Pos: position}
}

func NewDrifting(position vector.Point, velocity vector.Vector) Static {
	return Static{Pos: position, Vel: velocity}
}

func (s Static) Position() vector.Point  { return s.Pos }
func (s Static) Velocity() vector.Vector { return s.Vel }
func (s Static) InverseMass() float64    { return 0 }

func (s Static) Step(dt float64) (Motion, bool) {
	next := Static{Pos: s.Pos.Translate(s.Vel.Scale(dt)), Vel: s.Vel}
	return next, next.Pos != s.Pos
}

func (s Static) WithAppliedForce(vector.Vector) Motion   { return s }
func (s Static) WithAppliedGravity(vector.Vector) Motion { return s }
func (s Static) WithAppliedImpulse(vector.Vector) Motion { return s }

func (s Static) WithPosition(position vector.Point) (Motion, bool) {
	return Static{Pos: position, Vel: s.Vel}, true
}

// Constrained clamps the position only; a static velocity never changes.
func (s Static) Constrained(c MotionConstraints) Motion {
	return Static{Pos: c.ClampPosition(s.Pos), Vel: s.Vel}
}

func (Static) motion() {}

// Controlled bodies follow a scripted path and have infinite mass.
type Controlled struct {
	Controller MotionController
}

func NewControlled(controller MotionController) Controlled {
	return Controlled{Controller: controller}
}

func (c Controlled) Position() vector.Point  { return c.Controller.Position() }
func (c Controlled) Velocity() vector.Vector { return c.Controller.Velocity() }
func (c Controlled) InverseMass() float64    { return 0 }

// Step always reports a change since the controller owns the path.
func (c Controlled) Step(dt float64) (Motion, bool) {
	return Controlled{Controller: c.Controller.Update(dt)}, true
}

func (c Controlled) WithAppliedForce(vector.Vector) Motion   { return c }
func (c Controlled) WithAppliedGravity(vector.Vector) Motion { return c }
func (c Controlled) WithAppliedImpulse(vector.Vector) Motion { return c }

func (c Controlled) WithPosition(vector.Point) (Motion, bool) {
	return c, false
}

func (c Controlled) Constrained(MotionConstraints) Motion { return c }

func (Controlled) motion() {}

// Dynamic bodies integrate forces with explicit Euler steps. Mass must be
// positive.
type Dynamic struct {
	Pos   vector.Point
	Vel   vector.Vector
	Force vector.Vector
	Mass  float64
}

func NewDynamic(position vector.Point, velocity vector.Vector, mass float64) Dynamic {
	return Dynamic{Pos: position, Vel: velocity, Mass: mass}
}

func (d Dynamic) Position() vector.Point  { return d.Pos }
func (d Dynamic) Velocity() vector.Vector { return d.Vel }
func (d Dynamic) InverseMass() float64    { return 1 / d.Mass }

// Step moves with the velocity from the start of the step, then accelerates.
// The accumulated force is consumed.
func (d Dynamic) Step(dt float64) (Motion, bool) {
	next := Dynamic{
		Pos:  d.Pos.Translate(d.Vel.Scale(dt)),
		Vel:  d.Vel.Add(d.Force.Div(d.Mass).Scale(dt)),
		Mass: d.Mass,
	}
	return next, next.Pos != d.Pos || next.Vel != d.Vel
}

func (d Dynamic) WithAppliedForce(force vector.Vector) Motion {
	d.Force = d.Force.Add(force)
	return d
}

// WithAppliedGravity adds the weight of the body as a force.
func (d Dynamic) WithAppliedGravity(gravity vector.Vector) Motion {
	return d.WithAppliedForce(gravity.Scale(d.Mass))
}

func (d Dynamic) WithAppliedImpulse(impulse vector.Vector) Motion {
	d.Vel = d.Vel.Add(impulse.Div(d.Mass))
	return d
}

func (d Dynamic) WithPosition(position vector.Point) (Motion, bool) {
	d.Pos = position
	return d, true
}

func (d Dynamic) Constrained(c MotionConstraints) Motion {
	d.Pos = c.ClampPosition(d.Pos)
	d.Vel = c.ClampVelocity(d.Vel)
	return d
}

func (Dynamic) motion() {}
