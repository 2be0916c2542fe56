package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/vector"
)

func moving(x, vx, mass float64, opts ...BodyOption) *RigidBody {
	return NewShapedBody(
		dynamics.NewDynamic(vector.NewPoint(x, 0), vector.New(vx, 0), mass),
		geometry.NewCircle(vector.Origin, 1),
		opts...,
	)
}

func collide(t *testing.T, b1, b2 *RigidBody) Collision {
	t.Helper()
	c, ok := DetectCollision(b1, b2)
	require.True(t, ok)
	return c
}

func TestImpulseResolver_ElasticSwap(t *testing.T) {
	a, b := moving(0, 1, 1), moving(1.5, -1, 1)
	require.True(t, ImpulseResolver{}.Resolve(collide(t, a, b)))
	assert.InDelta(t, -1, a.Velocity().X, 1e-12)
	assert.InDelta(t, 1, b.Velocity().X, 1e-12)
}

func TestImpulseResolver_ConservesMomentum(t *testing.T) {
	a, b := moving(0, 3, 2, WithMaterial(dynamics.Solid(0.5))), moving(1.5, -1, 1)
	before := a.Velocity().Scale(2).Add(b.Velocity())

	require.True(t, ImpulseResolver{}.Resolve(collide(t, a, b)))
	after := a.Velocity().Scale(2).Add(b.Velocity())
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	// Restitution 0.5 halves the approach speed.
	assert.InDelta(t, 2, b.Velocity().X-a.Velocity().X, 1e-9)
}

func TestImpulseResolver_Separating(t *testing.T) {
	a, b := moving(0, -1, 1), moving(1.5, 1, 1)
	assert.False(t, ImpulseResolver{}.Resolve(collide(t, a, b)))
	assert.Equal(t, vector.New(-1, 0), a.Velocity())
	assert.Equal(t, vector.New(1, 0), b.Velocity())
}

func TestImpulseResolver_Passthrough(t *testing.T) {
	a, b := moving(0, 1, 1, WithMaterial(dynamics.PassthroughMaterial())), moving(1.5, -1, 1)
	assert.False(t, ImpulseResolver{}.Resolve(collide(t, a, b)))
	assert.Equal(t, vector.New(1, 0), a.Velocity())
}

func TestImpulseResolver_BothImmovable(t *testing.T) {
	a, b := block(0, 0, 2, 2), block(1, 0, 2, 2)
	assert.False(t, ImpulseResolver{}.Resolve(collide(t, a, b)))
}

func TestImpulseResolver_AgainstWall(t *testing.T) {
	b := ball(0, 0.5, 1, 10)
	b.ApplyImpulse(vector.New(0, -100))
	floor := block(0, -5, 100, 10)

	require.True(t, ImpulseResolver{}.Resolve(collide(t, b, floor)))
	assert.InDelta(t, 10, b.Velocity().Y, 1e-9)
	assert.Equal(t, vector.Zero, floor.Velocity())
}

func TestImpulseResolver_RestingContact(t *testing.T) {
	b := ball(0, 0.5, 1, 10)
	floor := block(0, -5, 100, 10)
	assert.False(t, ImpulseResolver{}.Resolve(collide(t, b, floor)), "no relative motion, nothing to change")
}
