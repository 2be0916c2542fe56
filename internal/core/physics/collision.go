package physics

import (
	"github.com/zeusync/impulse/internal/core/geometry"
)

// Collision is an overlap between two bodies. Info.PenetrationNormal points
// the way Body2 has to move to separate from Body1.
type Collision struct {
	Body1 *RigidBody
	Body2 *RigidBody
	Info  geometry.CollisionInfo
}

// DetectCollision runs the exact overlap test on the current hitboxes.
func DetectCollision(b1, b2 *RigidBody) (Collision, bool) {
	info, ok := geometry.CollisionBetween(b1.HitBox(), b2.HitBox())
	if !ok {
		return Collision{}, false
	}
	return Collision{Body1: b1, Body2: b2, Info: info}, true
}

func (c Collision) InvolvesBody(b *RigidBody) bool {
	return c.Body1.ID() == b.ID() || c.Body2.ID() == b.ID()
}

// Other returns the body on the opposite side of the collision from b.
func (c Collision) Other(b *RigidBody) *RigidBody {
	if c.Body1.ID() == b.ID() {
		return c.Body2
	}
	return c.Body1
}

// isSensorContact holds for overlaps with a passthrough body that something
// movable took part in. They get no response but are still reported.
func (c Collision) isSensorContact() bool {
	passthrough := c.Body1.Material().Passthrough || c.Body2.Material().Passthrough
	return passthrough && (c.Body1.IsMovable() || c.Body2.IsMovable())
}
