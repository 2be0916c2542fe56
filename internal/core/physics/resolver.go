package physics

import "github.com/zeusync/impulse/internal/core/dynamics"

// Resolver turns a detected collision into a physical response. Resolve
// reports whether the motion of either body changed.
type Resolver interface {
	Resolve(c Collision) bool
}

var _ Resolver = ImpulseResolver{}

// ImpulseResolver applies an equal and opposite impulse along the collision
// normal, scaled by the combined restitution. It does not correct positions.
type ImpulseResolver struct{}

func (ImpulseResolver) Resolve(c Collision) bool {
	b1, b2 := c.Body1, c.Body2
	if b1.Material().Passthrough || b2.Material().Passthrough {
		return false
	}

	normal := c.Info.PenetrationNormal
	approach := b2.Velocity().Sub(b1.Velocity()).Dot(normal)
	if approach > 0 {
		return false
	}

	invMass := b1.InverseMass() + b2.InverseMass()
	if invMass == 0 {
		return false
	}

	e := dynamics.CombinedRestitution(b1.Material(), b2.Material())
	j := -(1 + e) * approach / invMass
	if j == 0 {
		return false
	}

	b1.ApplyImpulse(normal.Scale(-j))
	b2.ApplyImpulse(normal.Scale(j))
	return true
}
