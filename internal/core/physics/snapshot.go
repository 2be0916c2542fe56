package physics

import (
	"github.com/zeusync/impulse/internal/core/dynamics"
	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/vector"
)

// Snapshot is an immutable copy of the world state after a tick, shaped for
// serialization.
type Snapshot struct {
	Tick       uint64            `json:"tick" msgpack:"tick"`
	Bodies     []BodyState       `json:"bodies" msgpack:"bodies"`
	Collisions []CollisionRecord `json:"collisions" msgpack:"collisions"`
}

type BodyState struct {
	ID       string        `json:"id" msgpack:"id"`
	Tag      string        `json:"tag,omitempty" msgpack:"tag,omitempty"`
	Kind     string        `json:"kind" msgpack:"kind"`
	Position vector.Point  `json:"position" msgpack:"position"`
	Velocity vector.Vector `json:"velocity" msgpack:"velocity"`
	Shape    ShapeState    `json:"shape" msgpack:"shape"`
}

type ShapeState struct {
	Kind     string         `json:"kind" msgpack:"kind"`
	Radius   float64        `json:"radius,omitempty" msgpack:"radius,omitempty"`
	Width    float64        `json:"width,omitempty" msgpack:"width,omitempty"`
	Height   float64        `json:"height,omitempty" msgpack:"height,omitempty"`
	Vertices []vector.Point `json:"vertices,omitempty" msgpack:"vertices,omitempty"`
}

type CollisionRecord struct {
	Body1  string        `json:"body1" msgpack:"body1"`
	Body2  string        `json:"body2" msgpack:"body2"`
	Normal vector.Vector `json:"normal" msgpack:"normal"`
	Depth  float64       `json:"depth" msgpack:"depth"`
}

// Snapshot captures every registered body and the collisions reported by the
// last tick. Boundaries are not included.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       w.tick,
		Bodies:     make([]BodyState, 0, len(w.order)),
		Collisions: make([]CollisionRecord, 0, len(w.lastReported)),
	}
	for _, b := range w.order {
		s.Bodies = append(s.Bodies, bodyState(b))
	}
	for _, c := range w.lastReported {
		s.Collisions = append(s.Collisions, collisionRecord(c))
	}
	return s
}

func bodyState(b *RigidBody) BodyState {
	return BodyState{
		ID:       b.ID().String(),
		Tag:      b.Tag(),
		Kind:     motionKind(b.Motion()),
		Position: b.Position(),
		Velocity: b.Velocity(),
		Shape:    shapeState(b.HitBox()),
	}
}

func collisionRecord(c Collision) CollisionRecord {
	return CollisionRecord{
		Body1:  c.Body1.ID().String(),
		Body2:  c.Body2.ID().String(),
		Normal: c.Info.PenetrationNormal,
		Depth:  c.Info.PenetrationDistance,
	}
}

func motionKind(m dynamics.Motion) string {
	switch m.(type) {
	case dynamics.Static:
		return "static"
	case dynamics.Controlled:
		return "controlled"
	case dynamics.Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

func shapeState(g geometry.Geometry) ShapeState {
	switch s := g.(type) {
	case geometry.Circle:
		return ShapeState{Kind: "circle", Radius: s.Radius}
	case geometry.Rect:
		return ShapeState{Kind: "rect", Width: s.W, Height: s.H}
	case geometry.Triangle:
		return ShapeState{Kind: "triangle", Vertices: s.Vertices()}
	default:
		return ShapeState{Kind: "unknown"}
	}
}
