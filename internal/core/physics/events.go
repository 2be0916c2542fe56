package physics

import (
	"github.com/zeusync/impulse/internal/core/events/bus"
	"github.com/zeusync/impulse/internal/core/observability/log"
)

// Event types published on the world's bus.
const (
	EventTick        = "physics.tick"
	EventCollision   = "physics.collision"
	EventBodyAdded   = "physics.body.added"
	EventBodyRemoved = "physics.body.removed"
)

// TickEvent is the payload of EventTick.
type TickEvent struct {
	Tick       uint64
	DT         float64
	Updated    int
	Collisions int
	Snapshot   Snapshot
}

// BodyEvent is the payload of EventBodyAdded and EventBodyRemoved.
type BodyEvent struct {
	Body BodyState
}

func (w *World) publishTick(dt float64, updated int, collisions []Collision) {
	if w.bus == nil {
		return
	}

	events := make([]bus.Event, 0, len(collisions)+1)
	for _, c := range collisions {
		events = append(events, bus.NewEvent(EventCollision, w.name, collisionRecord(c), nil))
	}
	events = append(events, bus.NewEvent(EventTick, w.name, TickEvent{
		Tick:       w.tick,
		DT:         dt,
		Updated:    updated,
		Collisions: len(collisions),
		Snapshot:   w.Snapshot(),
	}, nil))

	if err := w.bus.PublishBatch(events...); err != nil {
		w.logger.Warn("tick event handlers failed", log.Uint64("tick", w.tick), log.Error(err))
	}
}

func (w *World) publishBody(eventType string, b *RigidBody) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Publish(bus.NewEvent(eventType, w.name, BodyEvent{Body: bodyState(b)}, nil)); err != nil {
		w.logger.Warn("body event handlers failed", log.String("event", eventType), log.Error(err))
	}
}
