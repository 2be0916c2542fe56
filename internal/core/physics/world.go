package physics

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/zeusync/impulse/internal/core/broadphase"
	"github.com/zeusync/impulse/internal/core/events/bus"
	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/core/vector"
)

type (
	// UpdateCallback runs after a tick in which the body moved or reshaped.
	UpdateCallback func(body *RigidBody)
	// CollisionCallback runs for every reported collision the body is part of.
	CollisionCallback func(c Collision)
)

// World owns a set of bodies and advances them in fixed ticks. A World is
// not safe for concurrent use; callbacks run synchronously inside Update.
type World struct {
	name     string
	gravity  vector.Vector
	logger   log.Log
	bus      bus.EventBus
	resolver Resolver
	detector broadphase.Detector[*RigidBody]

	bodies     map[uuid.UUID]*RigidBody
	order      []*RigidBody
	boundaries []*RigidBody
	onUpdate   map[uuid.UUID]UpdateCallback
	onCollide  map[uuid.UUID]CollisionCallback

	tick         uint64
	lastReported []Collision

	dispatching    bool
	pendingRemoval []*RigidBody
}

type Option func(*World)

func WithLogger(logger log.Log) Option {
	return func(w *World) { w.logger = logger }
}

// WithEventBus makes the world publish tick, collision and body events.
func WithEventBus(b bus.EventBus) Option {
	return func(w *World) { w.bus = b }
}

func WithResolver(r Resolver) Option {
	return func(w *World) { w.resolver = r }
}

// WithName sets the source of published events.
func WithName(name string) Option {
	return func(w *World) { w.name = name }
}

// NewWorld creates a world with default gravity.
func NewWorld(cellSize float64, bounds Bounds, opts ...Option) (*World, error) {
	cfg := DefaultConfig()
	cfg.CellSize = cellSize
	cfg.Bounds = bounds
	return NewWorldFromConfig(cfg, opts...)
}

func NewWorldFromConfig(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hash, err := broadphase.NewSpatialHash[*RigidBody](cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	w := &World{
		name:       "world",
		gravity:    cfg.Gravity,
		logger:     log.NewNop(),
		resolver:   ImpulseResolver{},
		detector:   hash,
		bodies:     make(map[uuid.UUID]*RigidBody),
		boundaries: newBoundaries(cfg.Bounds),
		onUpdate:   make(map[uuid.UUID]UpdateCallback),
		onCollide:  make(map[uuid.UUID]CollisionCallback),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.logger.Debug("world created",
		log.String("world", w.name),
		log.Float64("cell_size", cfg.CellSize),
		log.Int("boundaries", len(w.boundaries)),
	)
	return w, nil
}

func (w *World) Name() string             { return w.name }
func (w *World) Gravity() vector.Vector   { return w.gravity }
func (w *World) Tick() uint64             { return w.tick }
func (w *World) Len() int                 { return len(w.order) }
func (w *World) Boundaries() []*RigidBody { return slices.Clone(w.boundaries) }

// Bodies lists registered bodies in insertion order.
func (w *World) Bodies() []*RigidBody {
	return slices.Clone(w.order)
}

// Collisions returns what the last Update reported.
func (w *World) Collisions() []Collision {
	return slices.Clone(w.lastReported)
}

func (w *World) Body(id uuid.UUID) (*RigidBody, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

func (w *World) Contains(b *RigidBody) bool {
	_, ok := w.bodies[b.ID()]
	return ok
}

// IsBoundary reports whether b is one of the walls built from the bounds.
func (w *World) IsBoundary(b *RigidBody) bool {
	return slices.ContainsFunc(w.boundaries, func(o *RigidBody) bool { return o.ID() == b.ID() })
}

// AddBody registers b with optional callbacks. It reports false, and changes
// nothing, when b is already registered.
func (w *World) AddBody(b *RigidBody, onUpdate UpdateCallback, onCollide CollisionCallback) bool {
	if w.Contains(b) {
		return false
	}

	w.bodies[b.ID()] = b
	w.order = append(w.order, b)
	w.detector.Add(b)
	if onUpdate != nil {
		w.onUpdate[b.ID()] = onUpdate
	}
	if onCollide != nil {
		w.onCollide[b.ID()] = onCollide
	}

	w.logger.Debug("body added", log.Stringer("body", b.ID()), log.String("tag", b.Tag()))
	w.publishBody(EventBodyAdded, b)
	return true
}

// RemoveBody unregisters b together with its callbacks. Inside a callback
// the removal takes effect once the current dispatch pass finishes, and b
// gets no further callbacks in that pass.
func (w *World) RemoveBody(b *RigidBody) {
	if !w.Contains(b) {
		return
	}
	if w.dispatching {
		if !w.isPendingRemoval(b) {
			w.pendingRemoval = append(w.pendingRemoval, b)
		}
		return
	}
	w.removeNow(b)
}

// TeleportBody moves a registered static or dynamic body. Controlled bodies
// are left on their path and false is returned.
func (w *World) TeleportBody(b *RigidBody, position vector.Point) bool {
	if !w.Contains(b) {
		return false
	}
	if !b.Teleport(position) {
		return false
	}
	w.detector.Update(b)
	return true
}

// Update advances the world by dt seconds: integrate, broad phase, narrow
// phase, resolve, then dispatch callbacks.
func (w *World) Update(dt float64) {
	w.tick++

	updated := w.integrate(dt)
	for _, b := range updated {
		w.detector.Update(b)
	}

	reported := w.resolve(w.detect())
	w.lastReported = reported

	w.dispatch(updated, reported)
	w.publishTick(dt, len(updated), reported)
}

func (w *World) integrate(dt float64) []*RigidBody {
	var updated []*RigidBody
	for _, b := range w.order {
		b.ApplyGravity(w.gravity)
		if b.Step(dt) {
			updated = append(updated, b)
		}
	}
	return updated
}

type pairKey struct {
	a, b uuid.UUID
}

func newPairKey(x, y uuid.UUID) pairKey {
	if bytes.Compare(x[:], y[:]) > 0 {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// detect runs the exact test on every candidate pair once, then checks every
// body against the boundaries.
func (w *World) detect() []Collision {
	var (
		found []Collision
		seen  = make(map[pairKey]struct{})
	)
	for _, group := range w.detector.CandidateGroups() {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				key := newPairKey(group[i].ID(), group[j].ID())
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if c, ok := DetectCollision(group[i], group[j]); ok {
					found = append(found, c)
				}
			}
		}
	}
	for _, b := range w.order {
		found = append(found, w.BoundaryContacts(b)...)
	}
	return found
}

// BoundaryContacts lists the walls b currently overlaps. The wall is always
// Body2.
func (w *World) BoundaryContacts(b *RigidBody) []Collision {
	var contacts []Collision
	for _, wall := range w.boundaries {
		if c, ok := DetectCollision(b, wall); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// resolve keeps the collisions that changed some motion, plus sensor
// contacts with passthrough bodies.
func (w *World) resolve(detected []Collision) []Collision {
	var reported []Collision
	for _, c := range detected {
		if w.resolver.Resolve(c) || c.isSensorContact() {
			reported = append(reported, c)
		}
	}
	return reported
}

func (w *World) dispatch(updated []*RigidBody, reported []Collision) {
	w.dispatching = true
	defer func() {
		w.dispatching = false
		w.flushRemovals()
	}()

	for _, b := range updated {
		if w.isPendingRemoval(b) {
			continue
		}
		if cb, ok := w.onUpdate[b.ID()]; ok {
			cb(b)
		}
	}

	for _, c := range reported {
		for _, b := range [...]*RigidBody{c.Body1, c.Body2} {
			if w.isPendingRemoval(b) {
				continue
			}
			if cb, ok := w.onCollide[b.ID()]; ok {
				cb(c)
			}
		}
	}
}

func (w *World) isPendingRemoval(b *RigidBody) bool {
	return slices.ContainsFunc(w.pendingRemoval, func(o *RigidBody) bool { return o.ID() == b.ID() })
}

func (w *World) flushRemovals() {
	pending := w.pendingRemoval
	w.pendingRemoval = nil
	for _, b := range pending {
		w.removeNow(b)
	}
}

func (w *World) removeNow(b *RigidBody) {
	id := b.ID()
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	delete(w.onUpdate, id)
	delete(w.onCollide, id)
	w.order = slices.DeleteFunc(w.order, func(o *RigidBody) bool { return o.ID() == id })
	w.detector.Remove(b)

	w.logger.Debug("body removed", log.Stringer("body", id), log.String("tag", b.Tag()))
	w.publishBody(EventBodyRemoved, b)
}
