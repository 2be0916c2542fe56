package scenario

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/core/physics"
)

// Stats summarizes what happened during a run.
type Stats struct {
	Ticks       uint64  `json:"ticks" yaml:"ticks"`
	Elapsed     float64 `json:"elapsed" yaml:"elapsed"`
	Collisions  int     `json:"collisions" yaml:"collisions"`
	PegsHit     int     `json:"pegs_hit" yaml:"pegs_hit"`
	BallsCaught int     `json:"balls_caught" yaml:"balls_caught"`
	BallsLost   int     `json:"balls_lost" yaml:"balls_lost"`
	Bodies      int     `json:"bodies" yaml:"bodies"`
}

type explosionBody struct {
	body      *physics.RigidBody
	explosion Explosion
}

// Simulation drives a World populated from a Scenario and keeps the game
// rules: pegs light up once, the bucket catches balls, balls below the
// out-of-bounds line are lost and explosions disappear once they expire.
type Simulation struct {
	name         string
	world        *physics.World
	logger       log.Log
	outOfBoundsY *float64

	explosions []explosionBody
	hitPegs    map[uuid.UUID]struct{}
	retired    map[uuid.UUID]struct{}
	stats      Stats
}

// Build creates a fresh world from the scenario's config and fills it.
func (s *Scenario) Build(logger log.Log, opts ...physics.Option) (*Simulation, error) {
	opts = append([]physics.Option{physics.WithLogger(logger), physics.WithName(s.Name)}, opts...)
	world, err := physics.NewWorldFromConfig(s.World, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return NewSimulation(world, s, logger)
}

// NewSimulation adds every object of sc to world.
func NewSimulation(world *physics.World, sc *Scenario, logger log.Log) (*Simulation, error) {
	s := &Simulation{
		name:         sc.Name,
		world:        world,
		logger:       logger.Named("scenario").With(log.String("scenario", sc.Name)),
		outOfBoundsY: sc.OutOfBoundsY,
		hitPegs:      make(map[uuid.UUID]struct{}),
		retired:      make(map[uuid.UUID]struct{}),
	}
	for i, obj := range sc.Objects {
		if err := s.Add(obj); err != nil {
			return nil, fmt.Errorf("scenario %s: object %d: %w", sc.Name, i, err)
		}
	}

	s.logger.Debug("scenario loaded", log.Int("objects", len(sc.Objects)), log.Int("bodies", world.Len()))
	return s, nil
}

func (s *Simulation) Name() string          { return s.name }
func (s *Simulation) World() *physics.World { return s.world }

func (s *Simulation) Stats() Stats {
	stats := s.stats
	stats.Bodies = s.world.Len()
	return stats
}

// Add places one more object in the running world.
func (s *Simulation) Add(obj Object) error {
	bodies, err := obj.Bodies()
	if err != nil {
		return err
	}

	for _, b := range bodies {
		switch b.Tag() {
		case TagBall:
			s.world.AddBody(b, s.onBallUpdate, nil)
		case TagPeg:
			s.world.AddBody(b, nil, s.onPegCollision(b))
		case TagBucketInside:
			s.world.AddBody(b, nil, s.onBucketCollision(b))
		case TagExplosion:
			s.world.AddBody(b, nil, nil)
			s.explosions = append(s.explosions, explosionBody{body: b, explosion: obj.explosion()})
		default:
			s.world.AddBody(b, nil, nil)
		}
	}
	return nil
}

// Step advances the world by one tick of dt seconds.
func (s *Simulation) Step(dt float64) {
	s.world.Update(dt)
	s.stats.Ticks = s.world.Tick()
	s.stats.Elapsed += dt
	s.stats.Collisions += len(s.world.Collisions())
	s.expireExplosions()
}

// Run advances the world by totalTime seconds split into steps equal ticks.
func (s *Simulation) Run(totalTime float64, steps int) (Stats, error) {
	if !(totalTime > 0) || steps <= 0 {
		return s.Stats(), fmt.Errorf("%w: %v seconds in %d steps", ErrInvalidRun, totalTime, steps)
	}

	dt := totalTime / float64(steps)
	for i := 0; i < steps; i++ {
		s.Step(dt)
	}
	return s.Stats(), nil
}

func (s *Simulation) onBallUpdate(ball *physics.RigidBody) {
	if s.outOfBoundsY == nil || ball.Position().Y >= *s.outOfBoundsY {
		return
	}
	if s.retire(ball) {
		s.stats.BallsLost++
		s.logger.Debug("ball lost", log.Stringer("body", ball.ID()), log.Float64("y", ball.Position().Y))
	}
}

func (s *Simulation) onPegCollision(peg *physics.RigidBody) physics.CollisionCallback {
	return func(physics.Collision) {
		if _, ok := s.hitPegs[peg.ID()]; ok {
			return
		}
		s.hitPegs[peg.ID()] = struct{}{}
		s.stats.PegsHit++
		s.logger.Debug("peg hit", log.Stringer("body", peg.ID()), log.Uint64("tick", s.world.Tick()))
	}
}

func (s *Simulation) onBucketCollision(inside *physics.RigidBody) physics.CollisionCallback {
	return func(c physics.Collision) {
		ball := c.Other(inside)
		if ball.Tag() != TagBall {
			return
		}
		if s.retire(ball) {
			s.stats.BallsCaught++
			s.logger.Debug("ball caught", log.Stringer("body", ball.ID()), log.Uint64("tick", s.world.Tick()))
		}
	}
}

// retire removes b once; later calls for the same body report false.
func (s *Simulation) retire(b *physics.RigidBody) bool {
	if _, ok := s.retired[b.ID()]; ok {
		return false
	}
	s.retired[b.ID()] = struct{}{}
	s.world.RemoveBody(b)
	return true
}

func (s *Simulation) expireExplosions() {
	live := s.explosions[:0]
	for _, e := range s.explosions {
		if e.explosion.Expired(e.body.Elapsed()) {
			s.retire(e.body)
			continue
		}
		live = append(live, e)
	}
	s.explosions = live
}
