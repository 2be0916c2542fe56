package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/impulse/internal/core/events/bus"
	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/core/physics"
	"github.com/zeusync/impulse/internal/scenario"
	"github.com/zeusync/impulse/internal/server"
)

// Simulator is a scenario wired to its logger, event bus and streamer.
type Simulator struct {
	Logger     log.Log
	Bus        bus.EventBus
	Simulation *scenario.Simulation
	Streamer   *server.Streamer
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	bus.New,
	ProvideWorld,
	scenario.NewSimulation,
	ProvideStreamer,
	wire.Struct(new(Simulator), "*"),
)

// ProvideLogger builds the zap logger and flushes it on cleanup.
func ProvideLogger(cfg log.Config) (log.Log, func(), error) {
	logger, err := log.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideWorld(sc *scenario.Scenario, logger log.Log, b bus.EventBus) (*physics.World, error) {
	return physics.NewWorldFromConfig(sc.World,
		physics.WithLogger(logger.Named("physics")),
		physics.WithEventBus(b),
		physics.WithName(sc.Name),
	)
}

// ProvideStreamer attaches a streamer to the bus so it sees every tick.
func ProvideStreamer(logger log.Log, b bus.EventBus) (*server.Streamer, error) {
	s := server.NewStreamer(logger)
	if err := s.Attach(b); err != nil {
		return nil, err
	}
	return s, nil
}
