//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/scenario"
)

func InitializeSimulator(sc *scenario.Scenario, logCfg log.Config) (*Simulator, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
