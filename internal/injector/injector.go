//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/horde/internal/config"
	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/world"
	"github.com/zeusync/horde/internal/server"
)

func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		world.New,
		server.NewSpectator,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
