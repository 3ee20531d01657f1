package injector

import (
	"github.com/zeusync/horde/internal/config"
	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/world"
	"github.com/zeusync/horde/internal/server"
)

// App is everything cmd/horde needs to run a simulation.
type App struct {
	Logger    *log.Logger
	World     *world.World
	Spectator *server.Spectator
}

// ProvideLogger builds the process logger at the configured level.
func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}
