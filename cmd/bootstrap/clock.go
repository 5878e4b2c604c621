package bootstrap

import (
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClock(cfg.App.Location())
}
