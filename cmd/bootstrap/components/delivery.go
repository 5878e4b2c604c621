package components

import (
	"log/slog"
	"path/filepath"

	"parkingpro/internal/infra/linelog"
	"parkingpro/internal/infra/qrcode"
	"parkingpro/internal/infra/sms"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/usecase/shared"

	"go.uber.org/fx"
)

const smsLogFile = "sms.log"

var DeliveryModule = fx.Module("delivery",
	fx.Provide(
		fx.Annotate(
			qrcode.NewGeneratorFromConfig,
			fx.As(new(shared.ArtifactRenderer)),
		),
		fx.Annotate(
			NewSMSDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

// NewSMSDispatcher falls back to <APP_LOG_DIR>/sms.log when no provider credentials are set.
func NewSMSDispatcher(cfg config.Config, clk clock.Clock, logger *slog.Logger) *sms.Dispatcher {
	sink := linelog.NewWriter(filepath.Join(cfg.App.LogDir, smsLogFile), clk)
	return sms.NewDispatcherFromConfig(cfg, sink, logger)
}
