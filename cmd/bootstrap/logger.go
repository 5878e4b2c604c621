package bootstrap

import (
	"log/slog"
	"path/filepath"

	"parkingpro/internal/handler/middleware"
	"parkingpro/internal/infra/linelog"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/config"

	"go.uber.org/fx"
)

const errorLogFile = "errors.log"

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

// NewLogger writes to stdout and mirrors error records into <APP_LOG_DIR>/errors.log.
func NewLogger(cfg config.Config, clk clock.Clock) *middleware.Logger {
	errorLog := linelog.NewWriter(filepath.Join(cfg.App.LogDir, errorLogFile), clk)
	return middleware.NewLogger(cfg.Log, linelog.NewErrorHandler(errorLog))
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
