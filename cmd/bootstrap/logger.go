package bootstrap

import (
	"log/slog"

	"deal-marketplace/internal/handler/middleware"
	"deal-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

// NewLogger also installs the handler as the slog default so packages that
// log through slog directly share the same sink.
func NewLogger(cfg config.Config) *middleware.Logger {
	l := middleware.NewLogger(cfg.Log)
	slog.SetDefault(l.GetSlogLogger())
	return l
}
