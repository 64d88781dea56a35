package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"premiumcalc/internal/config"
	"premiumcalc/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Invoke(func(log *zap.Logger) {
		zap.ReplaceGlobals(log)
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log
}
