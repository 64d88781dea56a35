package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"premiumcalc/cmd/fx/config_fx"
	"premiumcalc/cmd/fx/controllers_fx"
	"premiumcalc/cmd/fx/db_fx"
	"premiumcalc/cmd/fx/logger_fx"
	"premiumcalc/cmd/fx/model_fx"
	"premiumcalc/cmd/fx/premium_fx"
	"premiumcalc/cmd/fx/record_fx"
	"premiumcalc/internal/api/controllers"
	"premiumcalc/internal/api/router"
	"premiumcalc/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		model_fx.Module,
		record_fx.Module,
		premium_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.App.Port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	premiumController *controllers.PremiumController,
	recordsController *controllers.RecordsController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return router.New(log, router.Controllers{
		Premium: premiumController,
		Records: recordsController,
		Health:  healthController,
	})
}
