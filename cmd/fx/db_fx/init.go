package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"premiumcalc/internal/config"
	"premiumcalc/internal/infra"
	"premiumcalc/internal/models/db_models"
)

var Module = fx.Provide(
	provideDB)

// provideDB returns nil when the postgres record sink is not enabled or the
// database is unreachable at startup.
func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *gorm.DB {
	if !cfg.Record.Enabled(config.SinkPostgres) {
		return nil
	}
	db, err := Open(cfg.Postgres.URL)
	if err != nil {
		log.Warn("postgres unavailable", zap.Error(err))
		return nil
	}
	log.Info("connected to postgres")
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

// Open connects and migrates the premium_records table.
func Open(dsn string) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&db_models.PremiumRecord{}); err != nil {
		infra.ClosePostgresql(db)
		return nil, err
	}
	return db, nil
}
