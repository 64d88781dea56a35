package model_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"premiumcalc/internal/config"
	"premiumcalc/internal/model"
	"premiumcalc/internal/models/request_models"
	"premiumcalc/internal/services"
)

var Module = fx.Provide(
	provideModel,
	func(m *model.Model) services.PremiumModel { return m },
)

func provideModel(cfg *config.Config, log *zap.Logger) (*model.Model, error) {
	return Load(cfg.Model.Path, log)
}

// Load reads the artifact and checks it against the request schema. Any
// error here must abort startup.
func Load(path string, log *zap.Logger) (*model.Model, error) {
	m, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.RequireFeatures(request_models.FeatureNames); err != nil {
		return nil, err
	}
	info := m.Info()
	log.Info("model loaded",
		zap.String("path", path),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("kind", info.Kind),
		zap.Strings("feature_names", info.FeatureNames))
	return m, nil
}
