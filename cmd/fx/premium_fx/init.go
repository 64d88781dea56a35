package premium_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"premiumcalc/internal/config"
	"premiumcalc/internal/repositories"
	"premiumcalc/internal/services"
)

var Module = fx.Provide(
	services.NewPremiumService,
	provideIntakeService,
	provideHistoryService)

func provideIntakeService(
	premiumService services.PremiumServiceInterface,
	sink services.RecordSink,
	cfg *config.Config,
	log *zap.Logger) services.IntakeServiceInterface {
	return services.NewIntakeService(premiumService, sink, cfg.Record.Timeout, log)
}

func provideHistoryService(repo repositories.PremiumRecordRepositoryInterface) services.RecordHistoryServiceInterface {
	return services.NewRecordHistoryService(repo)
}
