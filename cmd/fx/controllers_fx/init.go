package controllers_fx

import (
	"go.uber.org/fx"
	"premiumcalc/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPremiumController),
	fx.Provide(controllers.NewRecordsController),
	fx.Provide(controllers.NewHealthController))
