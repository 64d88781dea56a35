package config_fx

import (
	"go.uber.org/fx"
	"premiumcalc/internal/config"
)

var Module = fx.Provide(config.Load)
