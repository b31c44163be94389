package config_fx

import (
	"go.uber.org/fx"

	"trippy/internal/config"
)

var Module = fx.Provide(config.Load)
