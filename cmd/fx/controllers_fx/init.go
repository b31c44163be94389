package controllers_fx

import (
	"go.uber.org/fx"

	"trippy/internal/api/controllers"
	"trippy/internal/config"
)

var Module = fx.Options(
	fx.Provide(provideHealthController))

func provideHealthController(cfg *config.Config) *controllers.HealthController {
	return controllers.NewHealthController(cfg.GenerationProvider, cfg.PreferenceStore)
}
