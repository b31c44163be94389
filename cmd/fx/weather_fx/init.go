package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/api/controllers"
	"trippy/internal/config"
	"trippy/internal/services"
)

var Module = fx.Provide(
	provideWeatherService,
	controllers.NewWeatherController,
)

func provideWeatherService(cfg *config.Config, logger *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg.OpenWeatherURL, cfg.OpenWeatherAPIKey, cfg.ExternalAPITimeout, logger)
}
