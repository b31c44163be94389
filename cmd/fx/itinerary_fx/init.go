package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/api/controllers"
	"trippy/internal/config"
	"trippy/internal/events"
	"trippy/internal/metrics"
	"trippy/internal/services"
	"trippy/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	controllers.NewItineraryController,
)

func provideItineraryService(
	cfg *config.Config,
	generator utils.TextGeneratorInterface,
	resolver services.PlaceResolverInterface,
	maps services.MapServiceInterface,
	publisher events.Publisher,
	m *metrics.Collector,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, resolver, maps, publisher, m, logger, services.ItineraryOptions{
		GenerationTimeout:  cfg.GenerationTimeout,
		GeocodeConcurrency: cfg.GeocodeConcurrency,
	})
}
