package recommendation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/config"
	"trippy/internal/metrics"
	"trippy/internal/services"
	mem "trippy/pkg/memcache"
)

var Module = fx.Provide(provideRecommendationCache, provideRecommendationService)

func provideRecommendationCache(cfg *config.Config) mem.ListStore {
	return mem.NewListCache(cfg.RecommendationCacheTTL)
}

func provideRecommendationService(cfg *config.Config, cache mem.ListStore, logger *zap.Logger, m *metrics.Collector) services.RecommendationServiceInterface {
	return services.NewRecommendationService(cfg.GooglePlacesURL, cfg.GooglePlacesAPIKey, cfg.ExternalAPITimeout, cache, logger, m)
}
