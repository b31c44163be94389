package geocoding_fx

import (
	"go.uber.org/fx"

	"trippy/internal/config"
	"trippy/internal/services"
)

var Module = fx.Provide(
	providePlaceLookup,
	services.NewPlaceResolver,
	services.NewMapService,
)

func providePlaceLookup(cfg *config.Config) (services.PlaceLookup, error) {
	client, err := services.NewNominatimClient(cfg.NominatimURL, cfg.NominatimUserAgent, cfg.NominatimRate, cfg.GeocodeTimeout)
	if err != nil {
		return nil, err
	}
	return services.NewCachedPlaceLookup(client, cfg.GeocodeCacheTTL), nil
}
