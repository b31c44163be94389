package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"trippy/internal/metrics"
	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

type PlaceQuery struct {
	Name    string
	City    string
	Address string
}

// QueryTier builds one lookup query. An empty result means the tier does not
// apply to this place and is skipped without a request.
type QueryTier struct {
	Name  string
	Build func(PlaceQuery) string
}

// DefaultQueryTiers go from most to least specific.
var DefaultQueryTiers = []QueryTier{
	{Name: "address", Build: addressQuery},
	{Name: "name_city", Build: nameCityQuery},
	{Name: "city", Build: cityQuery},
}

var addressPlaceholders = map[string]bool{
	"n/a": true, "na": true, "none": true, "not applicable": true, "unknown": true, "-": true,
}

func addressQuery(q PlaceQuery) string {
	addr := strings.TrimSpace(q.Address)
	if addressPlaceholders[strings.ToLower(addr)] {
		return ""
	}
	return addr
}

func nameCityQuery(q PlaceQuery) string {
	name, city := strings.TrimSpace(q.Name), strings.TrimSpace(q.City)
	switch {
	case name == "":
		return ""
	case city == "":
		return name
	}
	return name + ", " + city
}

func cityQuery(q PlaceQuery) string {
	return strings.TrimSpace(q.City)
}

type PlaceResolverInterface interface {
	// ResolveCoordinates returns utils.ErrPlaceNotFound when no tier yields a
	// usable candidate. It never reports (0, 0) for a miss.
	ResolveCoordinates(ctx context.Context, q PlaceQuery) (response_models.Coordinates, error)
}

type PlaceResolver struct {
	lookup  PlaceLookup
	tiers   []QueryTier
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewPlaceResolver(lookup PlaceLookup, logger *zap.Logger, m *metrics.Collector) PlaceResolverInterface {
	return &PlaceResolver{
		lookup:  lookup,
		tiers:   DefaultQueryTiers,
		logger:  logger,
		metrics: m,
	}
}

func (r *PlaceResolver) ResolveCoordinates(ctx context.Context, q PlaceQuery) (response_models.Coordinates, error) {
	for _, tier := range r.tiers {
		query := tier.Build(q)
		if query == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return response_models.Coordinates{}, err
		}

		start := time.Now()
		candidates, err := r.lookup.Search(ctx, query)
		elapsed := time.Since(start)
		if err != nil {
			r.metrics.ObserveGeocode(tier.Name, "error", elapsed)
			r.logger.Warn("place lookup failed",
				zap.String("tier", tier.Name), zap.String("query", query), zap.Error(err))
			continue
		}

		coords, ok := firstParsable(candidates)
		if !ok {
			r.metrics.ObserveGeocode(tier.Name, "miss", elapsed)
			r.logger.Debug("no coordinates for query", zap.String("tier", tier.Name), zap.String("query", query))
			continue
		}

		r.metrics.ObserveGeocode(tier.Name, "hit", elapsed)
		r.logger.Debug("coordinates found",
			zap.String("tier", tier.Name), zap.String("query", query),
			zap.Float64("lat", coords.Lat), zap.Float64("lon", coords.Lon))
		return coords, nil
	}

	r.logger.Info("all place lookup tiers exhausted", zap.String("place", q.Name), zap.String("city", q.City))
	return response_models.Coordinates{}, utils.ErrPlaceNotFound
}

// firstParsable only looks at the first candidate; the lookup asks for one.
func firstParsable(candidates []PlaceCandidate) (response_models.Coordinates, bool) {
	if len(candidates) == 0 {
		return response_models.Coordinates{}, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(candidates[0].Lat), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(candidates[0].Lon), 64)
	if errLat != nil || errLon != nil || math.IsNaN(lat) || math.IsNaN(lon) ||
		math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return response_models.Coordinates{}, false
	}
	return response_models.Coordinates{Lat: lat, Lon: lon}, true
}
