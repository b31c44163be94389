package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"trippy/internal/metrics"
	mem "trippy/pkg/memcache"
	"trippy/pkg/utils"
)

const maxRecommendations = 5

// FallbackRecommendations is returned whenever the place search cannot help.
var FallbackRecommendations = []string{"Local landmarks", "Museums", "Food markets"}

type RecommendationServiceInterface interface {
	// RecommendPlaces never fails; it degrades to FallbackRecommendations.
	RecommendPlaces(ctx context.Context, city string) []string
}

// -------------- Google Places text search ---------------

type placesTextSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

type RecommendationService struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	Cache   mem.ListStore
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewRecommendationService(baseURL, apiKey string, timeout time.Duration, cache mem.ListStore, logger *zap.Logger, m *metrics.Collector) RecommendationServiceInterface {
	return &RecommendationService{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Cache:   cache,
		logger:  logger,
		metrics: m,
	}
}

func (s *RecommendationService) RecommendPlaces(ctx context.Context, city string) []string {
	if names, ok := s.Cache.Get(city); ok {
		s.metrics.ObserveRecommendation("cache")
		return names
	}

	names, err := s.searchPopularPlaces(ctx, city)
	if err != nil {
		s.logger.Warn("recommendation lookup failed, using fallback", zap.String("city", city), zap.Error(err))
		s.metrics.ObserveRecommendation("fallback")
		return append([]string(nil), FallbackRecommendations...)
	}

	s.Cache.Set(city, names)
	s.metrics.ObserveRecommendation("places")
	return names
}

func (s *RecommendationService) searchPopularPlaces(ctx context.Context, city string) ([]string, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("google places: %w", utils.ErrMissingAPIKey)
	}

	q := url.Values{}
	q.Set("query", "popular places in "+city)
	q.Set("key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/maps/api/place/textsearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places %s: %w", resp.Status, utils.ErrUpstreamStatus)
	}

	var payload placesTextSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}
	if payload.Status != "" && payload.Status != "OK" {
		return nil, fmt.Errorf("places status %s: %w", payload.Status, utils.ErrUpstreamStatus)
	}

	names := make([]string, 0, maxRecommendations)
	for _, r := range payload.Results {
		if len(names) == maxRecommendations {
			break
		}
		if n := strings.TrimSpace(r.Name); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("places returned no results for %q", city)
	}
	return names, nil
}
