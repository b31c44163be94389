package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trippy/internal/events"
	"trippy/internal/metrics"
	"trippy/internal/models/request_models"
	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

const (
	defaultStartingPoint = "a central location"
	WeatherClosingNote   = "\n\nWeather Recommendation: Ideal for outdoor activities."
	noResponseText       = "Error: No response generated."
)

type ItineraryServiceInterface interface {
	// GenerateItinerary always yields itinerary text. Generation failures are
	// reported inside the text, not as an error; only bad input is an error.
	GenerateItinerary(ctx context.Context, prefs request_models.TripPreferences, withGeoJSON bool) (*response_models.ItineraryResult, error)
}

type ItineraryOptions struct {
	GenerationTimeout  time.Duration
	GeocodeConcurrency int
}

type ItineraryService struct {
	generator utils.TextGeneratorInterface
	resolver  PlaceResolverInterface
	maps      MapServiceInterface
	publisher events.Publisher
	metrics   *metrics.Collector
	logger    *zap.Logger
	opts      ItineraryOptions
}

func NewItineraryService(
	generator utils.TextGeneratorInterface,
	resolver PlaceResolverInterface,
	maps MapServiceInterface,
	publisher events.Publisher,
	m *metrics.Collector,
	logger *zap.Logger,
	opts ItineraryOptions,
) ItineraryServiceInterface {
	if opts.GeocodeConcurrency < 1 {
		opts.GeocodeConcurrency = 1
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ItineraryService{
		generator: generator,
		resolver:  resolver,
		maps:      maps,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		opts:      opts,
	}
}

// BuildItineraryPrompt renders the request sentence followed by the stop
// schema that ParseStops expects.
func BuildItineraryPrompt(prefs request_models.TripPreferences) string {
	prompt := fmt.Sprintf(
		"Create a detailed itinerary for %s that includes activities related to %s, "+
			"starting from %s at %s and ending by %s. "+
			"Budget is approximately %d. Format the response as per the provided schema.",
		prefs.City,
		strings.Join(prefs.Interests, ", "),
		prefs.StartingPointOr(defaultStartingPoint),
		prefs.StartTime,
		prefs.EndTime,
		prefs.Budget,
	)
	return prompt + "\n\n" + StopSchemaTemplate
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, prefs request_models.TripPreferences, withGeoJSON bool) (*response_models.ItineraryResult, error) {
	if strings.TrimSpace(prefs.City) == "" {
		return nil, fmt.Errorf("city is required: %w", utils.ErrInvalidInput)
	}

	text, err := s.generate(ctx, BuildItineraryPrompt(prefs))
	if err != nil {
		s.logger.Warn("itinerary generation failed",
			zap.String("provider", s.generator.Provider()), zap.String("city", prefs.City), zap.Error(err))
		result := &response_models.ItineraryResult{
			Itinerary: generationErrorText(err),
			MapData:   []response_models.MapStop{},
		}
		s.maps.Decorate(result, withGeoJSON)
		s.finish(prefs, "generation_error", 0, 0)
		return result, nil
	}
	s.logger.Debug("raw model response", zap.String("text", text))

	stops := ParseStops(text)
	mapData := s.resolveStops(ctx, prefs.City, stops)

	result := &response_models.ItineraryResult{
		Itinerary: text + WeatherClosingNote,
		MapData:   mapData,
	}
	s.maps.Decorate(result, withGeoJSON)

	s.logger.Info("itinerary generated",
		zap.String("city", prefs.City),
		zap.Int("stops_parsed", len(stops)),
		zap.Int("stops_mapped", len(mapData)))
	s.finish(prefs, "ok", len(stops), len(mapData))
	return result, nil
}

func (s *ItineraryService) generate(ctx context.Context, prompt string) (string, error) {
	if s.opts.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.GenerationTimeout)
		defer cancel()
	}
	start := time.Now()
	text, err := s.generator.GenerateText(ctx, prompt)
	s.metrics.ObserveGeneration(s.generator.Provider(), time.Since(start))
	return text, err
}

// resolveStops looks up every stop concurrently and keeps parse order.
func (s *ItineraryService) resolveStops(ctx context.Context, city string, stops []response_models.Stop) []response_models.MapStop {
	coords := make([]response_models.Coordinates, len(stops))
	found := make([]bool, len(stops))

	var g errgroup.Group
	g.SetLimit(s.opts.GeocodeConcurrency)
	for i, stop := range stops {
		g.Go(func() error {
			c, err := s.resolver.ResolveCoordinates(ctx, PlaceQuery{Name: stop.Name, City: city, Address: stop.Address})
			if err != nil {
				s.logger.Info("skipping stop without coordinates", zap.String("stop", stop.Name), zap.Error(err))
				return nil
			}
			coords[i], found[i] = c, true
			return nil
		})
	}
	_ = g.Wait()

	mapData := make([]response_models.MapStop, 0, len(stops))
	for i, stop := range stops {
		if found[i] {
			mapData = append(mapData, response_models.NewMapStop(stop, coords[i]))
		}
	}
	return mapData
}

func (s *ItineraryService) finish(prefs request_models.TripPreferences, outcome string, parsed, mapped int) {
	s.metrics.ObserveItinerary(outcome, parsed, mapped)
	s.publisher.Publish(events.SubjectItineraryGenerated, events.ItineraryGenerated{
		UserID:      prefs.UserID,
		City:        prefs.City,
		Provider:    s.generator.Provider(),
		Outcome:     outcome,
		StopsParsed: parsed,
		StopsMapped: mapped,
		GeneratedAt: time.Now().Unix(),
	})
}

// generationErrorText is the human-readable stand-in for the itinerary when
// the backend produced nothing usable.
func generationErrorText(err error) string {
	switch {
	case errors.Is(err, utils.ErrEmptyGeneration):
		return noResponseText
	case errors.Is(err, context.DeadlineExceeded):
		return "Request failed: the itinerary service timed out."
	default:
		return "Request failed: " + err.Error()
	}
}
