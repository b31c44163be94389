package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry. All methods are safe on a nil receiver
// so services can be built without metrics in tests.
type Collector struct {
	reg *prometheus.Registry

	ItineraryRequests  *prometheus.CounterVec // outcome: ok|generation_error
	GenerationDuration *prometheus.HistogramVec

	StopsParsed  prometheus.Counter
	StopsMapped  prometheus.Counter
	StopsDropped prometheus.Counter

	GeocodeLookups  *prometheus.CounterVec // tier, result: hit|miss|error
	GeocodeDuration prometheus.Histogram

	PreferenceWrites *prometheus.CounterVec // outcome: ok|error
	Recommendations  *prometheus.CounterVec // source: places|cache|fallback
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ItineraryRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trippy_itinerary_requests_total",
			Help: "Itinerary generation requests by outcome.",
		}, []string{"outcome"}),
		GenerationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trippy_generation_duration_seconds",
			Help:    "Time spent waiting for the generation backend to finish streaming.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}, []string{"provider"}),
		StopsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trippy_stops_parsed_total",
			Help: "Stops extracted from model output.",
		}),
		StopsMapped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trippy_stops_mapped_total",
			Help: "Stops that resolved to coordinates.",
		}),
		StopsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trippy_stops_dropped_total",
			Help: "Stops excluded from map data because no tier resolved.",
		}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trippy_geocode_lookups_total",
			Help: "Place lookups by tier and result.",
		}, []string{"tier", "result"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trippy_geocode_lookup_duration_seconds",
			Help:    "Duration of a single place lookup request.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		PreferenceWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trippy_preference_writes_total",
			Help: "Preference store upserts by outcome.",
		}, []string{"outcome"}),
		Recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trippy_recommendations_total",
			Help: "Recommendation lookups by source.",
		}, []string{"source"}),
	}

	reg.MustRegister(
		c.ItineraryRequests, c.GenerationDuration,
		c.StopsParsed, c.StopsMapped, c.StopsDropped,
		c.GeocodeLookups, c.GeocodeDuration,
		c.PreferenceWrites, c.Recommendations,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveItinerary(outcome string, parsed, mapped int) {
	if c == nil {
		return
	}
	c.ItineraryRequests.WithLabelValues(outcome).Inc()
	c.StopsParsed.Add(float64(parsed))
	c.StopsMapped.Add(float64(mapped))
	c.StopsDropped.Add(float64(parsed - mapped))
}

func (c *Collector) ObserveGeneration(provider string, d time.Duration) {
	if c == nil {
		return
	}
	c.GenerationDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func (c *Collector) ObserveGeocode(tier, result string, d time.Duration) {
	if c == nil {
		return
	}
	c.GeocodeLookups.WithLabelValues(tier, result).Inc()
	c.GeocodeDuration.Observe(d.Seconds())
}

func (c *Collector) ObservePreferenceWrite(outcome string) {
	if c == nil {
		return
	}
	c.PreferenceWrites.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveRecommendation(source string) {
	if c == nil {
		return
	}
	c.Recommendations.WithLabelValues(source).Inc()
}
