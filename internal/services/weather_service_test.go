package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"trippy/internal/models/response_models"
)

func weatherServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "weather-key", r.URL.Query().Get("appid"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchWeatherWarmDay(t *testing.T) {
	srv := weatherServer(t, http.StatusOK, `{"weather":[{"description":"clear SKY"}],"main":{"temp":21.5}}`)
	svc := NewWeatherService(srv.URL, "weather-key", time.Second, zap.NewNop())

	got := svc.FetchWeather(context.Background(), "Paris")

	assert.Equal(t, response_models.WeatherReport{
		Forecast:        "Clear sky",
		Temperature:     "21.5 °C",
		Advice:          "Ideal for outdoor activities.",
		OutdoorFriendly: true,
	}, got)
}

func TestFetchWeatherColdDayAtThreshold(t *testing.T) {
	srv := weatherServer(t, http.StatusOK, `{"weather":[{"description":"light rain"}],"main":{"temp":15}}`)
	svc := NewWeatherService(srv.URL, "weather-key", time.Second, zap.NewNop())

	got := svc.FetchWeather(context.Background(), "Paris")

	assert.Equal(t, "Light rain", got.Forecast)
	assert.Equal(t, "15 °C", got.Temperature)
	assert.Equal(t, "Consider wearing a jacket.", got.Advice)
	assert.False(t, got.OutdoorFriendly)
}

func TestFetchWeatherUnavailable(t *testing.T) {
	for name, srv := range map[string]*httptest.Server{
		"not found": weatherServer(t, http.StatusNotFound, `{"cod":"404"}`),
		"no main":   weatherServer(t, http.StatusOK, `{"weather":[{"description":"fog"}]}`),
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewWeatherService(srv.URL, "weather-key", time.Second, zap.NewNop())
			assert.Equal(t, UnavailableWeather(), svc.FetchWeather(context.Background(), "Paris"))
		})
	}

	noKey := NewWeatherService("http://127.0.0.1:0", "", time.Second, zap.NewNop())
	assert.Equal(t, UnavailableWeather(), noKey.FetchWeather(context.Background(), "Paris"))
}
