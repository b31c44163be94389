package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

const outdoorThresholdCelsius = 15.0

type WeatherServiceInterface interface {
	// FetchWeather never fails; an unavailable forecast is a valid report.
	FetchWeather(ctx context.Context, city string) response_models.WeatherReport
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

type WeatherService struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	logger  *zap.Logger
}

func NewWeatherService(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		logger:  logger,
	}
}

func UnavailableWeather() response_models.WeatherReport {
	return response_models.WeatherReport{
		Forecast: "Weather data unavailable",
		Advice:   "Check the local weather.",
	}
}

func (s *WeatherService) FetchWeather(ctx context.Context, city string) response_models.WeatherReport {
	data, err := s.currentWeather(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return UnavailableWeather()
	}

	temp := data.Main.Temp
	report := response_models.WeatherReport{
		Forecast:    capitalize(data.Weather[0].Description),
		Temperature: strconv.FormatFloat(temp, 'f', -1, 64) + " °C",
		Advice:      "Consider wearing a jacket.",
	}
	if temp > outdoorThresholdCelsius {
		report.Advice = "Ideal for outdoor activities."
		report.OutdoorFriendly = true
	}
	return report
}

func (s *WeatherService) currentWeather(ctx context.Context, city string) (*openWeatherResponse, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("openweather: %w", utils.ErrMissingAPIKey)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("openweather %s: %w", resp.Status, utils.ErrUpstreamStatus)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("openweather decode: %w", err)
	}
	if len(payload.Weather) == 0 || payload.Main == nil {
		return nil, fmt.Errorf("openweather response missing weather or main")
	}
	return &payload, nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
