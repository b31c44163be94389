package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trippy/pkg/utils"
)

// PlaceCandidate is one search hit. Coordinates are kept as the strings the
// service sent; the resolver decides whether they parse.
type PlaceCandidate struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type PlaceLookup interface {
	Search(ctx context.Context, query string) ([]PlaceCandidate, error)
}

// -------------- Nominatim search client ---------------

type NominatimClient struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Limiter   *rate.Limiter
}

// NewNominatimClient refuses to build a client without a User-Agent: the
// public instance blocks anonymous traffic, and a silent fallback would only
// show up as every stop missing from the map.
func NewNominatimClient(baseURL, userAgent string, requestsPerSecond float64, timeout time.Duration) (*NominatimClient, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, utils.ErrMissingUserAgent
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &NominatimClient{
		HTTP:      &http.Client{Timeout: timeout},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		Limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

func (c *NominatimClient) Search(ctx context.Context, query string) ([]PlaceCandidate, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("nominatim rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("nominatim %s: %w", resp.Status, utils.ErrUpstreamStatus)
	}

	var payload []PlaceCandidate
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}
	return payload, nil
}
