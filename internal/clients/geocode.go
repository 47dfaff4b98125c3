package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

// GeoClient resolves area names to coordinates via the OpenWeather direct
// geocoding API. Failures are non-fatal for callers: the risk pipeline
// emits records with nil coordinates when resolution fails.
type GeoClient struct {
	logger *slog.Logger
	cfg    config.WeatherConfig
	http   *http.Client
}

func NewGeoClient(cfg config.WeatherConfig, logger *slog.Logger) *GeoClient {
	return &GeoClient{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type geoResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (c *GeoClient) Resolve(ctx context.Context, area string) (lat, lng float64, err error) {
	const op = "clients.Geo.Resolve"

	u := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		c.cfg.BaseURL, url.QueryEscape(area), c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, e.Wrap(op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%s: status %s", op, resp.Status)
	}

	var results []geoResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, e.Wrap(op, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%s: area %q: %w", op, area, e.ErrNotFound)
	}

	return results[0].Lat, results[0].Lon, nil
}
