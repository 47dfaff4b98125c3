package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

// EnvironmentClient pulls weather and pollutant readings from OpenWeather.
// Failures here degrade to fallback records upstream, they never abort an
// aggregation batch.
type EnvironmentClient struct {
	logger *slog.Logger
	cfg    config.WeatherConfig
	http   *http.Client
}

func NewEnvironmentClient(cfg config.WeatherConfig, logger *slog.Logger) *EnvironmentClient {
	return &EnvironmentClient{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type weatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

type airResponse struct {
	List []struct {
		Components domain.Pollutants `json:"components"`
	} `json:"list"`
}

func (c *EnvironmentClient) FetchByCoords(ctx context.Context, area string, lat, lng float64) (*domain.EnvironmentSnapshot, error) {
	const op = "clients.Environment.FetchByCoords"

	var weather weatherResponse
	wURL := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&units=metric&appid=%s",
		c.cfg.BaseURL, lat, lng, c.cfg.APIKey)
	if err := c.getJSON(ctx, wURL, &weather); err != nil {
		return nil, e.Wrap(op, err)
	}

	var air airResponse
	aURL := fmt.Sprintf("%s/data/2.5/air_pollution?lat=%f&lon=%f&appid=%s",
		c.cfg.BaseURL, lat, lng, c.cfg.APIKey)
	if err := c.getJSON(ctx, aURL, &air); err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(air.List) == 0 {
		return nil, fmt.Errorf("%s: empty air pollution response", op)
	}

	condition := ""
	if len(weather.Weather) > 0 {
		condition = weather.Weather[0].Description
	}

	return &domain.EnvironmentSnapshot{
		Area:        area,
		Pollutants:  air.List[0].Components,
		Temperature: weather.Main.Temp,
		Humidity:    weather.Main.Humidity,
		WindSpeed:   weather.Wind.Speed,
		Condition:   condition,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

func (c *EnvironmentClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
