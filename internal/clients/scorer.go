package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

// ScorerClient calls the external AI risk engine. Any failure or malformed
// response is an error; the aggregator substitutes the mandated UNKNOWN
// fallback, a scorer outage never blocks area reporting.
type ScorerClient struct {
	logger *slog.Logger
	cfg    config.RiskEngineConfig
	http   *http.Client
}

func NewScorerClient(cfg config.RiskEngineConfig, logger *slog.Logger) *ScorerClient {
	return &ScorerClient{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type scoreRequest struct {
	HealthData  []domain.HealthPayload `json:"health_data"`
	Environment domain.EnvPayload      `json:"environment"`
	History     []float64              `json:"history"`
}

type scoreResponse struct {
	Predictions []domain.RiskScore `json:"predictions"`
}

func (c *ScorerClient) Score(ctx context.Context, health domain.HealthPayload, env domain.EnvPayload, history []float64) (domain.RiskScore, error) {
	const op = "clients.Scorer.Score"

	if history == nil {
		history = []float64{}
	}
	body, err := json.Marshal(scoreRequest{
		HealthData:  []domain.HealthPayload{health},
		Environment: env,
		History:     history,
	})
	if err != nil {
		return domain.RiskScore{}, e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return domain.RiskScore{}, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RiskScore{}, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RiskScore{}, fmt.Errorf("%s: status %s", op, resp.Status)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.RiskScore{}, e.Wrap(op, err)
	}
	if len(out.Predictions) == 0 {
		return domain.RiskScore{}, fmt.Errorf("%s: empty predictions", op)
	}

	score := out.Predictions[0]
	if _, err := domain.ParseRiskLevel(string(score.Risk)); err != nil && score.Risk != domain.RiskUnknown {
		return domain.RiskScore{}, fmt.Errorf("%s: %w", op, err)
	}

	return score, nil
}
