package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/aqi"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
)

// aqiHistoryDepth bounds the readings fed into smoothing and the scorer.
const aqiHistoryDepth = 5

const defaultHistoryLimit = 24

type publicService struct {
	health   HealthRepository
	envLogs  EnvLogRepository
	cache    EnvSnapshotCache
	geocoder Geocoder
	provider EnvironmentProvider
	scorer   RiskScorer
	notifier Notifier
	logger   *slog.Logger
}

func NewPublicService(
	health HealthRepository,
	envLogs EnvLogRepository,
	cache EnvSnapshotCache,
	geocoder Geocoder,
	provider EnvironmentProvider,
	scorer RiskScorer,
	notifier Notifier,
	logger *slog.Logger,
) PublicService {
	return &publicService{
		health:   health,
		envLogs:  envLogs,
		cache:    cache,
		geocoder: geocoder,
		provider: provider,
		scorer:   scorer,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *publicService) SubmitHealth(ctx context.Context, req domain.SubmitHealthRequest) (*domain.HealthSample, error) {
	const op = "service.Public.SubmitHealth"

	sample := &domain.HealthSample{
		ID:         uuid.New(),
		SleepHours: req.Sleep,
		Stress:     req.Stress,
		Symptoms:   req.Symptoms,
		Area:       strings.TrimSpace(req.Area),
		Lat:        req.Lat,
		Lng:        req.Lng,
	}
	if sample.Symptoms == nil {
		sample.Symptoms = []string{}
	}

	if err := s.health.Create(ctx, sample); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Debug("health sample stored", slog.String("area", sample.Area))
	return sample, nil
}

func (s *publicService) HealthOverview(ctx context.Context) (*domain.HealthOverview, error) {
	return s.health.Overview(ctx)
}

func (s *publicService) AreaHealthStats(ctx context.Context) ([]domain.AreaHealthStats, error) {
	return s.health.AreaStats(ctx)
}

// EnvironmentReport resolves the area, pulls a snapshot (cache first),
// computes the smoothed AQI against recent history and appends the result
// to the history log.
func (s *publicService) EnvironmentReport(ctx context.Context, area string) (*domain.EnvironmentReport, error) {
	const op = "service.Public.EnvironmentReport"

	area = strings.TrimSpace(area)
	if area == "" {
		return nil, e.Wrap(op, e.ErrInvalidInput)
	}

	snap, err := s.snapshotFor(ctx, area)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	history := s.historyValues(ctx, area)
	reading := aqi.Compute(snap.Pollutants, history)

	if err := s.envLogs.Insert(ctx, area, reading.Index); err != nil {
		s.logger.Warn("aqi history insert failed", slog.String("area", area), slog.Any("error", err))
	}

	return &domain.EnvironmentReport{
		Area: area,
		Weather: domain.WeatherInfo{
			Temp:      snap.Temperature,
			Humidity:  snap.Humidity,
			WindSpeed: snap.WindSpeed,
			Condition: snap.Condition,
		},
		AQI:    reading,
		Risk:   aqi.ClassifyRisk(reading.Index),
		Health: healthImpactFor(reading.Index),
	}, nil
}

func (s *publicService) AQIHistory(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.envLogs.History(ctx, strings.TrimSpace(area), limit)
}

func (s *publicService) Stream(ctx context.Context, room string) <-chan domain.Notification {
	return s.notifier.Subscribe(ctx, room)
}

// snapshotFor serves from the per-area cache when fresh, otherwise
// geocodes and fetches from the provider, filling the cache on the way out.
func (s *publicService) snapshotFor(ctx context.Context, area string) (*domain.EnvironmentSnapshot, error) {
	if snap, err := s.cache.Get(ctx, area); err != nil {
		s.logger.Warn("env cache read failed", slog.String("area", area), slog.Any("error", err))
	} else if snap != nil {
		return snap, nil
	}

	lat, lng, err := s.geocoder.Resolve(ctx, area)
	if err != nil {
		return nil, err
	}

	snap, err := s.provider.FetchByCoords(ctx, area, lat, lng)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, snap); err != nil {
		s.logger.Warn("env cache write failed", slog.String("area", area), slog.Any("error", err))
	}
	return snap, nil
}

func (s *publicService) historyValues(ctx context.Context, area string) []float64 {
	entries, err := s.envLogs.History(ctx, area, aqiHistoryDepth)
	if err != nil {
		s.logger.Warn("aqi history read failed", slog.String("area", area), slog.Any("error", err))
		return nil
	}
	values := make([]float64, 0, len(entries))
	for _, entry := range entries {
		values = append(values, float64(entry.AQI))
	}
	return values
}

func healthImpactFor(index int) domain.HealthImpact {
	switch {
	case index <= 50:
		return domain.HealthImpact{
			Score:  90,
			Status: "Minimal impact",
			Suggestions: []string{
				"Air quality is good, outdoor activity is safe",
			},
		}
	case index <= 100:
		return domain.HealthImpact{
			Score:  75,
			Status: "Minor discomfort possible",
			Suggestions: []string{
				"Sensitive groups should limit prolonged outdoor exertion",
				"Keep windows open for ventilation",
			},
		}
	case index <= 200:
		return domain.HealthImpact{
			Score:  55,
			Status: "Breathing discomfort for sensitive groups",
			Suggestions: []string{
				"Wear a mask outdoors",
				"Limit outdoor exercise",
				"People with asthma should keep inhalers handy",
			},
		}
	case index <= 300:
		return domain.HealthImpact{
			Score:  35,
			Status: "Health effects on prolonged exposure",
			Suggestions: []string{
				"Avoid outdoor activity",
				"Use air purifiers indoors",
				"Wear an N95 mask if going outside",
			},
		}
	default:
		return domain.HealthImpact{
			Score:  15,
			Status: "Serious health effects",
			Suggestions: []string{
				"Stay indoors",
				"Seal windows and doors",
				"Seek medical help for breathing difficulty",
			},
		}
	}
}
