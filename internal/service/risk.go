package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/aqi"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

// Payload defaults used when an area has no usable health or environment
// signal. The scorer always receives a complete payload.
const (
	defaultSleep    = 7.0
	defaultStress   = 5.0
	defaultTemp     = 25.0
	defaultHumidity = 50.0
	defaultWind     = 3.0
)

const maxConcurrentAreas = 8

// AreaRisks aggregates health statistics per area, enriches each area with
// an environment snapshot and scores the combination. Areas are isolated:
// a provider or scorer failure for one area degrades that record to the
// UNKNOWN fallback and never aborts the batch.
func (s *publicService) AreaRisks(ctx context.Context) ([]domain.AreaRiskRecord, error) {
	const op = "service.Public.AreaRisks"

	stats, err := s.health.AreaStats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	records := make([]domain.AreaRiskRecord, len(stats))
	sem := make(chan struct{}, maxConcurrentAreas)
	var wg sync.WaitGroup

	for i, st := range stats {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, st domain.AreaHealthStats) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = s.scoreArea(ctx, st)
		}(i, st)
	}
	wg.Wait()

	return records, nil
}

func (s *publicService) scoreArea(ctx context.Context, st domain.AreaHealthStats) domain.AreaRiskRecord {
	healthPayload := sanitizeHealth(st)

	record := domain.AreaRiskRecord{
		Area:      st.Area,
		AvgStress: healthPayload.Stress,
		AvgSleep:  healthPayload.Sleep,
	}

	history := s.historyValues(ctx, st.Area)

	// No snapshot means no scorable environment: the record degrades to
	// UNKNOWN without consulting the scorer.
	envPayload, lat, lng, err := s.environmentPayload(ctx, st.Area, history)
	if err != nil {
		s.logger.Warn("environment unavailable for area, using fallback",
			slog.String("area", st.Area), slog.Any("error", err))
		fallback := domain.FallbackRiskScore()
		record.Risk = fallback.Risk
		record.AvgAQI = fallback.FinalAQI
		return record
	}

	record.Lat = lat
	record.Lng = lng

	score, err := s.scorer.Score(ctx, healthPayload, envPayload, history)
	if err != nil {
		s.logger.Warn("scorer unavailable, using fallback",
			slog.String("area", st.Area), slog.Any("error", err))
		score = domain.FallbackRiskScore()
		score.FinalAQI = int(envPayload.AQI)
	}

	record.AvgAQI = score.FinalAQI
	record.Risk = score.Risk
	record.EnvScore = score.EnvScore
	record.HumanScore = score.HumanScore
	record.Confidence = score.Confidence
	return record
}

// environmentPayload requires a snapshot; a failed fetch is an error for
// the caller. Field defaults cover gaps in a fetched snapshot, and a
// geocoding failure only costs the coordinates.
func (s *publicService) environmentPayload(ctx context.Context, area string, history []float64) (domain.EnvPayload, *float64, *float64, error) {
	snap, err := s.snapshotFor(ctx, area)
	if err != nil {
		return domain.EnvPayload{}, nil, nil, err
	}

	payload := domain.EnvPayload{
		AQI:         aqi.Smooth(aqi.Instant(snap.Pollutants), history),
		Temperature: snap.Temperature,
		Humidity:    snap.Humidity,
		WindSpeed:   snap.WindSpeed,
	}
	if payload.Temperature == 0 {
		payload.Temperature = defaultTemp
	}
	if payload.Humidity == 0 {
		payload.Humidity = defaultHumidity
	}
	if payload.WindSpeed == 0 {
		payload.WindSpeed = defaultWind
	}

	lat, lng, err := s.geocoder.Resolve(ctx, area)
	if err != nil {
		return payload, nil, nil, nil
	}
	return payload, &lat, &lng, nil
}

func sanitizeHealth(st domain.AreaHealthStats) domain.HealthPayload {
	payload := domain.HealthPayload{
		Sleep:    st.AvgSleep,
		Stress:   st.AvgStress,
		Symptoms: st.Symptoms,
	}
	if payload.Sleep <= 0 {
		payload.Sleep = defaultSleep
	}
	if payload.Stress <= 0 {
		payload.Stress = defaultStress
	}
	if payload.Symptoms == nil {
		payload.Symptoms = []string{}
	}
	return payload
}
