package service

import (
	"context"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

func (s *Service) SubmitHealth(ctx context.Context, req domain.SubmitHealthRequest) (*domain.HealthSample, error) {
	return s.PublicService.SubmitHealth(ctx, req)
}

func (s *Service) HealthOverview(ctx context.Context) (*domain.HealthOverview, error) {
	return s.PublicService.HealthOverview(ctx)
}

func (s *Service) AreaHealthStats(ctx context.Context) ([]domain.AreaHealthStats, error) {
	return s.PublicService.AreaHealthStats(ctx)
}

func (s *Service) EnvironmentReport(ctx context.Context, area string) (*domain.EnvironmentReport, error) {
	return s.PublicService.EnvironmentReport(ctx, area)
}

func (s *Service) AQIHistory(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error) {
	return s.PublicService.AQIHistory(ctx, area, limit)
}

func (s *Service) AreaRisks(ctx context.Context) ([]domain.AreaRiskRecord, error) {
	return s.PublicService.AreaRisks(ctx)
}

func (s *Service) Stream(ctx context.Context, room string) <-chan domain.Notification {
	return s.PublicService.Stream(ctx, room)
}
