package service

import (
	"context"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) DeployCamp(ctx context.Context, req domain.DeployCampRequest) (*domain.ReliefCamp, error) {
	return s.NGOService.DeployCamp(ctx, req)
}

func (s *Service) AssignVolunteers(ctx context.Context, req domain.AssignVolunteersRequest) (*domain.AssignVolunteersResponse, error) {
	return s.NGOService.AssignVolunteers(ctx, req)
}

func (s *Service) CloseCamp(ctx context.Context, campID uuid.UUID) (*domain.ReliefCamp, error) {
	return s.NGOService.CloseCamp(ctx, campID)
}

func (s *Service) GetCamp(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error) {
	return s.NGOService.GetCamp(ctx, id)
}

func (s *Service) ListCamps(ctx context.Context, activeOnly bool) ([]*domain.ReliefCamp, error) {
	return s.NGOService.ListCamps(ctx, activeOnly)
}

func (s *Service) ListCampReports(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error) {
	return s.NGOService.ListCampReports(ctx, campID)
}

func (s *Service) ApproveReport(ctx context.Context, reportID uuid.UUID) (*domain.ApproveReportResponse, error) {
	return s.NGOService.ApproveReport(ctx, reportID)
}

func (s *Service) RejectReport(ctx context.Context, reportID uuid.UUID, req domain.RejectReportRequest) (*domain.WorkReport, error) {
	return s.NGOService.RejectReport(ctx, reportID, req)
}
