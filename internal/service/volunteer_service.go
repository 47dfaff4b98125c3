package service

import (
	"context"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error) {
	return s.VolunteerService.Register(ctx, req)
}

func (s *Service) GetVolunteer(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	return s.VolunteerService.Get(ctx, id)
}

func (s *Service) ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error) {
	return s.VolunteerService.List(ctx)
}

func (s *Service) Dashboard(ctx context.Context, id uuid.UUID) (*domain.VolunteerDashboard, error) {
	return s.VolunteerService.Dashboard(ctx, id)
}

func (s *Service) JoinCamp(ctx context.Context, volunteerID, campID uuid.UUID) (*domain.ReliefCamp, error) {
	return s.VolunteerService.JoinCamp(ctx, volunteerID, campID)
}

func (s *Service) LeaveCamp(ctx context.Context, volunteerID uuid.UUID) error {
	return s.VolunteerService.LeaveCamp(ctx, volunteerID)
}

func (s *Service) SubmitReport(ctx context.Context, volunteerID uuid.UUID, req domain.SubmitWorkReportRequest) (*domain.WorkReport, error) {
	return s.VolunteerService.SubmitReport(ctx, volunteerID, req)
}
