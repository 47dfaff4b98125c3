package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
)

type volunteerService struct {
	volunteers VolunteerRepository
	camps      CampRepository
	reports    WorkReportRepository
	images     ImageUploader
	notifier   Notifier
	logger     *slog.Logger
}

func NewVolunteerService(
	volunteers VolunteerRepository,
	camps CampRepository,
	reports WorkReportRepository,
	images ImageUploader,
	notifier Notifier,
	logger *slog.Logger,
) VolunteerService {
	return &volunteerService{
		volunteers: volunteers,
		camps:      camps,
		reports:    reports,
		images:     images,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *volunteerService) Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error) {
	const op = "service.Volunteer.Register"

	v := &domain.Volunteer{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Available: true,
		Level:     "Rookie",
		Badges:    []domain.Badge{},
	}

	if err := s.volunteers.Create(ctx, v); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("volunteer registered", slog.String("volunteer_id", v.ID.String()))
	return v, nil
}

func (s *volunteerService) Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	return s.volunteers.Get(ctx, id)
}

func (s *volunteerService) List(ctx context.Context) ([]*domain.Volunteer, error) {
	return s.volunteers.List(ctx)
}

func (s *volunteerService) Dashboard(ctx context.Context, id uuid.UUID) (*domain.VolunteerDashboard, error) {
	const op = "service.Volunteer.Dashboard"

	v, err := s.volunteers.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	dash := &domain.VolunteerDashboard{Volunteer: v}
	if v.AssignedCamp != nil {
		camp, err := s.camps.Get(ctx, *v.AssignedCamp)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		dash.AssignedCamp = camp
	}
	return dash, nil
}

func (s *volunteerService) JoinCamp(ctx context.Context, volunteerID, campID uuid.UUID) (*domain.ReliefCamp, error) {
	const op = "service.Volunteer.JoinCamp"

	if err := s.volunteers.Join(ctx, volunteerID, campID); err != nil {
		return nil, e.Wrap(op, err)
	}

	camp, err := s.camps.Get(ctx, campID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.notifier.Publish(ctx, domain.VolunteerRoom(volunteerID), domain.EventCampAssigned,
		domain.CampAssignedPayload{CampID: campID, Area: camp.Area})

	s.logger.Info("volunteer joined camp",
		slog.String("volunteer_id", volunteerID.String()),
		slog.String("camp_id", campID.String()),
	)
	return camp, nil
}

func (s *volunteerService) LeaveCamp(ctx context.Context, volunteerID uuid.UUID) error {
	const op = "service.Volunteer.LeaveCamp"

	if err := s.volunteers.Leave(ctx, volunteerID); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Info("volunteer left camp", slog.String("volunteer_id", volunteerID.String()))
	return nil
}

// SubmitReport uploads evidence first so a storage failure aborts the
// submission before anything is persisted. The open-report constraint
// lives in the database, so a concurrent double submit loses cleanly.
func (s *volunteerService) SubmitReport(ctx context.Context, volunteerID uuid.UUID, req domain.SubmitWorkReportRequest) (*domain.WorkReport, error) {
	const op = "service.Volunteer.SubmitReport"

	campID, err := uuid.Parse(req.CampID)
	if err != nil {
		return nil, fmt.Errorf("%s: camp_id: %w", op, e.ErrInvalidInput)
	}

	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: image %q: %w", op, img.Filename, e.ErrInvalidInput)
		}
		url, err := s.images.Upload(ctx, img.Filename, data)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		urls = append(urls, url)
	}

	report := &domain.WorkReport{
		ID:           uuid.New(),
		VolunteerID:  volunteerID,
		CampID:       campID,
		Description:  req.Description,
		Images:       urls,
		PeopleHelped: req.PeopleHelped,
		HoursWorked:  req.HoursWorked,
		Status:       domain.ReportPending,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.notifier.Publish(ctx, domain.OrgReportsRoom, domain.EventReportNew,
		domain.ReportNewPayload{ReportID: report.ID, VolunteerID: volunteerID, CampID: campID})

	s.logger.Info("work report submitted",
		slog.String("report_id", report.ID.String()),
		slog.String("volunteer_id", volunteerID.String()),
		slog.Int("images", len(urls)),
	)
	return report, nil
}
