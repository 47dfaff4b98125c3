package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
)

type ngoService struct {
	camps    CampRepository
	reports  WorkReportRepository
	geocoder Geocoder
	notifier Notifier
	logger   *slog.Logger
}

func NewNGOService(
	camps CampRepository,
	reports WorkReportRepository,
	geocoder Geocoder,
	notifier Notifier,
	logger *slog.Logger,
) NGOService {
	return &ngoService{
		camps:    camps,
		reports:  reports,
		geocoder: geocoder,
		notifier: notifier,
		logger:   logger,
	}
}

// DeployCamp validates the risk level before any mutation and allocates
// resources by tier. Camps deploy ACTIVE and are staffed afterwards.
func (s *ngoService) DeployCamp(ctx context.Context, req domain.DeployCampRequest) (*domain.ReliefCamp, error) {
	const op = "service.NGO.DeployCamp"

	risk, err := domain.ParseRiskLevel(req.RiskLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidRiskLevel)
	}

	lat, lng := req.Lat, req.Lng
	if lat == 0 && lng == 0 {
		// Coordinates omitted: resolve from the area name, best effort.
		if gLat, gLng, gErr := s.geocoder.Resolve(ctx, req.Area); gErr != nil {
			s.logger.Warn("deploy geocode failed", slog.String("area", req.Area), slog.Any("error", gErr))
		} else {
			lat, lng = gLat, gLng
		}
	}

	camp := &domain.ReliefCamp{
		ID:                uuid.New(),
		Area:              req.Area,
		Lat:               lat,
		Lng:               lng,
		RiskLevel:         risk,
		Status:            domain.CampActive,
		Resources:         domain.ResourceTier(risk),
		VolunteerAssigned: []uuid.UUID{},
	}

	if err := s.camps.Create(ctx, camp); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("camp deployed",
		slog.String("camp_id", camp.ID.String()),
		slog.String("area", camp.Area),
		slog.String("risk", string(camp.RiskLevel)),
	)
	return camp, nil
}

func (s *ngoService) AssignVolunteers(ctx context.Context, req domain.AssignVolunteersRequest) (*domain.AssignVolunteersResponse, error) {
	const op = "service.NGO.AssignVolunteers"

	campID, err := uuid.Parse(req.CampID)
	if err != nil {
		return nil, fmt.Errorf("%s: camp_id: %w", op, e.ErrInvalidInput)
	}

	ids := make([]uuid.UUID, 0, len(req.VolunteerIDs))
	for _, raw := range req.VolunteerIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: volunteer_ids: %w", op, e.ErrInvalidInput)
		}
		ids = append(ids, id)
	}

	assigned, err := s.camps.AssignVolunteers(ctx, campID, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	camp, err := s.camps.Get(ctx, campID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, volunteerID := range assigned {
		s.notifier.Publish(ctx, domain.VolunteerRoom(volunteerID), domain.EventCampAssigned,
			domain.CampAssignedPayload{CampID: campID, Area: camp.Area})
	}

	s.logger.Info("volunteers assigned",
		slog.String("camp_id", campID.String()),
		slog.Int("requested", len(ids)),
		slog.Int("assigned", len(assigned)),
	)
	return &domain.AssignVolunteersResponse{Count: len(assigned)}, nil
}

func (s *ngoService) CloseCamp(ctx context.Context, campID uuid.UUID) (*domain.ReliefCamp, error) {
	const op = "service.NGO.CloseCamp"

	res, err := s.camps.Close(ctx, campID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, volunteerID := range res.Released {
		s.notifier.Publish(ctx, domain.VolunteerRoom(volunteerID), domain.EventCampClosed,
			domain.CampClosedPayload{CampID: campID, Area: res.Camp.Area})
	}

	s.logger.Info("camp closed",
		slog.String("camp_id", campID.String()),
		slog.Int("released", len(res.Released)),
	)
	return res.Camp, nil
}

func (s *ngoService) GetCamp(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error) {
	return s.camps.Get(ctx, id)
}

// ListCamps with activeOnly narrows the listing to deployable camps
// (ACTIVE and PENDING), the set volunteers can still join.
func (s *ngoService) ListCamps(ctx context.Context, activeOnly bool) ([]*domain.ReliefCamp, error) {
	if activeOnly {
		return s.camps.ListByStatus(ctx, domain.CampActive, domain.CampPending)
	}
	return s.camps.List(ctx)
}

func (s *ngoService) ListCampReports(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error) {
	return s.reports.ListByCamp(ctx, campID)
}

// ApproveReport is idempotent: approving an approved report returns the
// stored state without re-crediting XP or re-notifying.
func (s *ngoService) ApproveReport(ctx context.Context, reportID uuid.UUID) (*domain.ApproveReportResponse, error) {
	const op = "service.NGO.ApproveReport"

	res, err := s.reports.Approve(ctx, reportID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !res.AlreadyApproved {
		s.notifier.Publish(ctx, domain.VolunteerRoom(res.Report.VolunteerID), domain.EventReportApproved,
			domain.ReportApprovedPayload{
				ReportID: res.Report.ID,
				XPEarned: res.XPEarned,
				Level:    res.Volunteer.Level,
			})

		s.logger.Info("report approved",
			slog.String("report_id", reportID.String()),
			slog.Int("xp_earned", res.XPEarned),
			slog.String("level", res.Volunteer.Level),
		)
	}

	return &domain.ApproveReportResponse{
		Report:          res.Report,
		XPEarned:        res.XPEarned,
		Level:           res.Volunteer.Level,
		AlreadyApproved: res.AlreadyApproved,
	}, nil
}

func (s *ngoService) RejectReport(ctx context.Context, reportID uuid.UUID, req domain.RejectReportRequest) (*domain.WorkReport, error) {
	const op = "service.NGO.RejectReport"

	report, err := s.reports.Reject(ctx, reportID, req.Feedback)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if report.Status == domain.ReportRejected {
		s.notifier.Publish(ctx, domain.VolunteerRoom(report.VolunteerID), domain.EventReportRejected,
			domain.ReportRejectedPayload{ReportID: report.ID, Feedback: report.NGOFeedback})
	}

	s.logger.Info("report rejected", slog.String("report_id", reportID.String()))
	return report, nil
}
