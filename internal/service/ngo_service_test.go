package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service"
	mock_service "github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service/mocks"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/storage/postgres"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNGOService_ListCamps_ActiveOnlyFiltersByStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	active := []*domain.ReliefCamp{{ID: uuid.New(), Status: domain.CampActive}}
	camps.EXPECT().
		ListByStatus(gomock.Any(), domain.CampActive, domain.CampPending).
		Return(active, nil).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	got, err := svc.ListCamps(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Status != domain.CampActive {
		t.Fatalf("unexpected listing: %+v", got)
	}

	all := []*domain.ReliefCamp{{ID: uuid.New()}, {ID: uuid.New()}}
	camps.EXPECT().List(gomock.Any()).Return(all, nil).Times(1)

	got, err = svc.ListCamps(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected full listing, got %d", len(got))
	}
}

func TestNGOService_DeployCamp_NormalizesRiskAndAllocates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	var created *domain.ReliefCamp
	camps.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, camp *domain.ReliefCamp) error {
			created = camp
			return nil
		}).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	camp, err := svc.DeployCamp(context.Background(), domain.DeployCampRequest{
		Area:      "Sector 12",
		Lat:       28.6,
		Lng:       77.2,
		RiskLevel: "high",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if camp.ID == uuid.Nil {
		t.Fatalf("camp.ID is nil")
	}
	if camp.RiskLevel != domain.RiskHigh {
		t.Errorf("risk = %v, want HIGH", camp.RiskLevel)
	}
	if camp.Status != domain.CampActive {
		t.Errorf("status = %v, want ACTIVE", camp.Status)
	}
	want := domain.Resources{Masks: 1000, Medicines: 500, Oxygen: 200}
	if camp.Resources != want {
		t.Errorf("resources = %+v, want %+v", camp.Resources, want)
	}
	if created == nil || created.ID != camp.ID {
		t.Errorf("repo received a different camp")
	}
}

func TestNGOService_DeployCamp_InvalidRiskRejectedBeforeMutation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Create expectation: the repo must never be touched.
	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	_, err := svc.DeployCamp(context.Background(), domain.DeployCampRequest{
		Area:      "Sector 12",
		Lat:       28.6,
		Lng:       77.2,
		RiskLevel: "catastrophic",
	})
	if !errors.Is(err, e.ErrInvalidRiskLevel) {
		t.Fatalf("err = %v, want ErrInvalidRiskLevel", err)
	}
}

func TestNGOService_DeployCamp_GeocodesWhenCoordsOmitted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	geocoder.EXPECT().
		Resolve(gomock.Any(), "Sector 9").
		Return(19.07, 72.87, nil).
		Times(1)
	camps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	camp, err := svc.DeployCamp(context.Background(), domain.DeployCampRequest{
		Area:      "Sector 9",
		RiskLevel: "LOW",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if camp.Lat != 19.07 || camp.Lng != 72.87 {
		t.Errorf("coords = (%v, %v), want geocoded (19.07, 72.87)", camp.Lat, camp.Lng)
	}
}

func TestNGOService_AssignVolunteers_NotifiesOnlyAssigned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	campID := uuid.New()
	v1, v2 := uuid.New(), uuid.New()

	// Only v1 was available; v2 is silently skipped.
	camps.EXPECT().
		AssignVolunteers(gomock.Any(), campID, []uuid.UUID{v1, v2}).
		Return([]uuid.UUID{v1}, nil).
		Times(1)
	camps.EXPECT().
		Get(gomock.Any(), campID).
		Return(&domain.ReliefCamp{ID: campID, Area: "Sector 5"}, nil).
		Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), domain.VolunteerRoom(v1), domain.EventCampAssigned,
			domain.CampAssignedPayload{CampID: campID, Area: "Sector 5"}).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	resp, err := svc.AssignVolunteers(context.Background(), domain.AssignVolunteersRequest{
		CampID:       campID.String(),
		VolunteerIDs: []string{v1.String(), v2.String()},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
}

func TestNGOService_AssignVolunteers_ClosedCamp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	campID := uuid.New()
	camps.EXPECT().
		AssignVolunteers(gomock.Any(), campID, gomock.Any()).
		Return(nil, e.ErrCampClosed).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	_, err := svc.AssignVolunteers(context.Background(), domain.AssignVolunteersRequest{
		CampID:       campID.String(),
		VolunteerIDs: []string{uuid.New().String()},
	})
	if !errors.Is(err, e.ErrCampClosed) {
		t.Fatalf("err = %v, want ErrCampClosed", err)
	}
}

func TestNGOService_CloseCamp_NotifiesReleased(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	campID := uuid.New()
	v1, v2 := uuid.New(), uuid.New()

	camps.EXPECT().
		Close(gomock.Any(), campID).
		Return(&postgres.CloseResult{
			Camp:     &domain.ReliefCamp{ID: campID, Area: "Sector 5", Status: domain.CampClosed},
			Released: []uuid.UUID{v1, v2},
		}, nil).
		Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), domain.VolunteerRoom(v1), domain.EventCampClosed, gomock.Any()).
		Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), domain.VolunteerRoom(v2), domain.EventCampClosed, gomock.Any()).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	camp, err := svc.CloseCamp(context.Background(), campID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if camp.Status != domain.CampClosed {
		t.Errorf("status = %v, want CLOSED", camp.Status)
	}
}

func TestNGOService_ApproveReport_NotifiesVolunteer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	reportID := uuid.New()
	volunteerID := uuid.New()

	reports.EXPECT().
		Approve(gomock.Any(), reportID).
		Return(&postgres.ApproveResult{
			Report:    &domain.WorkReport{ID: reportID, VolunteerID: volunteerID, Status: domain.ReportApproved},
			Volunteer: &domain.Volunteer{ID: volunteerID, Level: "Helper"},
			XPEarned:  190,
		}, nil).
		Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), domain.VolunteerRoom(volunteerID), domain.EventReportApproved,
			domain.ReportApprovedPayload{ReportID: reportID, XPEarned: 190, Level: "Helper"}).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	resp, err := svc.ApproveReport(context.Background(), reportID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.XPEarned != 190 || resp.Level != "Helper" {
		t.Errorf("resp = %+v, want xp 190 level Helper", resp)
	}
}

func TestNGOService_ApproveReport_IdempotentNoRenotify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	reportID := uuid.New()
	volunteerID := uuid.New()

	// Second approval: repo reports the no-op path, no notification fires.
	reports.EXPECT().
		Approve(gomock.Any(), reportID).
		Return(&postgres.ApproveResult{
			Report:          &domain.WorkReport{ID: reportID, VolunteerID: volunteerID, Status: domain.ReportApproved},
			Volunteer:       &domain.Volunteer{ID: volunteerID, Level: "Helper"},
			XPEarned:        0,
			AlreadyApproved: true,
		}, nil).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	resp, err := svc.ApproveReport(context.Background(), reportID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !resp.AlreadyApproved {
		t.Errorf("AlreadyApproved = false, want true")
	}
	if resp.XPEarned != 0 {
		t.Errorf("XPEarned = %d, want 0 on repeat approval", resp.XPEarned)
	}
}

func TestNGOService_RejectReport_ApprovedConflicts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	camps := mock_service.NewMockCampRepository(ctrl)
	reports := mock_service.NewMockWorkReportRepository(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	reportID := uuid.New()
	reports.EXPECT().
		Reject(gomock.Any(), reportID, "blurred photos").
		Return(nil, e.ErrConflict).
		Times(1)

	svc := service.NewNGOService(camps, reports, geocoder, notifier, discardLogger())

	_, err := svc.RejectReport(context.Background(), reportID, domain.RejectReportRequest{Feedback: "blurred photos"})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}
