package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service"
	mock_service "github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service/mocks"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

type volunteerMocks struct {
	volunteers *mock_service.MockVolunteerRepository
	camps      *mock_service.MockCampRepository
	reports    *mock_service.MockWorkReportRepository
	images     *mock_service.MockImageUploader
	notifier   *mock_service.MockNotifier
}

func newVolunteerService(t *testing.T) (service.VolunteerService, volunteerMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := volunteerMocks{
		volunteers: mock_service.NewMockVolunteerRepository(ctrl),
		camps:      mock_service.NewMockCampRepository(ctrl),
		reports:    mock_service.NewMockWorkReportRepository(ctrl),
		images:     mock_service.NewMockImageUploader(ctrl),
		notifier:   mock_service.NewMockNotifier(ctrl),
	}
	svc := service.NewVolunteerService(m.volunteers, m.camps, m.reports, m.images, m.notifier, discardLogger())
	return svc, m, ctrl
}

func TestVolunteerService_Register_Defaults(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	var created *domain.Volunteer
	m.volunteers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *domain.Volunteer) error {
			created = v
			return nil
		}).
		Times(1)

	v, err := svc.Register(context.Background(), domain.RegisterVolunteerRequest{
		Name:  "Asha",
		Phone: "+91-9999999999",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.ID == uuid.Nil {
		t.Fatalf("volunteer.ID is nil")
	}
	if !v.Available {
		t.Errorf("new volunteer must start available")
	}
	if v.Level != "Rookie" {
		t.Errorf("level = %q, want Rookie", v.Level)
	}
	if created == nil || created.ID != v.ID {
		t.Errorf("repo received a different volunteer")
	}
}

func TestVolunteerService_JoinCamp_PublishesAssignment(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	volunteerID, campID := uuid.New(), uuid.New()

	m.volunteers.EXPECT().Join(gomock.Any(), volunteerID, campID).Return(nil).Times(1)
	m.camps.EXPECT().
		Get(gomock.Any(), campID).
		Return(&domain.ReliefCamp{ID: campID, Area: "Sector 5"}, nil).
		Times(1)
	m.notifier.EXPECT().
		Publish(gomock.Any(), domain.VolunteerRoom(volunteerID), domain.EventCampAssigned,
			domain.CampAssignedPayload{CampID: campID, Area: "Sector 5"}).
		Times(1)

	camp, err := svc.JoinCamp(context.Background(), volunteerID, campID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if camp.ID != campID {
		t.Errorf("camp.ID = %v, want %v", camp.ID, campID)
	}
}

func TestVolunteerService_JoinCamp_AlreadyAssigned(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	volunteerID, campID := uuid.New(), uuid.New()
	m.volunteers.EXPECT().
		Join(gomock.Any(), volunteerID, campID).
		Return(e.ErrAlreadyAssigned).
		Times(1)

	_, err := svc.JoinCamp(context.Background(), volunteerID, campID)
	if !errors.Is(err, e.ErrAlreadyAssigned) {
		t.Fatalf("err = %v, want ErrAlreadyAssigned", err)
	}
}

func TestVolunteerService_Dashboard_WithAssignedCamp(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	volunteerID, campID := uuid.New(), uuid.New()

	m.volunteers.EXPECT().
		Get(gomock.Any(), volunteerID).
		Return(&domain.Volunteer{ID: volunteerID, AssignedCamp: &campID}, nil).
		Times(1)
	m.camps.EXPECT().
		Get(gomock.Any(), campID).
		Return(&domain.ReliefCamp{ID: campID}, nil).
		Times(1)

	dash, err := svc.Dashboard(context.Background(), volunteerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dash.AssignedCamp == nil || dash.AssignedCamp.ID != campID {
		t.Errorf("dashboard camp missing or wrong")
	}
}

func TestVolunteerService_SubmitReport_UploadsThenPersists(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	volunteerID, campID := uuid.New(), uuid.New()
	raw := []byte("fake-jpeg-bytes")

	m.images.EXPECT().
		Upload(gomock.Any(), "site.jpg", raw).
		Return("https://bucket.s3.region.amazonaws.com/reports/abc.jpg", nil).
		Times(1)

	var created *domain.WorkReport
	m.reports.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.WorkReport) error {
			created = r
			return nil
		}).
		Times(1)
	m.notifier.EXPECT().
		Publish(gomock.Any(), domain.OrgReportsRoom, domain.EventReportNew, gomock.Any()).
		Times(1)

	report, err := svc.SubmitReport(context.Background(), volunteerID, domain.SubmitWorkReportRequest{
		CampID:       campID.String(),
		Description:  "distributed masks",
		PeopleHelped: 40,
		HoursWorked:  6,
		Images: []domain.ImageBlob{
			{Filename: "site.jpg", Data: base64.StdEncoding.EncodeToString(raw)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Status != domain.ReportPending {
		t.Errorf("status = %v, want PENDING", report.Status)
	}
	if len(report.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(report.Images))
	}
	if created == nil || created.ID != report.ID {
		t.Errorf("repo received a different report")
	}
}

func TestVolunteerService_SubmitReport_UploadFailureIsFatal(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	volunteerID, campID := uuid.New(), uuid.New()
	raw := []byte("fake-jpeg-bytes")

	// Upload fails: nothing is persisted, no event fires.
	m.images.EXPECT().
		Upload(gomock.Any(), "site.jpg", raw).
		Return("", e.ErrUploadFailed).
		Times(1)

	_, err := svc.SubmitReport(context.Background(), volunteerID, domain.SubmitWorkReportRequest{
		CampID:      campID.String(),
		Description: "distributed masks",
		Images: []domain.ImageBlob{
			{Filename: "site.jpg", Data: base64.StdEncoding.EncodeToString(raw)},
		},
	})
	if !errors.Is(err, e.ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
}

func TestVolunteerService_SubmitReport_BadBase64(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	_, err := svc.SubmitReport(context.Background(), uuid.New(), domain.SubmitWorkReportRequest{
		CampID:      uuid.New().String(),
		Description: "x",
		Images:      []domain.ImageBlob{{Filename: "a.jpg", Data: "%%% not base64 %%%"}},
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestVolunteerService_SubmitReport_OpenReportConflict(t *testing.T) {
	t.Parallel()

	svc, m, ctrl := newVolunteerService(t)
	defer ctrl.Finish()

	m.reports.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(e.ErrReportOpen).
		Times(1)

	_, err := svc.SubmitReport(context.Background(), uuid.New(), domain.SubmitWorkReportRequest{
		CampID:      uuid.New().String(),
		Description: "second submission",
	})
	if !errors.Is(err, e.ErrReportOpen) {
		t.Fatalf("err = %v, want ErrReportOpen", err)
	}
}
