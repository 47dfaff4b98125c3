package service

import (
	"context"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/storage/postgres"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// NGOService covers the authenticated organization surface: camp
// lifecycle and work-report moderation.
type NGOService interface {
	DeployCamp(ctx context.Context, req domain.DeployCampRequest) (*domain.ReliefCamp, error)
	AssignVolunteers(ctx context.Context, req domain.AssignVolunteersRequest) (*domain.AssignVolunteersResponse, error)
	CloseCamp(ctx context.Context, campID uuid.UUID) (*domain.ReliefCamp, error)
	GetCamp(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error)
	ListCamps(ctx context.Context, activeOnly bool) ([]*domain.ReliefCamp, error)
	ListCampReports(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error)
	ApproveReport(ctx context.Context, reportID uuid.UUID) (*domain.ApproveReportResponse, error)
	RejectReport(ctx context.Context, reportID uuid.UUID, req domain.RejectReportRequest) (*domain.WorkReport, error)
}

// VolunteerService covers the volunteer registry, self-service camp
// membership and work-report submission.
type VolunteerService interface {
	Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Dashboard(ctx context.Context, id uuid.UUID) (*domain.VolunteerDashboard, error)
	JoinCamp(ctx context.Context, volunteerID, campID uuid.UUID) (*domain.ReliefCamp, error)
	LeaveCamp(ctx context.Context, volunteerID uuid.UUID) error
	SubmitReport(ctx context.Context, volunteerID uuid.UUID, req domain.SubmitWorkReportRequest) (*domain.WorkReport, error)
}

// PublicService is the unauthenticated surface: citizen health intake,
// environment reporting, risk aggregation and live notification streams.
type PublicService interface {
	SubmitHealth(ctx context.Context, req domain.SubmitHealthRequest) (*domain.HealthSample, error)
	HealthOverview(ctx context.Context) (*domain.HealthOverview, error)
	AreaHealthStats(ctx context.Context) ([]domain.AreaHealthStats, error)
	EnvironmentReport(ctx context.Context, area string) (*domain.EnvironmentReport, error)
	AQIHistory(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error)
	AreaRisks(ctx context.Context) ([]domain.AreaRiskRecord, error)
	Stream(ctx context.Context, room string) <-chan domain.Notification
}

// Collaborator ports. Storage contracts mirror the postgres repositories;
// the rest wrap external providers and the notification fabric.

type Geocoder interface {
	Resolve(ctx context.Context, area string) (lat, lng float64, err error)
}

type EnvironmentProvider interface {
	FetchByCoords(ctx context.Context, area string, lat, lng float64) (*domain.EnvironmentSnapshot, error)
}

type EnvSnapshotCache interface {
	Get(ctx context.Context, area string) (*domain.EnvironmentSnapshot, error)
	Set(ctx context.Context, snap *domain.EnvironmentSnapshot) error
}

type RiskScorer interface {
	Score(ctx context.Context, health domain.HealthPayload, env domain.EnvPayload, history []float64) (domain.RiskScore, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type Notifier interface {
	Publish(ctx context.Context, room, event string, payload any)
	Subscribe(ctx context.Context, room string) <-chan domain.Notification
}

type CampRepository interface {
	Create(ctx context.Context, camp *domain.ReliefCamp) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error)
	List(ctx context.Context) ([]*domain.ReliefCamp, error)
	ListByStatus(ctx context.Context, statuses ...domain.CampStatus) ([]*domain.ReliefCamp, error)
	AssignVolunteers(ctx context.Context, campID uuid.UUID, volunteerIDs []uuid.UUID) ([]uuid.UUID, error)
	Close(ctx context.Context, campID uuid.UUID) (*postgres.CloseResult, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Join(ctx context.Context, volunteerID, campID uuid.UUID) error
	Leave(ctx context.Context, volunteerID uuid.UUID) error
}

type WorkReportRepository interface {
	Create(ctx context.Context, report *domain.WorkReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WorkReport, error)
	ListByCamp(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error)
	Approve(ctx context.Context, reportID uuid.UUID) (*postgres.ApproveResult, error)
	Reject(ctx context.Context, reportID uuid.UUID, feedback string) (*domain.WorkReport, error)
}

type HealthRepository interface {
	Create(ctx context.Context, sample *domain.HealthSample) error
	AreaStats(ctx context.Context) ([]domain.AreaHealthStats, error)
	Overview(ctx context.Context) (*domain.HealthOverview, error)
	Areas(ctx context.Context) ([]string, error)
}

type EnvLogRepository interface {
	Insert(ctx context.Context, area string, aqi int) error
	History(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error)
}

type Service struct {
	NGOService       NGOService
	VolunteerService VolunteerService
	PublicService    PublicService
}

func NewService(
	ngoService NGOService,
	volunteerService VolunteerService,
	publicService PublicService,
) *Service {
	return &Service{
		NGOService:       ngoService,
		VolunteerService: volunteerService,
		PublicService:    publicService,
	}
}
