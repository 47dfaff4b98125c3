package postgres

import (
	"context"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"

	"github.com/google/uuid"
)

// Every mutating method that touches shared camp/volunteer state runs as a
// single transaction with row locks, so concurrent assign/join/close/approve
// calls on the same entity serialize instead of interleaving.

type CampRepository interface {
	Create(ctx context.Context, camp *domain.ReliefCamp) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error)
	List(ctx context.Context) ([]*domain.ReliefCamp, error)
	ListByStatus(ctx context.Context, statuses ...domain.CampStatus) ([]*domain.ReliefCamp, error)
	// AssignVolunteers replaces the roster with the available subset of the
	// requested ids and releases volunteers dropped by the replacement.
	// Returns the ids actually assigned (may be fewer than requested).
	AssignVolunteers(ctx context.Context, campID uuid.UUID, volunteerIDs []uuid.UUID) ([]uuid.UUID, error)
	// Close settles rewards for the assigned volunteers, frees them, and
	// moves the camp to CLOSED.
	Close(ctx context.Context, campID uuid.UUID) (*CloseResult, error)
}

type CloseResult struct {
	Camp *domain.ReliefCamp
	// Released lists the volunteers who were assigned at close time and
	// received credit.
	Released []uuid.UUID
}

type VolunteerRepository interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Join(ctx context.Context, volunteerID, campID uuid.UUID) error
	Leave(ctx context.Context, volunteerID uuid.UUID) error
}

type ApproveResult struct {
	Report    *domain.WorkReport
	Volunteer *domain.Volunteer
	XPEarned  int
	// AlreadyApproved marks the idempotent path: no side effects re-applied.
	AlreadyApproved bool
}

type WorkReportRepository interface {
	Create(ctx context.Context, report *domain.WorkReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WorkReport, error)
	ListByCamp(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error)
	Approve(ctx context.Context, reportID uuid.UUID) (*ApproveResult, error)
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
	// History returns up to limit readings for the area, oldest first.
	History(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error)
}
