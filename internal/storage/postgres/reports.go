package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/gamify"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWorkReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *WorkReportRepo {
	return &WorkReportRepo{pool: pool, logger: logger}
}

const reportColumns = `
	id, volunteer_id, camp_id, description, images,
	people_helped, hours_worked, status, ngo_feedback, created_at
`

func scanReport(row pgx.Row) (*domain.WorkReport, error) {
	var r domain.WorkReport
	err := row.Scan(
		&r.ID,
		&r.VolunteerID,
		&r.CampID,
		&r.Description,
		&r.Images,
		&r.PeopleHelped,
		&r.HoursWorked,
		&r.Status,
		&r.NGOFeedback,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create relies on the partial unique index over open reports: a second
// PENDING/APPROVED report for the same (volunteer, camp) pair is rejected
// even under concurrent submits.
func (p *WorkReportRepo) Create(ctx context.Context, report *domain.WorkReport) error {
	const op = "postgres.WorkReport.Create"

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.ReportPending
	}
	if report.Images == nil {
		report.Images = []string{}
	}

	const query = `
		INSERT INTO work_reports (id, volunteer_id, camp_id, description, images,
			people_helped, hours_worked, status, ngo_feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.VolunteerID,
		report.CampID,
		report.Description,
		report.Images,
		report.PeopleHelped,
		report.HoursWorked,
		report.Status,
		report.NGOFeedback,
		report.CreatedAt,
	)
	if err != nil {
		wrapped := e.WrapError(ctx, op, err)
		if errors.Is(wrapped, e.ErrUniqueViolation) {
			return fmt.Errorf("%s: %w", op, e.ErrReportOpen)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return wrapped
	}

	return nil
}

func (p *WorkReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.WorkReport, error) {
	const op = "postgres.WorkReport.Get"

	query := `SELECT ` + reportColumns + ` FROM work_reports WHERE id = $1`

	r, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return r, nil
}

func (p *WorkReportRepo) ListByCamp(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error) {
	const op = "postgres.WorkReport.ListByCamp"

	query := `SELECT ` + reportColumns + ` FROM work_reports WHERE camp_id = $1 ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query, campID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.WorkReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

// Approve applies the full reward settlement in one transaction. Approving
// an already-approved report is an idempotent no-op; approving a rejected
// report is a conflict (both states are terminal).
func (p *WorkReportRepo) Approve(ctx context.Context, reportID uuid.UUID) (*ApproveResult, error) {
	const op = "postgres.WorkReport.Approve"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + reportColumns + ` FROM work_reports WHERE id = $1 FOR UPDATE`
	report, err := scanReport(tx.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: report: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	vQuery := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1 FOR UPDATE`
	volunteer, err := scanVolunteer(tx.QueryRow(ctx, vQuery, report.VolunteerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: volunteer: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	if report.Status == domain.ReportApproved {
		return &ApproveResult{Report: report, Volunteer: volunteer, AlreadyApproved: true}, tx.Commit(ctx)
	}
	if report.Status == domain.ReportRejected {
		return nil, fmt.Errorf("%s: report already rejected: %w", op, e.ErrConflict)
	}

	xpEarned := gamify.ComputeXP(report.HoursWorked, report.PeopleHelped, len(report.Images))

	volunteer.CompletedCamps++
	volunteer.TotalPeopleHelped += report.PeopleHelped
	volunteer.TotalHours += report.HoursWorked
	volunteer.XP += xpEarned
	volunteer.Level = gamify.ComputeLevel(volunteer.XP)
	volunteer.Badges = gamify.MergeBadges(volunteer.Badges, gamify.BadgesFor(volunteer.CompletedCamps))

	_, err = tx.Exec(ctx, `
		UPDATE volunteers
		SET completed_camps     = $2,
			total_people_helped = $3,
			total_hours         = $4,
			xp                  = $5,
			level               = $6,
			badges              = $7
		WHERE id = $1
	`, volunteer.ID,
		volunteer.CompletedCamps,
		volunteer.TotalPeopleHelped,
		volunteer.TotalHours,
		volunteer.XP,
		volunteer.Level,
		volunteer.Badges,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx, `UPDATE work_reports SET status = $2 WHERE id = $1`, reportID, domain.ReportApproved)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	report.Status = domain.ReportApproved
	return &ApproveResult{Report: report, Volunteer: volunteer, XPEarned: xpEarned}, nil
}

// Reject stores the feedback with no reward side effects. Rejecting twice
// is a no-op; rejecting an approved report is a conflict.
func (p *WorkReportRepo) Reject(ctx context.Context, reportID uuid.UUID, feedback string) (*domain.WorkReport, error) {
	const op = "postgres.WorkReport.Reject"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + reportColumns + ` FROM work_reports WHERE id = $1 FOR UPDATE`
	report, err := scanReport(tx.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: report: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	if report.Status == domain.ReportRejected {
		return report, tx.Commit(ctx)
	}
	if report.Status == domain.ReportApproved {
		return nil, fmt.Errorf("%s: report already approved: %w", op, e.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		UPDATE work_reports SET status = $2, ngo_feedback = $3 WHERE id = $1
	`, reportID, domain.ReportRejected, feedback)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	report.Status = domain.ReportRejected
	report.NGOFeedback = feedback
	return report, nil
}
