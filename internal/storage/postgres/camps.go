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

type CampRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCampRepo(pool *pgxpool.Pool, logger *slog.Logger) *CampRepo {
	return &CampRepo{pool: pool, logger: logger}
}

const campColumns = `
	id, area, lat, lng, risk_level, status,
	masks, medicines, oxygen, volunteer_assigned, created_at
`

func scanCamp(row pgx.Row) (*domain.ReliefCamp, error) {
	var c domain.ReliefCamp
	err := row.Scan(
		&c.ID,
		&c.Area,
		&c.Lat,
		&c.Lng,
		&c.RiskLevel,
		&c.Status,
		&c.Resources.Masks,
		&c.Resources.Medicines,
		&c.Resources.Oxygen,
		&c.VolunteerAssigned,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *CampRepo) Create(ctx context.Context, camp *domain.ReliefCamp) error {
	const op = "postgres.Camp.Create"

	if camp.ID == uuid.Nil {
		camp.ID = uuid.New()
	}
	if camp.CreatedAt.IsZero() {
		camp.CreatedAt = time.Now().UTC()
	}
	if camp.VolunteerAssigned == nil {
		camp.VolunteerAssigned = []uuid.UUID{}
	}

	const query = `
		INSERT INTO camps (id, area, lat, lng, risk_level, status,
			masks, medicines, oxygen, volunteer_assigned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		camp.ID,
		camp.Area,
		camp.Lat,
		camp.Lng,
		camp.RiskLevel,
		camp.Status,
		camp.Resources.Masks,
		camp.Resources.Medicines,
		camp.Resources.Oxygen,
		camp.VolunteerAssigned,
		camp.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CampRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error) {
	const op = "postgres.Camp.Get"

	query := `SELECT ` + campColumns + ` FROM camps WHERE id = $1`

	camp, err := scanCamp(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return camp, nil
}

func (p *CampRepo) List(ctx context.Context) ([]*domain.ReliefCamp, error) {
	const op = "postgres.Camp.List"

	query := `SELECT ` + campColumns + ` FROM camps ORDER BY created_at DESC`
	return p.queryCamps(ctx, op, query)
}

func (p *CampRepo) ListByStatus(ctx context.Context, statuses ...domain.CampStatus) ([]*domain.ReliefCamp, error) {
	const op = "postgres.Camp.ListByStatus"

	vals := make([]string, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, string(s))
	}

	query := `SELECT ` + campColumns + ` FROM camps WHERE status = ANY($1) ORDER BY created_at DESC`
	return p.queryCamps(ctx, op, query, vals)
}

func (p *CampRepo) queryCamps(ctx context.Context, op, query string, args ...any) ([]*domain.ReliefCamp, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var camps []*domain.ReliefCamp
	for rows.Next() {
		camp, err := scanCamp(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		camps = append(camps, camp)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return camps, nil
}

// AssignVolunteers is the organization bulk path: the roster becomes exactly
// the available subset of the requested ids. Volunteers dropped by the
// replacement are released in the same transaction so the
// available == (assigned_camp IS NULL) invariant never dangles.
func (p *CampRepo) AssignVolunteers(ctx context.Context, campID uuid.UUID, volunteerIDs []uuid.UUID) ([]uuid.UUID, error) {
	const op = "postgres.Camp.AssignVolunteers"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Lock order is always camp first, volunteers second.
	var status domain.CampStatus
	err = tx.QueryRow(ctx, `SELECT status FROM camps WHERE id = $1 FOR UPDATE`, campID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: camp: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	if status == domain.CampClosed {
		return nil, fmt.Errorf("%s: %w", op, e.ErrCampClosed)
	}

	rows, err := tx.Query(ctx, `
		SELECT id FROM volunteers
		WHERE id = ANY($1) AND available
		ORDER BY id
		FOR UPDATE
	`, volunteerIDs)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	assigned := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, e.WrapError(ctx, op, err)
		}
		assigned = append(assigned, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	// Release whoever the replacement drops, including self-joined
	// volunteers not in the new roster.
	_, err = tx.Exec(ctx, `
		UPDATE volunteers
		SET available = TRUE, assigned_camp = NULL
		WHERE assigned_camp = $1 AND NOT (id = ANY($2))
	`, campID, assigned)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE volunteers
		SET available = FALSE, assigned_camp = $1
		WHERE id = ANY($2)
	`, campID, assigned)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	// Re-activation of an already-active camp is a no-op by value.
	_, err = tx.Exec(ctx, `
		UPDATE camps SET volunteer_assigned = $2, status = $3 WHERE id = $1
	`, campID, assigned, domain.CampActive)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return assigned, nil
}

// Close settles rewards for every assigned volunteer (completedCamps,
// badge union), frees them, then marks the camp CLOSED with an empty
// roster. Closing an already-closed camp is a no-op.
func (p *CampRepo) Close(ctx context.Context, campID uuid.UUID) (*CloseResult, error) {
	const op = "postgres.Camp.Close"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + campColumns + ` FROM camps WHERE id = $1 FOR UPDATE`
	camp, err := scanCamp(tx.QueryRow(ctx, query, campID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: camp: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	if camp.Status == domain.CampClosed {
		return &CloseResult{Camp: camp}, tx.Commit(ctx)
	}

	released := append([]uuid.UUID{}, camp.VolunteerAssigned...)

	rows, err := tx.Query(ctx, `
		SELECT id, completed_camps, badges FROM volunteers
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`, camp.VolunteerAssigned)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	type reward struct {
		id        uuid.UUID
		completed int
		badges    []domain.Badge
	}
	var rewards []reward
	for rows.Next() {
		var r reward
		if err := rows.Scan(&r.id, &r.completed, &r.badges); err != nil {
			rows.Close()
			return nil, e.WrapError(ctx, op, err)
		}
		rewards = append(rewards, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	for _, r := range rewards {
		completed := r.completed + 1
		badges := gamify.MergeBadges(r.badges, gamify.BadgesFor(completed))

		_, err = tx.Exec(ctx, `
			UPDATE volunteers
			SET completed_camps = $2,
				badges          = $3,
				available       = TRUE,
				assigned_camp   = NULL
			WHERE id = $1
		`, r.id, completed, badges)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE camps SET status = $2, volunteer_assigned = '{}' WHERE id = $1
	`, campID, domain.CampClosed)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	camp.Status = domain.CampClosed
	camp.VolunteerAssigned = []uuid.UUID{}
	return &CloseResult{Camp: camp, Released: released}, nil
}
