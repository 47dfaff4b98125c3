package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VolunteerRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVolunteerRepo(pool *pgxpool.Pool, logger *slog.Logger) *VolunteerRepo {
	return &VolunteerRepo{pool: pool, logger: logger}
}

const volunteerColumns = `
	id, name, phone, available, assigned_camp,
	completed_camps, total_people_helped, total_hours, xp, level, badges
`

func scanVolunteer(row pgx.Row) (*domain.Volunteer, error) {
	var v domain.Volunteer
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Phone,
		&v.Available,
		&v.AssignedCamp,
		&v.CompletedCamps,
		&v.TotalPeopleHelped,
		&v.TotalHours,
		&v.XP,
		&v.Level,
		&v.Badges,
	)
	if err != nil {
		return nil, err
	}
	if v.Badges == nil {
		v.Badges = []domain.Badge{}
	}
	return &v, nil
}

func (p *VolunteerRepo) Create(ctx context.Context, v *domain.Volunteer) error {
	const op = "postgres.Volunteer.Create"

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.Available = true
	v.AssignedCamp = nil
	if v.Level == "" {
		v.Level = "Rookie"
	}
	if v.Badges == nil {
		v.Badges = []domain.Badge{}
	}

	const query = `
		INSERT INTO volunteers (id, name, phone, available, assigned_camp,
			completed_camps, total_people_helped, total_hours, xp, level, badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		v.ID,
		v.Name,
		v.Phone,
		v.Available,
		v.AssignedCamp,
		v.CompletedCamps,
		v.TotalPeopleHelped,
		v.TotalHours,
		v.XP,
		v.Level,
		v.Badges,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *VolunteerRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	const op = "postgres.Volunteer.Get"

	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1`

	v, err := scanVolunteer(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return v, nil
}

func (p *VolunteerRepo) List(ctx context.Context) ([]*domain.Volunteer, error) {
	const op = "postgres.Volunteer.List"

	query := `SELECT ` + volunteerColumns + ` FROM volunteers ORDER BY name`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var volunteers []*domain.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return volunteers, nil
}

// Join is the self-service path: append-once to the camp roster, never a
// destructive overwrite, so prior organization assignments survive.
func (p *VolunteerRepo) Join(ctx context.Context, volunteerID, campID uuid.UUID) error {
	const op = "postgres.Volunteer.Join"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Same lock order as the bulk path: camp row first.
	var status domain.CampStatus
	err = tx.QueryRow(ctx, `SELECT status FROM camps WHERE id = $1 FOR UPDATE`, campID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: camp: %w", op, e.ErrNotFound)
		}
		return e.WrapError(ctx, op, err)
	}
	if status != domain.CampActive && status != domain.CampPending {
		return fmt.Errorf("%s: %w", op, e.ErrCampClosed)
	}

	var assignedCamp *uuid.UUID
	err = tx.QueryRow(ctx, `SELECT assigned_camp FROM volunteers WHERE id = $1 FOR UPDATE`, volunteerID).Scan(&assignedCamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: volunteer: %w", op, e.ErrNotFound)
		}
		return e.WrapError(ctx, op, err)
	}
	if assignedCamp != nil {
		return fmt.Errorf("%s: %w", op, e.ErrAlreadyAssigned)
	}

	_, err = tx.Exec(ctx, `
		UPDATE volunteers SET available = FALSE, assigned_camp = $2 WHERE id = $1
	`, volunteerID, campID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE camps
		SET volunteer_assigned = array_append(volunteer_assigned, $2)
		WHERE id = $1 AND NOT ($2 = ANY(volunteer_assigned))
	`, campID, volunteerID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// leaveAttempts bounds the retry loop in Leave when a concurrent assignment
// moves the volunteer between the peek and the lock.
const leaveAttempts = 3

// Leave clears the assignment; removing the volunteer from a camp that no
// longer exists is a no-op.
func (p *VolunteerRepo) Leave(ctx context.Context, volunteerID uuid.UUID) error {
	const op = "postgres.Volunteer.Leave"

	for attempt := 0; attempt < leaveAttempts; attempt++ {
		done, err := p.tryLeave(ctx, op, volunteerID)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		p.logger.Debug("assignment moved during leave, retrying",
			slog.String("op", op), slog.String("volunteer_id", volunteerID.String()))
	}

	return fmt.Errorf("%s: %w", op, e.ErrConflict)
}

// tryLeave runs one leave transaction. It reports done=false when the
// volunteer's assignment changed between the unlocked peek and the row lock,
// in which case the transaction was rolled back and the caller may retry.
func (p *VolunteerRepo) tryLeave(ctx context.Context, op string, volunteerID uuid.UUID) (bool, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return false, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Peek without a lock first so the camp row can be locked before the
	// volunteer row, same order as the assign/join/close paths.
	var peeked *uuid.UUID
	err = tx.QueryRow(ctx, `SELECT assigned_camp FROM volunteers WHERE id = $1`, volunteerID).Scan(&peeked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: volunteer: %w", op, e.ErrNotFound)
		}
		return false, e.WrapError(ctx, op, err)
	}

	if peeked != nil {
		var campID uuid.UUID
		err = tx.QueryRow(ctx, `SELECT id FROM camps WHERE id = $1 FOR UPDATE`, *peeked).Scan(&campID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return false, e.WrapError(ctx, op, err)
		}
	}

	var assignedCamp *uuid.UUID
	err = tx.QueryRow(ctx, `SELECT assigned_camp FROM volunteers WHERE id = $1 FOR UPDATE`, volunteerID).Scan(&assignedCamp)
	if err != nil {
		return false, e.WrapError(ctx, op, err)
	}

	// The locked read must match the peek: otherwise the roster row being
	// edited below belongs to a camp we never locked.
	if !uuidPtrEqual(peeked, assignedCamp) {
		return false, nil
	}

	if assignedCamp != nil {
		_, err = tx.Exec(ctx, `
			UPDATE camps
			SET volunteer_assigned = array_remove(volunteer_assigned, $2)
			WHERE id = $1
		`, *assignedCamp, volunteerID)
		if err != nil {
			return false, e.WrapError(ctx, op, err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE volunteers SET available = TRUE, assigned_camp = NULL WHERE id = $1
	`, volunteerID)
	if err != nil {
		return false, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, e.WrapError(ctx, op, err)
	}

	return true, nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
