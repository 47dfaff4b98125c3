package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHealthRepo(pool *pgxpool.Pool, logger *slog.Logger) *HealthRepo {
	return &HealthRepo{pool: pool, logger: logger}
}

func (p *HealthRepo) Create(ctx context.Context, sample *domain.HealthSample) error {
	const op = "postgres.Health.Create"

	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}
	if sample.Symptoms == nil {
		sample.Symptoms = []string{}
	}

	const query = `
		INSERT INTO health_checks (id, sleep, stress, symptoms, area, lat, lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		sample.ID,
		sample.SleepHours,
		sample.Stress,
		sample.Symptoms,
		sample.Area,
		sample.Lat,
		sample.Lng,
		sample.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// AreaStats groups samples by area with flattened symptom lists; this is
// the input shape of the risk aggregation pipeline.
func (p *HealthRepo) AreaStats(ctx context.Context) ([]domain.AreaHealthStats, error) {
	const op = "postgres.Health.AreaStats"

	// Symptoms are flattened in a separate aggregate so multi-symptom
	// samples cannot weight the count and averages.
	const query = `
		SELECT h.area,
			   COUNT(*),
			   COALESCE(AVG(h.sleep), 0),
			   COALESCE(AVG(h.stress), 0),
			   COALESCE(sym.list, '{}')
		FROM health_checks h
		LEFT JOIN (
			SELECT area, array_agg(s) AS list
			FROM health_checks, unnest(symptoms) AS s
			GROUP BY area
		) sym ON sym.area = h.area
		WHERE h.area <> ''
		GROUP BY h.area, sym.list
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var stats []domain.AreaHealthStats
	for rows.Next() {
		var s domain.AreaHealthStats
		if err := rows.Scan(&s.Area, &s.Reports, &s.AvgSleep, &s.AvgStress, &s.Symptoms); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}

func (p *HealthRepo) Overview(ctx context.Context) (*domain.HealthOverview, error) {
	const op = "postgres.Health.Overview"

	const query = `
		SELECT COUNT(*), COALESCE(AVG(sleep), 0), COALESCE(AVG(stress), 0)
		FROM health_checks
	`

	var o domain.HealthOverview
	if err := p.pool.QueryRow(ctx, query).Scan(&o.TotalReports, &o.AvgSleep, &o.AvgStress); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &o, nil
}

func (p *HealthRepo) Areas(ctx context.Context) ([]string, error) {
	const op = "postgres.Health.Areas"

	const query = `SELECT DISTINCT area FROM health_checks WHERE area <> '' ORDER BY area`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var areas []string
	for rows.Next() {
		var area string
		if err := rows.Scan(&area); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return areas, nil
}
