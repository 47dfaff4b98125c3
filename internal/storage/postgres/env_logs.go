package postgres

import (
	"context"
	"log/slog"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EnvLogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEnvLogRepo(pool *pgxpool.Pool, logger *slog.Logger) *EnvLogRepo {
	return &EnvLogRepo{pool: pool, logger: logger}
}

func (p *EnvLogRepo) Insert(ctx context.Context, area string, aqi int) error {
	const op = "postgres.EnvLog.Insert"

	_, err := p.pool.Exec(ctx, `INSERT INTO env_logs (area, aqi) VALUES ($1, $2)`, area, aqi)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *EnvLogRepo) History(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error) {
	const op = "postgres.EnvLog.History"

	if limit <= 0 {
		limit = 24
	}

	// newest N, returned oldest first for the smoothing window
	const query = `
		SELECT area, aqi, created_at FROM (
			SELECT area, aqi, created_at
			FROM env_logs
			WHERE area = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, area, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var entries []domain.EnvLogEntry
	for rows.Next() {
		var entry domain.EnvLogEntry
		if err := rows.Scan(&entry.Area, &entry.AQI, &entry.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return entries, nil
}
