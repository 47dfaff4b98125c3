package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool       *pgxpool.Pool
	Camp       CampRepository
	Volunteer  VolunteerRepository
	WorkReport WorkReportRepository
	Health     HealthRepository
	EnvLog     EnvLogRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.Database)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.InitSchema", err)
	}

	pg := &Postgres{
		Pool:       pool,
		Camp:       NewCampRepo(pool, logger),
		Volunteer:  NewVolunteerRepo(pool, logger),
		WorkReport: NewWorkReportRepo(pool, logger),
		Health:     NewHealthRepo(pool, logger),
		EnvLog:     NewEnvLogRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS volunteers (
			id                  UUID PRIMARY KEY,
			name                TEXT NOT NULL,
			phone               TEXT NOT NULL,
			available           BOOLEAN NOT NULL DEFAULT TRUE,
			assigned_camp       UUID,
			completed_camps     INT NOT NULL DEFAULT 0,
			total_people_helped INT NOT NULL DEFAULT 0,
			total_hours         INT NOT NULL DEFAULT 0,
			xp                  INT NOT NULL DEFAULT 0,
			level               TEXT NOT NULL DEFAULT 'Rookie',
			badges              JSONB NOT NULL DEFAULT '[]',
			CONSTRAINT availability_matches_assignment
				CHECK (available = (assigned_camp IS NULL))
		);

		CREATE TABLE IF NOT EXISTS camps (
			id                 UUID PRIMARY KEY,
			area               TEXT NOT NULL,
			lat                DOUBLE PRECISION NOT NULL,
			lng                DOUBLE PRECISION NOT NULL,
			risk_level         TEXT NOT NULL,
			status             TEXT NOT NULL,
			masks              INT NOT NULL,
			medicines          INT NOT NULL,
			oxygen             INT NOT NULL,
			volunteer_assigned UUID[] NOT NULL DEFAULT '{}',
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS work_reports (
			id            UUID PRIMARY KEY,
			volunteer_id  UUID NOT NULL REFERENCES volunteers(id),
			camp_id       UUID NOT NULL REFERENCES camps(id),
			description   TEXT NOT NULL,
			images        TEXT[] NOT NULL DEFAULT '{}',
			people_helped INT NOT NULL DEFAULT 0,
			hours_worked  INT NOT NULL DEFAULT 0,
			status        TEXT NOT NULL DEFAULT 'PENDING',
			ngo_feedback  TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS work_reports_camp_idx ON work_reports (camp_id);

		-- at most one open (pending or approved) report per volunteer+camp
		CREATE UNIQUE INDEX IF NOT EXISTS work_reports_open_uniq
			ON work_reports (volunteer_id, camp_id)
			WHERE status IN ('PENDING', 'APPROVED');

		CREATE TABLE IF NOT EXISTS health_checks (
			id         UUID PRIMARY KEY,
			sleep      DOUBLE PRECISION NOT NULL,
			stress     INT NOT NULL,
			symptoms   TEXT[] NOT NULL DEFAULT '{}',
			area       TEXT NOT NULL,
			lat        DOUBLE PRECISION NOT NULL,
			lng        DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS health_checks_area_idx ON health_checks (area);

		CREATE TABLE IF NOT EXISTS env_logs (
			id         BIGSERIAL PRIMARY KEY,
			area       TEXT NOT NULL,
			aqi        INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS env_logs_area_idx ON env_logs (area, created_at DESC);
	`

	_, err := pool.Exec(ctx, schema)
	return err
}
