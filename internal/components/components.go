package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/clients"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/redis"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/storage/postgres"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/workers"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Notifier   *redis.Notifier
	Refresher  *workers.EnvRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifier := redis.NewNotifier(redisClient, logger)
	envCache := redis.NewEnvCache(redisClient, cfg.Redis.EnvCacheTTL)

	geocoder := clients.NewGeoClient(cfg.Weather, logger)
	provider := clients.NewEnvironmentClient(cfg.Weather, logger)
	scorer := clients.NewScorerClient(cfg.RiskEngine, logger)

	imageStore, err := clients.NewImageStore(ctx, cfg.S3, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init image store: %w", err)
	}

	ngoSvc := service.NewNGOService(storage.Camp, storage.WorkReport, geocoder, notifier, logger)
	volunteerSvc := service.NewVolunteerService(storage.Volunteer, storage.Camp, storage.WorkReport, imageStore, notifier, logger)
	publicSvc := service.NewPublicService(storage.Health, storage.EnvLog, envCache, geocoder, provider, scorer, notifier, logger)

	svc := service.NewService(ngoSvc, volunteerSvc, publicSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("initialized server")

	var refresher *workers.EnvRefresher
	if !cfg.Refresh.Disabled {
		refresher = workers.NewEnvRefresher(
			storage.Health, envCache, geocoder, provider, storage.EnvLog,
			cfg.Refresh.CronSpec, logger,
		)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Notifier:   notifier,
		Refresher:  refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
