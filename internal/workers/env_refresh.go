package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/aqi"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

type AreaSource interface {
	Areas(ctx context.Context) ([]string, error)
}

type SnapshotSource interface {
	Get(ctx context.Context, area string) (*domain.EnvironmentSnapshot, error)
	Set(ctx context.Context, snap *domain.EnvironmentSnapshot) error
}

type Geocoder interface {
	Resolve(ctx context.Context, area string) (lat, lng float64, err error)
}

type EnvironmentProvider interface {
	FetchByCoords(ctx context.Context, area string, lat, lng float64) (*domain.EnvironmentSnapshot, error)
}

type HistorySink interface {
	Insert(ctx context.Context, area string, aqi int) error
	History(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error)
}

const refreshHistoryDepth = 5

const areaRefreshTimeout = 30 * time.Second

// EnvRefresher walks every area with health submissions on a cron schedule
// and appends a fresh smoothed AQI point to each area's history. Keeping
// the history warm makes smoothing meaningful even for areas nobody has
// queried recently.
type EnvRefresher struct {
	areas    AreaSource
	cache    SnapshotSource
	geocoder Geocoder
	provider EnvironmentProvider
	history  HistorySink
	logger   *slog.Logger
	cron     *cron.Cron
	spec     string
}

func NewEnvRefresher(
	areas AreaSource,
	cache SnapshotSource,
	geocoder Geocoder,
	provider EnvironmentProvider,
	history HistorySink,
	spec string,
	logger *slog.Logger,
) *EnvRefresher {
	return &EnvRefresher{
		areas:    areas,
		cache:    cache,
		geocoder: geocoder,
		provider: provider,
		history:  history,
		logger:   logger,
		cron:     cron.New(),
		spec:     spec,
	}
}

func (w *EnvRefresher) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() {
		w.refreshAll(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("env refresher started", slog.String("spec", w.spec))

	go func() {
		<-ctx.Done()
		<-w.cron.Stop().Done()
		w.logger.Info("env refresher stopped")
	}()

	return nil
}

func (w *EnvRefresher) refreshAll(ctx context.Context) {
	areas, err := w.areas.Areas(ctx)
	if err != nil {
		w.logger.Error("area listing failed", slog.Any("error", err))
		return
	}

	refreshed := 0
	for _, area := range areas {
		if ctx.Err() != nil {
			return
		}
		if err := w.refreshArea(ctx, area); err != nil {
			w.logger.Warn("area refresh failed", slog.String("area", area), slog.Any("error", err))
			continue
		}
		refreshed++
	}

	w.logger.Info("env refresh cycle done",
		slog.Int("areas", len(areas)), slog.Int("refreshed", refreshed))
}

func (w *EnvRefresher) refreshArea(ctx context.Context, area string) error {
	ctx, cancel := context.WithTimeout(ctx, areaRefreshTimeout)
	defer cancel()

	snap, err := w.cache.Get(ctx, area)
	if err != nil || snap == nil {
		lat, lng, err := w.geocoder.Resolve(ctx, area)
		if err != nil {
			return err
		}
		snap, err = w.provider.FetchByCoords(ctx, area, lat, lng)
		if err != nil {
			return err
		}
		if err := w.cache.Set(ctx, snap); err != nil {
			w.logger.Warn("env cache write failed", slog.String("area", area), slog.Any("error", err))
		}
	}

	entries, err := w.history.History(ctx, area, refreshHistoryDepth)
	if err != nil {
		return err
	}
	history := make([]float64, 0, len(entries))
	for _, entry := range entries {
		history = append(history, float64(entry.AQI))
	}

	reading := aqi.Compute(snap.Pollutants, history)
	return w.history.Insert(ctx, area, reading.Index)
}
