package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicAPI interface {
	SubmitHealth(ctx context.Context, req domain.SubmitHealthRequest) (*domain.HealthSample, error)
	HealthOverview(ctx context.Context) (*domain.HealthOverview, error)
	AreaHealthStats(ctx context.Context) ([]domain.AreaHealthStats, error)
	EnvironmentReport(ctx context.Context, area string) (*domain.EnvironmentReport, error)
	AQIHistory(ctx context.Context, area string, limit int) ([]domain.EnvLogEntry, error)
	AreaRisks(ctx context.Context) ([]domain.AreaRiskRecord, error)
}

type Handler struct {
	logger *slog.Logger
	Public PublicAPI
}

func NewHandler(logger *slog.Logger, publicAPI PublicAPI) *Handler {
	return &Handler{
		logger: logger,
		Public: publicAPI,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) HealthSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SubmitHealthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sample, err := h.Public.SubmitHealth(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, sample)
}

func (h *Handler) HealthOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Public.HealthOverview(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) HealthAreaStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Public.AreaHealthStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"areas": stats,
		"total": len(stats),
	})
}

func (h *Handler) EnvironmentByArea(w http.ResponseWriter, r *http.Request) {
	area := chi.URLParam(r, "area")

	report, err := h.Public.EnvironmentReport(r.Context(), area)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AQIHistory(w http.ResponseWriter, r *http.Request) {
	area := chi.URLParam(r, "area")
	limit := parseInt(r.URL.Query().Get("limit"), 0)

	history, err := h.Public.AQIHistory(r.Context(), area, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"area":    area,
		"history": history,
	})
}

func (h *Handler) RiskAreas(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	records, err := h.Public.AreaRisks(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("area risks aggregated", slog.Int("areas", len(records)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"areas": records,
		"total": len(records),
	})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
