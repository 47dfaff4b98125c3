package volunteer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/sse"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type VolunteerRegistry interface {
	Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Dashboard(ctx context.Context, id uuid.UUID) (*domain.VolunteerDashboard, error)
	JoinCamp(ctx context.Context, volunteerID, campID uuid.UUID) (*domain.ReliefCamp, error)
	LeaveCamp(ctx context.Context, volunteerID uuid.UUID) error
	SubmitReport(ctx context.Context, volunteerID uuid.UUID, req domain.SubmitWorkReportRequest) (*domain.WorkReport, error)
}

type Streamer interface {
	Stream(ctx context.Context, room string) <-chan domain.Notification
}

type Handler struct {
	logger     *slog.Logger
	Volunteers VolunteerRegistry
	Streamer   Streamer
}

func NewHandler(logger *slog.Logger, volunteers VolunteerRegistry, streamer Streamer) *Handler {
	return &Handler{
		logger:     logger,
		Volunteers: volunteers,
		Streamer:   streamer,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) VolunteerRegister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterVolunteerRequest
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

	v, err := h.Volunteers.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("volunteer registered", slog.String("id", v.ID.String()))
	h.writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) VolunteerList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.Volunteers.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"volunteers": volunteers,
		"total":      len(volunteers),
	})
}

func (h *Handler) VolunteerGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	v, err := h.Volunteers.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) VolunteerDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dash, err := h.Volunteers.Dashboard(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) CampJoin(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.JoinCampRequest
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

	campID, err := uuid.Parse(req.CampID)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid camp_id"})
		return
	}

	camp, err := h.Volunteers.JoinCamp(r.Context(), id, campID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, camp)
}

func (h *Handler) CampLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Volunteers.LeaveCamp(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.SubmitWorkReportRequest
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

	report, err := h.Volunteers.SubmitReport(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report submitted",
		slog.String("report_id", report.ID.String()),
		slog.String("volunteer_id", id.String()),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

// NotificationStream pushes the volunteer's personal events over SSE.
func (h *Handler) NotificationStream(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	sse.Stream(w, r, h.log(r), h.Streamer.Stream(r.Context(), domain.VolunteerRoom(id)))
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", raw))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
