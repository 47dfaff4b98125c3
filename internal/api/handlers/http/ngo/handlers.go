package ngo

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
type CampManager interface {
	DeployCamp(ctx context.Context, req domain.DeployCampRequest) (*domain.ReliefCamp, error)
	AssignVolunteers(ctx context.Context, req domain.AssignVolunteersRequest) (*domain.AssignVolunteersResponse, error)
	CloseCamp(ctx context.Context, campID uuid.UUID) (*domain.ReliefCamp, error)
	GetCamp(ctx context.Context, id uuid.UUID) (*domain.ReliefCamp, error)
	ListCamps(ctx context.Context, activeOnly bool) ([]*domain.ReliefCamp, error)
	ListCampReports(ctx context.Context, campID uuid.UUID) ([]*domain.WorkReport, error)
	ApproveReport(ctx context.Context, reportID uuid.UUID) (*domain.ApproveReportResponse, error)
	RejectReport(ctx context.Context, reportID uuid.UUID, req domain.RejectReportRequest) (*domain.WorkReport, error)
}

type Streamer interface {
	Stream(ctx context.Context, room string) <-chan domain.Notification
}

type Handler struct {
	logger   *slog.Logger
	Camps    CampManager
	Streamer Streamer
}

func NewHandler(logger *slog.Logger, camps CampManager, streamer Streamer) *Handler {
	return &Handler{
		logger:   logger,
		Camps:    camps,
		Streamer: streamer,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) CampDeploy(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.DeployCampRequest
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

	l.Info("deploying camp",
		slog.String("area", req.Area),
		slog.String("risk_level", req.RiskLevel),
	)

	camp, err := h.Camps.DeployCamp(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, camp)
}

func (h *Handler) CampList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	camps, err := h.Camps.ListCamps(r.Context(), activeOnly)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summaries := make([]domain.CampSummary, 0, len(camps))
	for _, c := range camps {
		summaries = append(summaries, domain.CampSummary{
			ID:              c.ID,
			Area:            c.Area,
			Lat:             c.Lat,
			Lng:             c.Lng,
			RiskLevel:       c.RiskLevel,
			Status:          c.Status,
			VolunteersCount: len(c.VolunteerAssigned),
			Resources:       c.Resources,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"camps": summaries,
		"total": len(summaries),
	})
}

func (h *Handler) CampGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	camp, err := h.Camps.GetCamp(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, camp)
}

func (h *Handler) VolunteersAssign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AssignVolunteersRequest
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

	resp, err := h.Camps.AssignVolunteers(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CampClose(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	camp, err := h.Camps.CloseCamp(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, camp)
}

func (h *Handler) CampReports(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	reports, err := h.Camps.ListCampReports(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *Handler) ReportApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.Camps.ApproveReport(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ReportReject(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.RejectReportRequest
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

	report, err := h.Camps.RejectReport(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// ReportStream pushes new work-report events to the organization over SSE.
func (h *Handler) ReportStream(w http.ResponseWriter, r *http.Request) {
	sse.Stream(w, r, h.log(r), h.Streamer.Stream(r.Context(), domain.OrgReportsRoom))
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
