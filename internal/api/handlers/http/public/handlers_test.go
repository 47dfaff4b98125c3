package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/public"
	mock_public "github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/public/mocks"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHealthSubmit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"sleep":6.5,"stress":8,"symptoms":["cough"],"area":"Sector 12","lat":28.61,"lng":77.2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-data", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantReq := domain.SubmitHealthRequest{
		Sleep:    6.5,
		Stress:   8,
		Symptoms: []string{"cough"},
		Area:     "Sector 12",
		Lat:      28.61,
		Lng:      77.2,
	}
	wantSample := &domain.HealthSample{
		SleepHours: 6.5,
		Stress:     8,
		Symptoms:   []string{"cough"},
		Area:       "Sector 12",
		Lat:        28.61,
		Lng:        77.2,
	}

	svc.EXPECT().
		SubmitHealth(gomock.Any(), wantReq).
		Return(wantSample, nil).
		Times(1)

	h.HealthSubmit(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.HealthSample](t, rr)
	if !reflect.DeepEqual(got, *wantSample) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, *wantSample)
	}
}

func TestHealthSubmit_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-data", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.HealthSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestHealthSubmit_MissingArea_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"sleep":6.5,"stress":8,"lat":28.61,"lng":77.2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-data", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.HealthSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestEnvironmentByArea_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	report := &domain.EnvironmentReport{
		Area: "Riverside",
		AQI:  domain.AQIReading{Index: 180, Label: "Poor"},
		Risk: domain.RiskHigh,
	}

	svc.EXPECT().
		EnvironmentReport(gomock.Any(), "Riverside").
		Return(report, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/environment/Riverside", nil)
	req = withURLParam(req, "area", "Riverside")
	rr := httptest.NewRecorder()

	h.EnvironmentByArea(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.EnvironmentReport](t, rr)
	if got.Area != "Riverside" || got.AQI.Index != 180 {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestEnvironmentByArea_InvalidInput_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		EnvironmentReport(gomock.Any(), "").
		Return(nil, e.ErrInvalidInput).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/environment/", nil)
	req = withURLParam(req, "area", "")
	rr := httptest.NewRecorder()

	h.EnvironmentByArea(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAQIHistory_LimitQueryParam(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		AQIHistory(gomock.Any(), "Riverside", 5).
		Return([]domain.EnvLogEntry{{Area: "Riverside", AQI: 140}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/environment/Riverside/history?limit=5", nil)
	req = withURLParam(req, "area", "Riverside")
	rr := httptest.NewRecorder()

	h.AQIHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]json.RawMessage](t, rr)
	if _, ok := got["history"]; !ok {
		t.Fatalf("expected history key in response, body=%s", rr.Body.String())
	}
}

func TestRiskAreas_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	records := []domain.AreaRiskRecord{
		{Area: "Riverside", AvgAQI: 160, Risk: domain.RiskHigh},
		{Area: "Old Town", AvgAQI: 70, Risk: domain.RiskLow},
	}

	svc.EXPECT().
		AreaRisks(gomock.Any()).
		Return(records, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/areas", nil)
	rr := httptest.NewRecorder()

	h.RiskAreas(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Areas []domain.AreaRiskRecord `json:"areas"`
		Total int                     `json:"total"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.Total != 2 || len(resp.Areas) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRiskAreas_InternalError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicAPI(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		AreaRisks(gomock.Any()).
		Return(nil, e.ErrInternal).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/areas", nil)
	rr := httptest.NewRecorder()

	h.RiskAreas(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
