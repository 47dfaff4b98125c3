package sse

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

func TestStream_WritesEventFrames(t *testing.T) {
	events := make(chan domain.Notification, 2)
	events <- domain.Notification{
		Event:   "report:new",
		Payload: map[string]string{"area": "Riverside"},
		SentAt:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	close(events)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest("GET", "/stream", nil)
	rr := httptest.NewRecorder()

	Stream(rr, req, logger, events)

	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "event: report:new\n") {
		t.Fatalf("missing event line, body=%q", body)
	}
	if !strings.Contains(body, `data: {"event":"report:new"`) {
		t.Fatalf("missing data line, body=%q", body)
	}
	if !strings.HasSuffix(body, "\n\n") {
		t.Fatalf("frame not terminated, body=%q", body)
	}
	if !rr.Flushed {
		t.Fatal("response was never flushed")
	}
}

func TestStream_StopsOnContextCancel(t *testing.T) {
	events := make(chan domain.Notification)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest("GET", "/stream", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		Stream(rr, req, logger, events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after context cancellation")
	}
}
