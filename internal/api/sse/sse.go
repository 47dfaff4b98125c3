package sse

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

// Stream writes notifications as server-sent events until the client
// disconnects or the channel closes. The server write timeout is lifted
// for the connection so an idle stream is not severed.
func Stream(w http.ResponseWriter, r *http.Request, logger *slog.Logger, events <-chan domain.Notification) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Writers without deadline support (test recorders) report an error;
	// the stream itself still works.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		logger.Warn("write deadline not adjustable", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case note, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(note)
			if err != nil {
				logger.Warn("event marshal failed", slog.Any("error", err))
				continue
			}
			if _, err := w.Write([]byte("event: " + note.Event + "\ndata: " + string(data) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
