package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/events"
)

type Handler struct {
	logger *slog.Logger
	hub    *events.Hub
}

func NewHandler(logger *slog.Logger, hub *events.Hub) *Handler {
	return &Handler{logger: logger, hub: hub}
}

// Events streams committed state changes to the connected client over SSE.
// Delivery starts at connect time; a reconnecting client does not get missed
// events replayed.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	h.logger.Info("subscriber connected", slog.String("remote", r.RemoteAddr))

	// Heartbeat keeps intermediaries from closing idle streams.
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("subscriber disconnected", slog.String("remote", r.RemoteAddr))
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("marshal event failed", slog.Any("error", err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
			flusher.Flush()
		}
	}
}
