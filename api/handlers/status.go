package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/omnimart-labs/omnimart-core/executor"
)

type StatusSubscriber interface {
	Subscribe(ctx context.Context, id string, statusChn chan executor.Status)
	Status(id string) executor.Status
}

type StatusHandler struct {
	tracker StatusSubscriber
}

func NewStatusHandler(tracker StatusSubscriber) *StatusHandler {
	return &StatusHandler{
		tracker: tracker,
	}
}

// HandleRequest is an sse handler streaming status transitions for one
// transaction flow until it turns terminal
func (h *StatusHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trackingId, ok := vars["trackingId"]
	if !ok || trackingId == "" {
		JSONError(w, fmt.Errorf("missing 'trackingId'"), http.StatusBadRequest)
		return
	}

	h.setheaders(w)

	statusChn := make(chan executor.Status, 8)
	h.tracker.Subscribe(r.Context(), trackingId, statusChn)

	current := h.tracker.Status(trackingId)
	fmt.Fprintf(w, "data: %s\n\n", current)
	w.(http.Flusher).Flush()
	if current.Terminal() {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case s := <-statusChn:
			{
				fmt.Fprintf(w, "data: %s\n\n", s)
				w.(http.Flusher).Flush()
				if s.Terminal() {
					return
				}
			}
		}
	}
}

func (h *StatusHandler) setheaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}
