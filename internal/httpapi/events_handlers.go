package httpapi

import (
	"fmt"
	"net/http"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/events"
)

type EventsHandler struct {
	Hub   *events.Hub
	Board *board.Controller
}

func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, codeStreamUnsupported, "streaming unsupported")
		return
	}

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	// First frame carries the current board state so late clients need no extra request.
	reqID := RequestIDFrom(r.Context())
	hello := events.Encode(events.TypePing, reqID, events.Summarize(h.Board.Current()))
	fmt.Fprintf(w, "event: message\ndata: %s\n\n", hello)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
