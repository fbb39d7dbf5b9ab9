package httpapi

import (
	"net/http"
	"time"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
)

type HealthHandler struct {
	Board *board.Controller
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"ok":      h.Board.State() != board.StateError,
		"state":   h.Board.State().String(),
		"records": len(h.Board.Jobs()),
		"time":    time.Now().Format(time.RFC3339),
	}
	if at := h.Board.LoadedAt(); !at.IsZero() {
		resp["loaded_at"] = at.Format(time.RFC3339)
	}
	if err := h.Board.Err(); err != nil {
		resp["error"] = err.Error()
	}
	writeJSON(w, resp)
}
