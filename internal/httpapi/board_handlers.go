package httpapi

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/render"
)

// BoardHandler serves the HTML surface. Every request renders from its own
// query string; the controller's criteria are not touched.
type BoardHandler struct {
	Board *board.Controller
	Title func() string
}

func (h BoardHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	v := h.Board.ViewFor(criteriaFromQuery(r))
	status := http.StatusOK
	if v.State == board.StateError {
		status = http.StatusBadGateway
	}
	h.writeHTML(w, r, status, v, render.Page)
}

func (h BoardHandler) Results(w http.ResponseWriter, r *http.Request) {
	v := h.Board.ViewFor(criteriaFromQuery(r))
	if v.State != board.StateReady {
		writeBoardUnavailable(w, r, v)
		return
	}
	h.writeHTML(w, r, http.StatusOK, v, render.Results)
}

func (h BoardHandler) Filters(w http.ResponseWriter, r *http.Request) {
	v := h.Board.ViewFor(criteriaFromQuery(r))
	if v.State != board.StateReady {
		writeBoardUnavailable(w, r, v)
		return
	}
	h.writeHTML(w, r, http.StatusOK, v, render.FilterBar)
}

func (h BoardHandler) writeHTML(w http.ResponseWriter, r *http.Request, status int, v board.View, fn func(io.Writer, render.PageData) error) {
	var buf bytes.Buffer
	if err := fn(&buf, v.Page(h.Title())); err != nil {
		log.Printf("level=error msg=\"render\" request_id=%s path=%s err=%v", RequestIDFrom(r.Context()), r.URL.Path, err)
		WriteError(w, r, http.StatusInternalServerError, codeRenderFailed, "could not render board")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
