package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

type JobsHandler struct {
	Board *board.Controller
}

type jobsResponse struct {
	board.View
	Count int `json:"count"`
}

// List renders the query's criteria as JSON.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	v := h.Board.ViewFor(criteriaFromQuery(r))
	if v.State == board.StateError {
		WriteError(w, r, http.StatusBadGateway, codeBoardError, v.Error)
		return
	}
	writeJSON(w, jobsResponse{View: v, Count: len(v.Cards)})
}

func (h JobsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if v := h.Board.Current(); v.State != board.StateReady {
		writeBoardUnavailable(w, r, v)
		return
	}
	writeJSON(w, h.Board.Categories())
}

// Criteria handlers read and replace the controller-owned criteria.
type CriteriaHandler struct {
	Board *board.Controller
}

func (h CriteriaHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Board.Criteria())
}

func (h CriteriaHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.FilterCriteria
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, codeInvalidJSON, "invalid JSON: "+err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, codeInvalidJSON, "invalid JSON: trailing data")
		return
	}

	v := h.Board.SetCriteria(incoming)
	writeJSON(w, jobsResponse{View: v, Count: len(v.Cards)})
}
