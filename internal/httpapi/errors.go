package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
)

// Error codes carried in APIError.Error.Code.
const (
	codeBoardLoading      = "board_loading"
	codeBoardError        = "board_error"
	codeInvalidJSON       = "invalid_json"
	codeMethodNotAllowed  = "method_not_allowed"
	codeRenderFailed      = "render_failed"
	codeStreamUnsupported = "stream_unsupported"
	codeInternal          = "internal_error"
)

// APIError is the body of every non-2xx JSON response.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError sends an APIError tagged with the request's ID.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeBoardUnavailable answers 503 for a board that is not Ready: the
// fetch failure text in the error state, a loading notice otherwise.
func writeBoardUnavailable(w http.ResponseWriter, r *http.Request, v board.View) {
	if v.State == board.StateError {
		WriteError(w, r, http.StatusServiceUnavailable, codeBoardError, v.Error)
		return
	}
	WriteError(w, r, http.StatusServiceUnavailable, codeBoardLoading, "board is still loading")
}
