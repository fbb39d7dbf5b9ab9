package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		WriteError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

// criteriaFromQuery reads ?category= and ?q=; a missing category means "All".
func criteriaFromQuery(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	c := domain.FilterCriteria{
		Category:   q.Get("category"),
		SearchText: q.Get("q"),
	}
	if c.Category == "" {
		c.Category = domain.CategoryAll
	}
	return c
}
