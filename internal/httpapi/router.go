package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Board (HTML)
	bh := BoardHandler{Board: d.Board, Title: func() string { return d.config().Board.Title }}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.Page,
	}))
	mux.HandleFunc("/board/results", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.Results,
	}))
	mux.HandleFunc("/board/filters", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.Filters,
	}))

	// Jobs (JSON)
	jh := JobsHandler{Board: d.Board}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Categories,
	}))

	ch := CriteriaHandler{Board: d.Board}
	mux.HandleFunc("/api/criteria", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))

	// Config
	cfh := ConfigHandler{Deps: d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Get,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Validate,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub, Board: d.Board}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{Board: d.Board}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	if d.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}

	return mux
}

// NewHandler wraps mux with the standard middleware chain.
func NewHandler(mux http.Handler) http.Handler {
	return Chain(mux, RequestID, Recover, AccessLog, Cors)
}
