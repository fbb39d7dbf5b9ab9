package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/pilibhitjob/PilibhitJob/internal/config"
)

// ConfigHandler exposes the loaded config read-only. The source URL is fixed
// for the life of the process, so there is no write endpoint.
type ConfigHandler struct {
	Deps Deps
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Deps.config())
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.Deps.UserCfgPath)
	writeJSON(w, map[string]any{"path": abs})
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, vr := config.NormalizeAndValidate(h.Deps.config())
	writeJSON(w, vr)
}
