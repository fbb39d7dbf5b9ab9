package httpapi

import (
	"sync/atomic"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/config"
	"github.com/pilibhitjob/PilibhitJob/internal/events"
)

type Deps struct {
	Board *board.Controller
	Hub   *events.Hub

	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string

	// StaticDir serves /static/ (stylesheets, icon fonts). Empty disables it.
	StaticDir string
}

func (d Deps) config() config.Config {
	if v, ok := d.CfgVal.Load().(config.Config); ok {
		return v
	}
	return config.Default()
}
