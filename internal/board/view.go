package board

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
	"github.com/pilibhitjob/PilibhitJob/internal/render"
)

// View is one fully rendered board snapshot.
type View struct {
	State      State                 `json:"state"`
	Error      string                `json:"error,omitempty"`
	Guidance   string                `json:"guidance,omitempty"`
	Categories []string              `json:"categories,omitempty"`
	Criteria   domain.FilterCriteria `json:"criteria"`
	Cards      []render.Card         `json:"jobs"`
	Total      int                   `json:"total"`
	NoResults  bool                  `json:"no_results"`
	LoadedAt   time.Time             `json:"loaded_at,omitzero"`
}

// StateName is the lower-case state used in JSON and markup.
func (v View) StateName() string { return v.State.String() }

// Page adapts the view for the HTML templates.
func (v View) Page(title string) render.PageData {
	d := render.PageData{
		Title:      title,
		State:      v.StateName(),
		Error:      v.Error,
		Guidance:   v.Guidance,
		Categories: v.Categories,
		Criteria:   v.Criteria,
		Cards:      v.Cards,
		Total:      v.Total,
		NoResults:  v.NoResults,
	}
	if !v.LoadedAt.IsZero() {
		d.LoadedAgo = humanize.Time(v.LoadedAt)
	}
	return d
}
