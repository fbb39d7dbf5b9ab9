package events

import (
	"context"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

// BoardSummary is the payload of board events. Clients re-fetch the
// fragments they show instead of receiving markup over SSE.
type BoardSummary struct {
	State     string                `json:"state"`
	Error     string                `json:"error,omitempty"`
	Criteria  domain.FilterCriteria `json:"criteria"`
	Total     int                   `json:"total"`
	Count     int                   `json:"count"`
	NoResults bool                  `json:"no_results"`
}

func Summarize(v board.View) BoardSummary {
	return BoardSummary{
		State:     v.StateName(),
		Error:     v.Error,
		Criteria:  v.Criteria,
		Total:     v.Total,
		Count:     len(v.Cards),
		NoResults: v.NoResults,
	}
}

// PublishSummary sends v's summary to every subscriber as typ.
func PublishSummary(h *Hub, typ string, v board.View) {
	h.Publish(Encode(typ, "", Summarize(v)))
}

// BoardObserver publishes every controller event on h.
func BoardObserver(h *Hub) board.Observer {
	return func(e board.Event) {
		PublishSummary(h, string(e.Kind), e.View)
	}
}

// Heartbeat re-sends the current board summary so idle streams stay open and
// clients that missed a transition catch up.
func Heartbeat(h *Hub, current func() board.View) func(context.Context) error {
	return func(context.Context) error {
		if h.Subscribers() == 0 {
			return nil
		}
		PublishSummary(h, TypeHeartbeat, current())
		return nil
	}
}
