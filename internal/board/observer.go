package board

// EventKind names a controller notification.
type EventKind string

const (
	EventLoading  EventKind = "board_loading"
	EventReady    EventKind = "board_ready"
	EventError    EventKind = "board_error"
	EventCriteria EventKind = "criteria_changed"
)

// Event is delivered to observers after every state or criteria change.
type Event struct {
	Kind EventKind
	View View
}

// Observer receives events synchronously; it must not call back into
// Subscribe.
type Observer func(Event)

func (c *Controller) Subscribe(o Observer) {
	c.obsMu.Lock()
	c.observers = append(c.observers, o)
	c.obsMu.Unlock()
}

func (c *Controller) notify(kind EventKind, v View) {
	c.obsMu.Lock()
	obs := append([]Observer(nil), c.observers...)
	c.obsMu.Unlock()

	for _, o := range obs {
		o(Event{Kind: kind, View: v})
	}
}
