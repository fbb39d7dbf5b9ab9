package events

import (
	"encoding/json"
	"log"
	"time"
)

// Version is bumped when Event or BoardSummary change shape.
const Version = 1

// Stream-level event types; board transitions use board.EventKind names.
const (
	TypePing      = "ping"
	TypeHeartbeat = "heartbeat"
)

// Event is the envelope sent to SSE clients.
type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Encode returns the JSON frame for one event. A payload that fails to
// marshal is logged and the frame goes out without data.
func Encode(typ, reqID string, data any) string {
	e := Event{Type: typ, Version: Version, At: time.Now().UTC(), RequestID: reqID}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf("[events] marshal %s payload: %v", typ, err)
		} else {
			e.Data = raw
		}
	}
	b, _ := json.Marshal(e)
	return string(b)
}
