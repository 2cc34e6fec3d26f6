package engine

import "time"

// timeNow is swappable in tests.
var timeNow = time.Now

// EventType identifies a statement lifecycle phase.
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
)

// Event is one lifecycle event. StatementID ties the phases of a single
// submission together for tracing.
type Event struct {
	Type        EventType
	StatementID string
	Timestamp   time.Time
	Data        any // phase-specific: SQL text, statement shape, outcome
}

// Observer receives events at major execution phases.
type Observer interface {
	OnEvent(event Event)
}
