package seq

import "github.com/jmgilman/go/expected/errors"

// EventKind identifies a point in a sequence's lifecycle.
type EventKind int

const (
	// EventStarted is emitted once, before the body runs.
	EventStarted EventKind = iota

	// EventStep is emitted at every step boundary.
	EventStep

	// EventFault is emitted when a fault or error is classified.
	EventFault

	// EventFinished is emitted once, when the final result is settled.
	EventFinished
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStep:
		return "step"
	case EventFault:
		return "fault"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes something that happened in a sequence.
type Event struct {
	Kind       EventKind
	SequenceID string

	// Step is the number of step boundaries reached so far.
	Step int

	// State is the sequence state after the event.
	State State

	// OK reports, for EventStep, whether the step produced a value.
	OK bool

	// Code is the failure code for failed steps, classified faults, and
	// failed sequences. It is the zero Code otherwise.
	Code errors.Code

	// Fault is the classified value for EventFault.
	Fault any
}

// Observer receives sequence events.
// Observers run synchronously on the sequence's goroutine and must not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}
