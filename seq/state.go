package seq

// State is the lifecycle state of a running sequence.
type State int

const (
	// StateInProgress means the sequence body is executing.
	StateInProgress State = iota

	// StateSuspended means the sequence is waiting on a step's result.
	StateSuspended

	// StateSucceeded means every step produced a value and the body returned success.
	StateSucceeded

	// StateFailed means a step failed, the body returned a failure, or a fault escaped.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateSuspended:
		return "suspended"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is a final state.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}
