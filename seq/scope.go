package seq

import (
	"fmt"
	"log/slog"

	"github.com/jmgilman/go/expected/errors"
)

// Scope is the handle a sequence body uses to await steps.
//
// A Scope belongs to exactly one running sequence. It must not be used from
// another goroutine or after Run has returned.
type Scope struct {
	id     string
	state  State
	steps  int
	code   errors.Code
	done   bool
	cfg    *config
	logger *slog.Logger

	// settle stores a failure in the sequence's result slot. The slot exists
	// before the scope does, so a failing step can report immediately.
	settle func(errors.Code)
}

// unwind is the panic value used to abandon a sequence body after a failure.
type unwind struct {
	scope *Scope
}

// Error makes an unwind that escapes every Run loud and self-describing.
func (u *unwind) Error() string {
	return fmt.Sprintf("seq: sequence %s unwound outside of its Run", u.scope.id)
}

func newScope(cfg *config, settle func(errors.Code)) *Scope {
	id := cfg.newID()
	return &Scope{
		id:     id,
		state:  StateInProgress,
		cfg:    cfg,
		logger: cfg.logger.With("sequence_id", id),
		settle: settle,
	}
}

// ID returns the sequence ID.
func (s *Scope) ID() string {
	return s.id
}

// State returns the current state.
func (s *Scope) State() State {
	return s.state
}

// Steps returns the number of step boundaries reached so far.
func (s *Scope) Steps() int {
	return s.steps
}

func (s *Scope) start() {
	s.logger.Debug("sequence started")
	s.emit(Event{Kind: EventStarted})
}

// ensureLive abandons the body if the sequence already reached a final state.
func (s *Scope) ensureLive() {
	if s.state.Terminal() {
		panic(&unwind{scope: s})
	}
}

// suspend marks the sequence as waiting on a step.
func (s *Scope) suspend() {
	s.state = StateSuspended
}

// boundary evaluates a step result. It returns normally on success and
// unwinds the body on failure.
func (s *Scope) boundary(ok bool, code errors.Code) {
	s.steps++
	if ok {
		s.state = StateInProgress
		s.emit(Event{Kind: EventStep, OK: true})
		return
	}

	s.logger.Debug("step failed",
		"step", s.steps,
		"category", categoryName(code),
		"value", code.Value(),
	)
	s.fail(code)
	s.emit(Event{Kind: EventStep, Code: code})
	panic(&unwind{scope: s})
}

// fail settles the result slot and moves to StateFailed.
func (s *Scope) fail(code errors.Code) {
	if s.state.Terminal() {
		return
	}
	s.code = code
	s.state = StateFailed
	s.settle(code)
}

// classify routes a fault through the chain and records it.
func (s *Scope) classify(fault any) errors.Code {
	code := s.cfg.chain.Classify(fault)
	s.logger.Debug("fault classified",
		"step", s.steps,
		"fault_type", fmt.Sprintf("%T", fault),
		"category", categoryName(code),
		"value", code.Value(),
	)
	s.emit(Event{Kind: EventFault, Code: code, Fault: fault})
	return code
}

// finish records the final state once the result slot is settled.
func (s *Scope) finish(ok bool, code errors.Code) {
	s.done = true
	if ok {
		s.state = StateSucceeded
		s.code = errors.Code{}
	} else {
		s.state = StateFailed
		s.code = code
	}
	s.logger.Debug("sequence finished",
		"state", s.state.String(),
		"steps", s.steps,
		"category", categoryName(s.code),
		"value", s.code.Value(),
	)
	s.emit(Event{Kind: EventFinished, Code: s.code})
}

// emit notifies observers. A panicking observer is logged and skipped.
func (s *Scope) emit(e Event) {
	if len(s.cfg.observers) == 0 {
		return
	}
	e.SequenceID = s.id
	e.Step = s.steps
	e.State = s.state
	for _, o := range s.cfg.observers {
		s.notify(o, e)
	}
}

func (s *Scope) notify(o Observer, e Event) {
	defer func() {
		if v := recover(); v != nil {
			s.logger.Warn("observer panicked",
				"event", e.Kind.String(),
				"panic", v,
			)
		}
	}()
	o.Observe(e)
}

func categoryName(code errors.Code) string {
	if code.IsZero() {
		return ""
	}
	return code.Category().Name()
}
