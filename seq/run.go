package seq

import (
	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
	"github.com/jmgilman/go/expected/result"
)

// slot holds the final result of a sequence. It is settled at most once.
type slot[T any] struct {
	r       result.Result[T]
	settled bool
}

func (s *slot[T]) settle(r result.Result[T]) {
	if s.settled {
		return
	}
	s.r = r
	s.settled = true
}

// take returns the settled result, or failure(CodeUnknown) when nothing
// settled it.
func (s *slot[T]) take() result.Result[T] {
	if !s.settled {
		return result.Failure[T](errors.CodeUnknown)
	}
	return s.r
}

// Run executes body as a sequence and returns its result.
//
// Inside body, each Await or Call either yields the step's value or, when
// the step failed, abandons the rest of body and makes Run return that
// failure. Any other panic raised while the sequence runs, including during
// option application, is classified by the configured chain and returned as
// a failure. Run never panics on account of body, with one exception: an
// Await on an enclosing sequence's Scope unwinds through this Run to reach
// its owner.
//
// Example:
//
//	r := seq.Run(func(s *seq.Scope) result.Result[int] {
//	    n := seq.Await(s, parse(input))
//	    m := seq.Call(s, func() result.Result[int] { return lookup(n) })
//	    return result.Success(n + m)
//	})
func Run[T any](body func(*Scope) result.Result[T], opts ...Option) (res result.Result[T]) {
	out := &slot[T]{}
	var s *Scope

	defer func() {
		v := recover()
		u, isUnwind := v.(*unwind)
		switch {
		case v == nil:
		case isUnwind && u.scope == s:
			// A step failed; the slot already holds its code.
		case isUnwind && !u.scope.done:
			// An enclosing sequence is unwinding through this one.
			if s != nil {
				s.finish(false, u.scope.code)
			}
			panic(v)
		default:
			// Includes unwinds of scopes whose Run already returned: the
			// scope was misused, so its unwind is just another fault.
			var code errors.Code
			if s != nil {
				code = s.classify(v)
				s.fail(code)
			} else {
				code = classify.Default().Classify(v)
			}
			out.settle(result.Failure[T](code))
		}

		res = out.take()
		if s != nil {
			s.finish(res.HasValue(), codeOf(res))
		}
	}()

	cfg := newConfig(opts...)
	s = newScope(cfg, func(code errors.Code) {
		out.settle(result.Failure[T](code))
	})
	s.start()

	r := body(s)
	if !s.state.Terminal() {
		out.settle(r)
	}
	return res
}

// Await yields the value of r, or abandons the sequence owning s with r's
// failure code.
//
// Await must only be called from the body of the Run that created s, or from
// code it calls on the same goroutine.
func Await[T any](s *Scope, r result.Result[T]) T {
	s.ensureLive()
	v, ok := r.Get()
	s.boundary(ok, codeOf(r))
	return v
}

// Call runs step and awaits its result. The step is never invoked once the
// sequence has reached a final state.
func Call[T any](s *Scope, step func() result.Result[T]) T {
	s.ensureLive()
	s.suspend()
	return Await(s, step())
}

// Try awaits a conventional (value, error) pair. A non-nil err is
// classified by the sequence's chain and becomes the step's failure code.
func Try[T any](s *Scope, v T, err error) T {
	s.ensureLive()
	if err != nil {
		return Await(s, result.Failure[T](s.classify(err)))
	}
	return Await(s, result.Success(v))
}

// Lift converts a (value, error) pair into a Result outside of any sequence.
// A non-nil err is classified by the chain configured through opts.
func Lift[T any](v T, err error, opts ...Option) result.Result[T] {
	if err == nil {
		return result.Success(v)
	}
	return result.Failure[T](FromError(err, opts...))
}

// FromError classifies err with the chain configured through opts. A nil
// err has no code and yields the zero Code.
func FromError(err error, opts ...Option) errors.Code {
	if err == nil {
		return errors.Code{}
	}
	return newConfig(opts...).chain.Classify(err)
}

func codeOf[T any](r result.Result[T]) errors.Code {
	if r.HasValue() {
		return errors.Code{}
	}
	return r.Error()
}
