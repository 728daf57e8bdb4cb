package seq

import (
	"slices"

	"github.com/jmgilman/go/expected/result"
)

// Step transforms a value, possibly failing.
type Step[T any] func(T) result.Result[T]

// Pipeline is an ordered list of steps run as one sequence.
//
// A Pipeline is not safe for concurrent modification, but Run may be called
// concurrently once construction is finished.
type Pipeline[T any] struct {
	steps []Step[T]
	opts  []Option
}

// NewPipeline creates an empty pipeline. The options apply to every Run.
func NewPipeline[T any](opts ...Option) *Pipeline[T] {
	return &Pipeline[T]{opts: opts}
}

// Then appends a step and returns p for chaining.
func (p *Pipeline[T]) Then(step Step[T]) *Pipeline[T] {
	p.steps = append(p.steps, step)
	return p
}

// Len returns the number of steps.
func (p *Pipeline[T]) Len() int {
	return len(p.steps)
}

// Run feeds initial through every step in order. The first failing step
// ends the run; later steps are not invoked.
func (p *Pipeline[T]) Run(initial T) result.Result[T] {
	steps := slices.Clone(p.steps)
	return Run(func(s *Scope) result.Result[T] {
		v := initial
		for _, step := range steps {
			v = Call(s, func() result.Result[T] { return step(v) })
		}
		return result.Success(v)
	}, p.opts...)
}

// Step returns the pipeline as a single step, for nesting in another pipeline.
func (p *Pipeline[T]) Step() Step[T] {
	return p.Run
}
