package expected

import (
	"sync"

	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/fsfault"
	"github.com/jmgilman/go/expected/gitfault"
	"github.com/jmgilman/go/expected/regexfault"
	"github.com/jmgilman/go/expected/result"
	"github.com/jmgilman/go/expected/seq"
	"github.com/jmgilman/go/expected/stdfault"
)

// Result is the outcome of a fallible computation.
type Result[T any] = result.Result[T]

// Scope is the handle a sequence body uses to await steps.
type Scope = seq.Scope

// NewChain builds a chain with every host catalog in matching order:
// coded faults, regexp, filesystem, git, the specific Go runtime kinds,
// then extra, then the generic error and string catch-alls.
func NewChain(extra ...classify.Entry) (*classify.Chain, error) {
	chain := classify.NewChain()

	groups := [][]classify.Entry{
		{{Name: classify.CodedName, Classifier: classify.Coded}},
		regexfault.Classifiers(),
		fsfault.Classifiers(),
		gitfault.Classifiers(),
		stdfault.Classifiers(),
		extra,
		stdfault.Generic(),
	}
	for _, g := range groups {
		if err := chain.AppendAll(g...); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

var (
	standard     *classify.Chain
	standardOnce sync.Once
)

// Standard returns the process-wide chain built by NewChain.
// Register adds to it until the first sequence classifies a fault.
func Standard() *classify.Chain {
	standardOnce.Do(func() {
		chain, err := NewChain()
		if err != nil {
			panic(err)
		}
		standard = chain
	})
	return standard
}

// Register adds a classifier to the Standard chain, ahead of the generic
// catch-alls. It fails with classify.CodeFrozen once the chain is in use.
func Register(name string, classifier classify.Classifier) error {
	return Standard().InsertBefore(genericName, name, classifier)
}

// genericName is the first catch-all entry of the Standard chain.
var genericName = stdfault.Generic()[0].Name

// Run executes body as a sequence classified by the Standard chain.
// Options in opts are applied after the chain and may replace it.
func Run[T any](body func(*Scope) Result[T], opts ...seq.Option) Result[T] {
	return seq.Run(body, append([]seq.Option{seq.WithChain(Standard())}, opts...)...)
}

// Await yields the value of r or ends the sequence with its failure.
func Await[T any](s *Scope, r Result[T]) T {
	return seq.Await(s, r)
}

// Call runs step and awaits its result.
func Call[T any](s *Scope, step func() Result[T]) T {
	return seq.Call(s, step)
}

// Try awaits a (value, error) pair, classifying err with the sequence's chain.
func Try[T any](s *Scope, v T, err error) T {
	return seq.Try(s, v, err)
}

// Lift converts a (value, error) pair into a Result using the Standard chain.
func Lift[T any](v T, err error) Result[T] {
	return seq.Lift(v, err, seq.WithChain(Standard()))
}
