package seq

import "github.com/jmgilman/go/expected/result"

// Then chains f onto r. A failure in r is forwarded without calling f;
// otherwise f runs as a one-step sequence, so a panic in f is classified
// rather than propagated.
func Then[A, B any](r result.Result[A], f func(A) result.Result[B], opts ...Option) result.Result[B] {
	a, ok := r.Get()
	if !ok {
		return result.Failure[B](r.Error())
	}
	return Run(func(s *Scope) result.Result[B] {
		return result.Success(Call(s, func() result.Result[B] { return f(a) }))
	}, opts...)
}
