// Package seq composes fallible steps into sequences that stop at the first
// failure.
//
// A sequence is a function run by Run. Its body awaits steps through the
// Scope it receives:
//
//	r := seq.Run(func(s *seq.Scope) result.Result[Order] {
//	    user := seq.Await(s, loadUser(id))
//	    cart := seq.Call(s, func() result.Result[Cart] { return loadCart(user) })
//	    total, err := price(cart)
//	    total = seq.Try(s, total, err)
//	    return result.Success(Order{User: user, Total: total})
//	})
//
// When an awaited step fails, the remainder of the body is abandoned and Run
// returns that failure. Panics raised anywhere in the sequence, including in
// step functions, are routed through a classify.Chain and returned as
// failure(code) instead of crashing the caller.
//
// # Rules
//
// A Scope must only be used on the goroutine running its body and only
// while Run is active. Awaiting an enclosing sequence's Scope from a nested
// Run is allowed: the nested sequence finishes as failed and the enclosing
// one receives the failure.
//
// Bodies should not recover panics they did not raise. A body that swallows
// its own unwind cannot resume the sequence: the first failure stays
// settled and every later Await or Call unwinds immediately.
//
// # Observability
//
// WithLogger attaches a slog.Logger that receives debug records for
// "sequence started", "step failed", "fault classified" and
// "sequence finished". WithObserver attaches an Observer that receives the
// same lifecycle as Events; see the seqmetrics package for a Prometheus
// implementation.
package seq
