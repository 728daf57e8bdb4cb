// Package classify turns recovered faults into error codes.
//
// A Chain is an ordered list of named classifiers. Each classifier looks at
// a fault (the value recovered from a panic, or an error handed to it) and
// either declines or assigns a code. The first match wins; if nothing
// matches, Classify returns errors.CodeUnknown. Classify never panics: a
// classifier that panics while classifying is treated as declining.
//
// # Ordering
//
// Order is a contract. Classifiers that preserve a code the fault already
// carries (Coded) come first, then classifiers for specific fault types,
// then generic catch-alls:
//
//	chain := classify.NewChain()
//	_ = chain.Append(classify.CodedName, classify.Coded)
//	_ = chain.Append("strconv", classify.Match(func(e *strconv.NumError) (errors.Code, bool) {
//	    return errors.Make(stdfault.InvalidArgument), true
//	}))
//	_ = chain.Append("any-error", classify.MatchCode[error](errors.Make(stdfault.Error)))
//
// # Lifecycle
//
// Classifiers are registered during initialization. The first Classify call
// freezes the chain; later registrations fail with CodeFrozen. A frozen
// chain holds no mutable state and can be shared by any number of
// sequences.
//
// The engine (package seq) never inspects fault types itself. All fault
// knowledge lives in classifiers, so new fault types are supported by
// registering classifiers, never by changing the engine.
package classify
