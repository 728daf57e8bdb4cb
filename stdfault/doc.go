// Package stdfault classifies faults raised by the Go runtime and standard
// library into the "go.runtime" category.
//
// Runtime panics such as out-of-range indexing, nil dereferences and failed
// type assertions get their own kinds, as do strconv parse errors, context
// cancellation and misuse of result.Result. Generic returns catch-alls for
// any other error or string panic value.
//
//	chain := classify.NewChain()
//	if err := stdfault.Register(chain); err != nil {
//	    return err
//	}
package stdfault
