// Package result provides Result, a value that is either a success holding
// a T or a failure holding an errors.Code.
//
// Results are what every step of a sequence consumes and produces (see
// package seq). Reading the wrong variant is a contract violation and
// panics with an *AccessError:
//
//	r := result.Failure[int](code)
//	r.HasValue() // false
//	r.Error()    // code
//	r.Value()    // panics
//
// Get is the non-panicking accessor:
//
//	if v, ok := r.Get(); ok {
//	    use(v)
//	}
//
// Result is a small value type. Copying it copies the payload, so reading a
// value more than once is always well defined.
package result
