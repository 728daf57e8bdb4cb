// Package expected runs fallible steps as sequences that stop at the first
// failure and turn panics into categorized error codes.
//
// It ties the subpackages together:
//
//   - errors: categories, codes and the structured Fault error
//   - result: Result[T], a value or a code
//   - classify: ordered classifier chains mapping faults to codes
//   - seq: the sequence engine (Run, Await, Call, Try, Pipeline)
//   - stdfault, fsfault, regexfault, gitfault: host catalogs for the Go
//     runtime, filesystems and object storage, regular expressions and git
//   - seqmetrics: Prometheus metrics for sequences
//
// The functions here run sequences against Standard, a chain holding every
// catalog in the right order:
//
//	r := expected.Run(func(s *expected.Scope) expected.Result[Config] {
//	    data, err := os.ReadFile(path)
//	    data = expected.Try(s, data, err)
//	    return parse(data)
//	})
//	if !r.HasValue() {
//	    code := r.Error()
//	    log.Printf("load failed: %s (%s)", code.Message(), code)
//	}
//
// Application classifiers are added with Register before the first
// sequence runs.
package expected
