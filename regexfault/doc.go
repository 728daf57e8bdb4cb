// Package regexfault classifies regular expression compile failures into
// the "regexp" category, one value per regexp/syntax error code.
//
// Both forms of failure are recognized: the *syntax.Error returned by
// regexp.Compile (bare or wrapped) and the string regexp.MustCompile
// panics with.
package regexfault
