package gitfault

import (
	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
)

// Classifiers returns one classifier per go-git sentinel.
func Classifiers() []classify.Entry {
	entries := make([]classify.Entry, 0, len(sentinels))
	for _, s := range sentinels {
		entries = append(entries, classify.Entry{
			Name:       "gitfault/" + s.target.Error(),
			Classifier: classify.Sentinel(s.target, errors.Make(s.kind)),
		})
	}
	return entries
}

// Register appends Classifiers to chain.
func Register(chain *classify.Chain) error {
	return chain.AppendAll(Classifiers()...)
}
