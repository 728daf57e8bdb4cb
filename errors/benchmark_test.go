package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/expected/errors"
)

func BenchmarkMakeCode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Make(poolExhausted)
	}
}

func BenchmarkCode_Equal(b *testing.B) {
	a := errors.Make(poolExhausted)
	c := errors.Make(poolNotReady)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = a.Equal(c)
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.New(errors.Make(poolExhausted), "no idle workers")
	}
}

func BenchmarkWrap(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Wrap(baseErr, errors.Make(poolNotReady), "warmup failed")
	}
}

func BenchmarkWithContext(b *testing.B) {
	baseErr := errors.New(errors.Make(poolExhausted), "no idle workers")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.WithContext(baseErr, "key", "value")
	}
}

func BenchmarkGetCode_DeepChain(b *testing.B) {
	var err error = stderrors.New("root")
	for i := 0; i < 10; i++ {
		err = errors.Wrapf(err, errors.Make(poolNotReady), "layer %d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.GetCode(err)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := errors.WithContext(errors.New(errors.Make(poolExhausted), "no idle workers"), "size", 8)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}
