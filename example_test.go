package expected_test

import (
	"fmt"
	"strconv"

	"github.com/jmgilman/go/expected"
	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
	"github.com/jmgilman/go/expected/result"
	"github.com/jmgilman/go/expected/seq"
)

func parse(s string) expected.Result[int] {
	return expected.Lift(strconv.Atoi(s))
}

func Example() {
	sum := func(a, b string) expected.Result[int] {
		return expected.Run(func(s *expected.Scope) expected.Result[int] {
			x := expected.Await(s, parse(a))
			y := expected.Await(s, parse(b))
			return result.Success(x + y)
		})
	}

	fmt.Println(sum("1", "2"))

	r := sum("1", "two")
	fmt.Println(r)
	fmt.Println(r.Error().Message())
	// Output:
	// success(3)
	// failure(go.runtime:11)
	// invalid argument
}

type quotaExceeded struct{ used, limit int }

func (q quotaExceeded) Error() string {
	return fmt.Sprintf("quota exceeded: %d/%d", q.used, q.limit)
}

var billing = errors.NewCategory("billing", errors.MessageTable(map[int]string{
	1: "quota exceeded",
}))

func ExampleNewChain() {
	chain, err := expected.NewChain(classify.Entry{
		Name:       "billing/quota",
		Classifier: classify.MatchCode[quotaExceeded](errors.MakeCode(billing, 1)),
	})
	if err != nil {
		panic(err)
	}

	r := expected.Run(func(s *expected.Scope) expected.Result[int] {
		panic(quotaExceeded{used: 11, limit: 10})
	}, seq.WithChain(chain))

	fmt.Println(r.Error(), r.Error().Message())
	// Output: billing:1 quota exceeded
}

func ExampleCall() {
	r := expected.Run(func(s *expected.Scope) expected.Result[string] {
		name := expected.Call(s, func() expected.Result[string] {
			return result.Success("world")
		})
		return result.Success("hello " + name)
	})

	fmt.Println(r.Value())
	// Output: hello world
}
