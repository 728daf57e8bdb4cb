package seq

import (
	"testing"

	"github.com/jmgilman/go/expected/errors"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testCategory = errors.NewCategory("seqtest", errors.MessageTable(map[int]string{
	1: "step failed",
	2: "invalid input",
	3: "other failure",
}))

var (
	codeStep    = errors.MakeCode(testCategory, 1)
	codeInvalid = errors.MakeCode(testCategory, 2)
	codeOther   = errors.MakeCode(testCategory, 3)
)
