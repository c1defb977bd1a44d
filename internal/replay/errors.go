package replay

import (
	"errors"
	"fmt"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	ErrUnknownOperation   = errors.New("replay: Unknown operation")
	ErrMissingKey         = errors.New("replay: Missing key")
	ErrExpectOnPut        = errors.New("replay: Expectations are only allowed on get")
	ErrInvalidExpectation = errors.New("replay: Invalid expectation")
	ErrNilRunner          = errors.New("replay: Nil runner")
)

// UnexpectedResultError reports a get whose outcome differs from the
// operation's expectation.
type UnexpectedResultError struct {
	Index     int
	Operation Operation
	Got       fn.Option[string]
}

func (e *UnexpectedResultError) Error() string {
	expected := fn.MapOptionZ(e.Operation.Expect, Expectation.String)
	got := fn.ElimOption(e.Got, func() string { return "miss" }, quote)
	return fmt.Sprintf("replay: Unexpected result at operation %d (%s): expected %s, got %s",
		e.Index, e.Operation, expected, got)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
