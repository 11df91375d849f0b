package expect

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/stretchr/testify/require"
)

// raised is what a guarded block did on its way out.
type raised struct {
	err      error
	panicked bool
	value    any // recovered panic value
}

// ToBeRaisedBy asserts that block raises an error of the type the
// expectation holds, either by returning it or by panicking with it. Wrapped
// errors match as errors.As would match them.
//
// A matching error is suppressed and nil is returned. If nothing is raised
// the test fails. Any other error is not an assertion failure: a returned
// error is handed back unchanged and a panic is re-raised with its original
// value.
//
// The expectation must name an error type: a reflect.Type, a pointer to an
// interface, or a zero value such as (*fs.PathError)(nil). Anything else,
// including an error instance like io.EOF, panics with a *UsageError before
// block runs.
func (e *Expectation) ToBeRaisedBy(block func() error, msgAndArgs ...any) error {
	e.t.Helper()

	target := errorTypeArgument(e.value)
	if target == nil {
		panic(&UsageError{Err: ErrNotErrorType, Value: e.describeType(e.value)})
	}
	name := qualifiedName(target)

	r := capture(block)
	switch {
	case r.err != nil && errors.As(r.err, reflect.New(target).Interface()):
		e.format.Success(e.t, "block raised a "+name)
		return nil
	case r.panicked:
		panic(r.value)
	case r.err == nil:
		require.Fail(e.t, "expected a "+name, msgAndArgs...)
		return nil
	default:
		return r.err
	}
}

// capture runs block and recovers a panic. If block leaves through
// runtime.Goexit, as t.FailNow does, capture does not return.
func capture(block func() error) (r raised) {
	finished := false
	defer func() {
		if finished {
			return
		}
		v := recover()
		if v == nil {
			return // Goexit
		}
		r.panicked = true
		r.value = v
		r.err, _ = v.(error)
	}()

	r.err = block()
	finished = true
	return r
}

func (e *Expectation) describeType(v any) string {
	if t, ok := v.(reflect.Type); ok && t != nil {
		return fmt.Sprintf("type %s", qualifiedName(t))
	}
	return e.format.FormatValue(v)
}
