package expect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBeRaisedBy_Matches(t *testing.T) {
	var zero int

	tests := []struct {
		name   string
		target any
		block  func() error
	}{
		{
			name:   "returned error",
			target: (*valueError)(nil),
			block:  func() error { return &valueError{msg: "test"} },
		},
		{
			name:   "panic with error",
			target: (*valueError)(nil),
			block:  func() error { panic(&valueError{msg: "test"}) },
		},
		{
			name:   "wrapped error",
			target: (*valueError)(nil),
			block:  func() error { return fmt.Errorf("loading: %w", &valueError{msg: "test"}) },
		},
		{
			name:   "value receiver error",
			target: codeError{},
			block:  func() error { return codeError{code: 3} },
		},
		{
			name:   "reflect type",
			target: reflect.TypeOf((**fs.PathError)(nil)).Elem(),
			block:  func() error { return &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist} },
		},
		{
			name:   "root error type matches anything",
			target: reflect.TypeOf((*error)(nil)).Elem(),
			block:  func() error { return errors.New("anything") },
		},
		{
			name:   "interface target",
			target: (*timeoutError)(nil),
			block:  func() error { return slowError{} },
		},
		{
			name:   "runtime panic",
			target: (*runtime.Error)(nil),
			block: func() error {
				_ = 4 / zero
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			err := That(r, tt.target, quiet()).ToBeRaisedBy(tt.block)

			assert.NoError(t, err)
			assert.False(t, r.Failed(), r.Output())
		})
	}
}

func TestToBeRaisedBy_SuccessNote(t *testing.T) {
	r := &recorder{}

	err := That(r, (*valueError)(nil), verbose()).ToBeRaisedBy(func() error {
		return &valueError{msg: "test"}
	})

	require.NoError(t, err)
	require.Len(t, r.logs, 1)
	assert.Equal(t, "✓ block raised a *github.com/abdul-hamid-achik/chamomile/packages/expect.valueError", r.logs[0])
}

func TestToBeRaisedBy_NothingRaised(t *testing.T) {
	r := &recorder{}
	ran := false

	err := That(r, reflect.TypeOf((*error)(nil)).Elem(), quiet()).ToBeRaisedBy(func() error {
		ran = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, r.Failed())
	assert.Equal(t, 1, r.stopped)
	assert.Contains(t, r.Output(), "expected a error")
}

func TestToBeRaisedBy_NothingRaisedWithMessage(t *testing.T) {
	r := &recorder{}

	_ = That(r, (*valueError)(nil), quiet()).ToBeRaisedBy(func() error { return nil }, "parsing %q", "x")

	assert.Contains(t, r.Output(), "expected a *github.com/abdul-hamid-achik/chamomile/packages/expect.valueError")
	assert.Contains(t, r.Output(), `parsing "x"`)
}

func TestToBeRaisedBy_ReturnedMismatchPropagates(t *testing.T) {
	r := &recorder{}
	unrelated := &runtimeError{msg: "test"}

	err := That(r, (*valueError)(nil), quiet()).ToBeRaisedBy(func() error {
		return unrelated
	})

	assert.Same(t, unrelated, err)
	assert.False(t, r.Failed(), "a mismatch is not an assertion failure")
}

func TestToBeRaisedBy_PanicMismatchPropagates(t *testing.T) {
	r := &recorder{}
	unrelated := &runtimeError{msg: "test"}

	assert.PanicsWithValue(t, unrelated, func() {
		_ = That(r, (*valueError)(nil), quiet()).ToBeRaisedBy(func() error {
			panic(unrelated)
		})
	})
	assert.False(t, r.Failed(), "a mismatch is not an assertion failure")
}

func TestToBeRaisedBy_NonErrorPanicPropagates(t *testing.T) {
	r := &recorder{}

	assert.PanicsWithValue(t, "boom", func() {
		_ = That(r, reflect.TypeOf((*error)(nil)).Elem(), quiet()).ToBeRaisedBy(func() error {
			panic("boom")
		})
	})
	assert.False(t, r.Failed())
}

func TestToBeRaisedBy_UsageError(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"int", 42},
		{"nil", nil},
		{"string", "ValueError"},
		{"non-error type", reflect.TypeOf((*point)(nil)).Elem()},
		{"pointer receiver type given as value", valueError{}},
		{"interface without Error", (*fmt.Stringer)(nil)},
		{"sentinel error", io.EOF},
		{"error value", errors.New("boom")},
		{"non-nil error pointer", &valueError{msg: "test"}},
		{"non-zero error struct", codeError{code: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			ran := false

			v := func() (v any) {
				defer func() { v = recover() }()
				_ = That(r, tt.target, quiet()).ToBeRaisedBy(func() error {
					ran = true
					return nil
				})
				return nil
			}()

			require.NotNil(t, v, "expected a panic")
			err, ok := v.(error)
			require.True(t, ok)

			var usage *UsageError
			assert.True(t, errors.As(err, &usage))
			assert.ErrorIs(t, err, ErrNotErrorType)
			assert.False(t, ran, "block must not run")
			assert.False(t, r.Failed(), "usage errors are not assertion failures")
		})
	}
}

func TestToBeRaisedBy_UsageErrorMessage(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		require.Error(t, err)
		assert.Equal(t, "expect() should have been passed an error type, not 42", err.Error())
	}()

	_ = That(&recorder{}, 42, quiet()).ToBeRaisedBy(func() error { return nil })
}

func TestToBeRaisedBy_SentinelDoesNotMatchOtherErrors(t *testing.T) {
	r := &recorder{}
	ran := false

	assert.PanicsWithError(t, "expect() should have been passed an error type, not &errors.errorString{s:\"EOF\"}", func() {
		_ = That(r, io.EOF, quiet()).ToBeRaisedBy(func() error {
			ran = true
			return errors.New("unrelated")
		})
	})
	assert.False(t, ran)
	assert.False(t, r.Failed())
}

func TestToBeRaisedBy_Goexit(t *testing.T) {
	r := &recorder{}
	done := make(chan struct{})
	after := false

	go func() {
		defer close(done)
		_ = That(r, reflect.TypeOf((*error)(nil)).Elem(), quiet()).ToBeRaisedBy(func() error {
			runtime.Goexit()
			return nil
		})
		after = true
	}()
	<-done

	assert.False(t, after, "the goroutine should exit through the guard")
	assert.False(t, r.Failed(), "an exiting test is not reported twice")
}
