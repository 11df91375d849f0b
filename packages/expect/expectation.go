package expect

import (
	"fmt"

	"github.com/abdul-hamid-achik/chamomile/packages/core/config"
	"github.com/abdul-hamid-achik/chamomile/packages/output"
	"github.com/stretchr/testify/require"
)

// TestingT is the part of testing.TB expectations report through.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
	Logf(format string, args ...any)
}

// Option is a functional option for configuring an Expectation.
type Option func(*options)

type options struct {
	cfg *config.Config
}

// WithConfig sets the diagnostic settings. Without it, config.Load is used.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// Expectation holds one observed value and checks it against expectations.
type Expectation struct {
	t      TestingT
	value  any
	format *output.ConsoleFormatter
}

// That creates an expectation about value. Any value, nil included, is accepted.
func That(t TestingT, value any, opts ...Option) *Expectation {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg == nil {
		o.cfg = config.Load()
	}

	return &Expectation{
		t:      t,
		value:  value,
		format: output.FromConfig(o.cfg),
	}
}

// Value returns the observed value.
func (e *Expectation) Value() any {
	return e.value
}

func (e *Expectation) String() string {
	return fmt.Sprintf("<Expectation %s>", e.format.FormatValue(e.value))
}

// derive wraps another value with the same test and settings.
func (e *Expectation) derive(value any) *Expectation {
	return &Expectation{
		t:      e.t,
		value:  value,
		format: e.format,
	}
}

// ToEqual asserts that the observed value is equal to expected.
// Funcs are only equal to themselves.
func (e *Expectation) ToEqual(expected any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if isFunc(expected) || isFunc(e.value) {
		if !sameIdentity(e.value, expected) {
			require.Fail(e.t, fmt.Sprintf("Not equal: \n"+
				"expected: %s\n"+
				"actual  : %s", e.describeInstance(expected), e.describeInstance(e.value)), msgAndArgs...)
		}
		return e
	}
	require.Equal(e.t, expected, e.value, msgAndArgs...)
	return e
}

// ToNotEqual asserts that the observed value is not equal to expected.
func (e *Expectation) ToNotEqual(expected any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if isFunc(expected) || isFunc(e.value) {
		if sameIdentity(e.value, expected) {
			require.Fail(e.t, fmt.Sprintf("Should not be: %s", e.describeInstance(e.value)), msgAndArgs...)
		}
		return e
	}
	require.NotEqual(e.t, expected, e.value, msgAndArgs...)
	return e
}

// ToBe asserts that the observed value is the same instance as expected.
// Pointers, maps, channels, funcs and slices are compared by address;
// plain values, which have no identity, by ==.
func (e *Expectation) ToBe(expected any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if !sameIdentity(e.value, expected) {
		require.Fail(e.t, fmt.Sprintf("Not same: \n"+
			"expected: %s\n"+
			"actual  : %s", e.describeInstance(expected), e.describeInstance(e.value)), msgAndArgs...)
	}
	return e
}

// ToNotBe asserts that the observed value is not the same instance as expected.
func (e *Expectation) ToNotBe(expected any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if sameIdentity(e.value, expected) {
		require.Fail(e.t, fmt.Sprintf("Expected values not to be the same instance: %s",
			e.describeInstance(e.value)), msgAndArgs...)
	}
	return e
}

// ToBeTrue asserts that the observed value is truthy.
func (e *Expectation) ToBeTrue(msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if !truthy(e.value) {
		require.Fail(e.t, fmt.Sprintf("Expected %s to be truthy", e.format.FormatValue(e.value)), msgAndArgs...)
	}
	return e
}

// ToBeFalse asserts that the observed value is falsy.
func (e *Expectation) ToBeFalse(msgAndArgs ...any) *Expectation {
	e.t.Helper()
	if truthy(e.value) {
		require.Fail(e.t, fmt.Sprintf("Expected %s to be falsy", e.format.FormatValue(e.value)), msgAndArgs...)
	}
	return e
}

// ToBeNil asserts that the observed value is nil, typed nils included.
func (e *Expectation) ToBeNil(msgAndArgs ...any) *Expectation {
	e.t.Helper()
	require.Nil(e.t, e.value, msgAndArgs...)
	return e
}

// ToNotBeNil asserts that the observed value is not nil.
func (e *Expectation) ToNotBeNil(msgAndArgs ...any) *Expectation {
	e.t.Helper()
	require.NotNil(e.t, e.value, msgAndArgs...)
	return e
}

// ToContain asserts that item is in the observed value: a substring of a
// string, an element of a slice or array, or a key of a map.
func (e *Expectation) ToContain(item any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	require.Contains(e.t, e.value, item, msgAndArgs...)
	return e
}

// ToNotContain asserts that item is not in the observed value.
func (e *Expectation) ToNotContain(item any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	require.NotContains(e.t, e.value, item, msgAndArgs...)
	return e
}

// ToBeA asserts that the observed value is an instance of typ.
//
// typ may be a reflect.Type, a pointer to an interface such as
// (*io.Reader)(nil), or a value whose dynamic type is meant. Interface targets
// accept any implementation; concrete targets require the exact type.
func (e *Expectation) ToBeA(typ any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	target := e.typeArgument(typ)
	if !isInstance(e.value, target) {
		require.Fail(e.t, fmt.Sprintf("Expected %s to be an instance of %s, got %s",
			e.format.FormatValue(e.value), qualifiedName(target), dynamicTypeName(e.value)), msgAndArgs...)
	}
	return e
}

// ToBeAn is ToBeA.
func (e *Expectation) ToBeAn(typ any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	return e.ToBeA(typ, msgAndArgs...)
}

// ToNotBeA asserts that the observed value is not an instance of typ.
func (e *Expectation) ToNotBeA(typ any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	target := e.typeArgument(typ)
	if isInstance(e.value, target) {
		require.Fail(e.t, fmt.Sprintf("Expected %s not to be an instance of %s",
			e.format.FormatValue(e.value), qualifiedName(target)), msgAndArgs...)
	}
	return e
}

// ToNotBeAn is ToNotBeA.
func (e *Expectation) ToNotBeAn(typ any, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	return e.ToNotBeA(typ, msgAndArgs...)
}

func (e *Expectation) describeInstance(v any) string {
	return fmt.Sprintf("%s (%s)", e.format.FormatValue(v), dynamicTypeName(v))
}

// Success records a passing assertion that no expectation produced, e.g. at
// the end of a branch. It never fails. With verbose diagnostics the message
// is written to the test log.
func Success(t TestingT, msgAndArgs ...any) {
	t.Helper()
	SuccessWithConfig(t, config.Load(), msgAndArgs...)
}

// SuccessWithConfig is Success with explicit diagnostic settings.
func SuccessWithConfig(t TestingT, cfg *config.Config, msgAndArgs ...any) {
	t.Helper()
	output.FromConfig(cfg).Success(t, messageFromMsgAndArgs(msgAndArgs...))
}

// messageFromMsgAndArgs follows testify: a lone string is used verbatim, a
// leading format string is applied to the rest.
func messageFromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%+v", msgAndArgs)
}
