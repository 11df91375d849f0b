package expect

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/chamomile/packages/core/config"
)

// recorder stands in for *testing.T so failures can be observed without
// failing the surrounding test. FailNow records instead of exiting.
type recorder struct {
	errors  []string
	logs    []string
	stopped int
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.stopped++
}

func (r *recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *recorder) Failed() bool {
	return len(r.errors) > 0 || r.stopped > 0
}

func (r *recorder) Output() string {
	return strings.Join(r.errors, "\n")
}

func quiet() Option {
	return WithConfig(config.DefaultConfig())
}

func verbose() Option {
	return WithConfig(&config.Config{
		Verbose: config.BoolPtr(true),
		NoColor: config.BoolPtr(true),
	})
}

// fails runs check against a fresh recorder and reports whether it failed.
func fails(t *testing.T, check func(r *recorder)) bool {
	t.Helper()
	r := &recorder{}
	check(r)
	return r.Failed()
}

type point struct {
	X, Y int
}

type valueError struct {
	msg string
}

func (e *valueError) Error() string { return "value error: " + e.msg }

type runtimeError struct {
	msg string
}

func (e *runtimeError) Error() string { return "runtime error: " + e.msg }

// codeError has a value receiver, so codeError{} itself is an error.
type codeError struct {
	code int
}

func (e codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

type timeoutError interface {
	error
	Timeout() bool
}

type slowError struct{}

func (slowError) Error() string { return "slow" }

func (slowError) Timeout() bool { return true }
