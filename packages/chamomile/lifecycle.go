package chamomile

import (
	"testing"

	"github.com/abdul-hamid-achik/chamomile/packages/core/config"
	"github.com/stretchr/testify/suite"
)

// BeforeAllHook runs once before the first test of a suite.
type BeforeAllHook interface {
	BeforeAll()
}

// BeforeHook runs before every test.
type BeforeHook interface {
	Before()
}

// AfterHook runs after every test, whatever its outcome.
type AfterHook interface {
	After()
}

// AfterAllHook runs once after the last test of a suite.
type AfterAllHook interface {
	AfterAll()
}

// TestingSuite is a testify suite built on Test.
type TestingSuite interface {
	suite.TestingSuite
	bind(cfg *config.Config)
}

// Run loads the diagnostic settings once for the whole suite and runs s with
// suite.Run. Hooks also run when s is passed to suite.Run directly; the
// settings are then read from the environment for each expectation.
func Run(t *testing.T, s TestingSuite) {
	t.Helper()
	s.bind(config.Load())
	suite.Run(t, s)
}

// SetupSuite is called by testify; it runs BeforeAll if the suite has one.
func (x *Test) SetupSuite() {
	if h, ok := x.self.(BeforeAllHook); ok {
		h.BeforeAll()
	}
}

// SetupTest is called by testify; it runs Before if the suite has one.
func (x *Test) SetupTest() {
	if h, ok := x.self.(BeforeHook); ok {
		h.Before()
	}
}

// TearDownTest is called by testify; it runs After if the suite has one.
func (x *Test) TearDownTest() {
	if h, ok := x.self.(AfterHook); ok {
		h.After()
	}
}

// TearDownSuite is called by testify; it runs AfterAll if the suite has one.
func (x *Test) TearDownSuite() {
	if h, ok := x.self.(AfterAllHook); ok {
		h.AfterAll()
	}
}
