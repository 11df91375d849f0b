package chamomile

import (
	"github.com/abdul-hamid-achik/chamomile/packages/core/config"
	"github.com/abdul-hamid-achik/chamomile/packages/expect"
	"github.com/stretchr/testify/suite"
)

// Test is the base for suites. It embeds suite.Suite, so the usual testify
// helpers (s.T(), s.Require(), s.Equal, ...) remain available.
type Test struct {
	suite.Suite

	self any
	cfg  *config.Config
}

// SetS is called by suite.Run with the outer suite, whose hook methods the
// embedded Test cannot otherwise see.
func (x *Test) SetS(s suite.TestingSuite) {
	x.self = s
	x.Suite.SetS(s)
}

func (x *Test) bind(cfg *config.Config) {
	x.cfg = cfg
}

func (x *Test) config() *config.Config {
	if x.cfg == nil {
		return config.Load()
	}
	return x.cfg
}

// Expect creates an expectation about value for the running test.
func (x *Test) Expect(value any) *expect.Expectation {
	return expect.That(x.T(), value, expect.WithConfig(x.config()))
}

// Success records a passing assertion that no expectation produced.
func (x *Test) Success(msgAndArgs ...any) {
	x.T().Helper()
	expect.SuccessWithConfig(x.T(), x.config(), msgAndArgs...)
}
