// Package chamomile bridges readable lifecycle hooks onto testify suites and
// gives suites Jasmine-style expectations.
//
// A suite embeds Test and defines any of BeforeAll, Before, After and AfterAll:
//
//	type UserSuite struct {
//		chamomile.Test
//		db *fakeDB
//	}
//
//	func (s *UserSuite) Before() { s.db = newFakeDB() }
//
//	func (s *UserSuite) TestLookup() {
//		s.Expect(s.db.Find("john")).ToNotBeNil()
//	}
//
//	func TestUserSuite(t *testing.T) {
//		chamomile.Run(t, new(UserSuite))
//	}
//
// Hooks run at testify's SetupSuite, SetupTest, TearDownTest and TearDownSuite.
// Each one is optional. Passing the suite to testify's suite.Run directly
// works as well.
package chamomile
