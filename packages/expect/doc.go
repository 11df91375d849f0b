// Package expect provides Jasmine-style expectations on top of testify.
//
// An expectation wraps one observed value and offers chainable assertions:
//
//	expect.That(t, user.Name).ToEqual("John").ToNotContain("@")
//	expect.That(t, err).ToBeA((*fs.PathError)(nil))
//
// Supported assertions:
//   - Equality and identity (ToEqual, ToBe and their negations)
//   - Truthiness and nil checks (ToBeTrue, ToBeFalse, ToBeNil, ToNotBeNil)
//   - Membership (ToContain, ToNotContain) and length (ToHaveLength)
//   - Type checks (ToBeA, ToBeAn, ToNotBeA, ToNotBeAn)
//   - Regular expressions (ToMatch, ToNotMatch)
//   - JSON and YAML documents (ToEqualJSON, ToEqualYAML, ToMatchJSONSchema, JSONPath)
//   - UUIDs (ToBeUUID)
//
// Every assertion accepts an optional trailing message, passed to testify
// unchanged, and fails through require, so the first failure stops the test.
//
// An expectation whose value denotes an error type can guard a block:
//
//	expect.That(t, (*fs.PathError)(nil)).ToBeRaisedBy(func() error {
//		_, err := os.Open("missing")
//		return err
//	})
//
// The block "raises" when it returns a non-nil error or panics. A matching
// error is swallowed, no error at all fails the test, and any other error is
// handed back (or re-panicked) unchanged.
package expect
