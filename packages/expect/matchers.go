package expect

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// ToHaveLength asserts that the observed string, slice, array, map or channel
// has length n.
func (e *Expectation) ToHaveLength(n int, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	require.Len(e.t, e.value, n, msgAndArgs...)
	return e
}

// ToMatch asserts that the observed value matches the regular expression
// pattern. A pattern written as /.../ has its slashes removed.
func (e *Expectation) ToMatch(pattern string, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	re, ok := e.compile(pattern, msgAndArgs...)
	if !ok {
		return e
	}
	if s := stringForm(e.value); !re.MatchString(s) {
		require.Fail(e.t, fmt.Sprintf("Expected %q to match /%s/", s, re), msgAndArgs...)
	}
	return e
}

// ToNotMatch asserts that the observed value does not match pattern.
func (e *Expectation) ToNotMatch(pattern string, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	re, ok := e.compile(pattern, msgAndArgs...)
	if !ok {
		return e
	}
	if s := stringForm(e.value); re.MatchString(s) {
		require.Fail(e.t, fmt.Sprintf("Expected %q not to match /%s/", s, re), msgAndArgs...)
	}
	return e
}

func (e *Expectation) compile(pattern string, msgAndArgs ...any) (*regexp.Regexp, bool) {
	e.t.Helper()
	if len(pattern) > 1 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		pattern = pattern[1 : len(pattern)-1]
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		require.Fail(e.t, fmt.Sprintf("invalid regex pattern: %v", err), msgAndArgs...)
		return nil, false
	}
	return re, true
}

// stringForm is the text regular expressions are matched against.
func stringForm(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	return fmt.Sprintf("%v", v)
}

// ToEqualJSON asserts that the observed JSON document is equivalent to
// expected, ignoring formatting and key order.
func (e *Expectation) ToEqualJSON(expected string, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	doc, ok := e.document(msgAndArgs...)
	if !ok {
		return e
	}
	require.JSONEq(e.t, expected, string(doc), msgAndArgs...)
	return e
}

// ToEqualYAML asserts that the observed YAML document (string or []byte) is
// equivalent to expected.
func (e *Expectation) ToEqualYAML(expected string, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	var actual string
	switch v := e.value.(type) {
	case string:
		actual = v
	case []byte:
		actual = string(v)
	default:
		require.Fail(e.t, fmt.Sprintf("Expected a YAML document, got %s", e.describeInstance(e.value)), msgAndArgs...)
		return e
	}
	require.YAMLEq(e.t, expected, actual, msgAndArgs...)
	return e
}

// ToMatchJSONSchema validates the observed document against schema, given as
// a JSON string or []byte. Observed strings and byte slices are parsed as
// JSON; other values are validated as Go values.
func (e *Expectation) ToMatchJSONSchema(schema any, msgAndArgs ...any) *Expectation {
	e.t.Helper()

	var schemaLoader gojsonschema.JSONLoader
	switch s := schema.(type) {
	case string:
		schemaLoader = gojsonschema.NewStringLoader(s)
	case []byte:
		schemaLoader = gojsonschema.NewBytesLoader(s)
	default:
		schemaLoader = gojsonschema.NewGoLoader(schema)
	}

	var documentLoader gojsonschema.JSONLoader
	switch v := e.value.(type) {
	case string:
		documentLoader = gojsonschema.NewStringLoader(v)
	case []byte:
		documentLoader = gojsonschema.NewBytesLoader(v)
	case json.RawMessage:
		documentLoader = gojsonschema.NewBytesLoader(v)
	default:
		documentLoader = gojsonschema.NewGoLoader(e.value)
	}

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		require.Fail(e.t, fmt.Sprintf("schema validation error: %v", err), msgAndArgs...)
		return e
	}
	if result.Valid() {
		return e
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	require.Fail(e.t, fmt.Sprintf("schema validation failed: %s", strings.Join(errs, "; ")), msgAndArgs...)
	return e
}

// JSONPath returns an expectation about the value at path in the observed
// JSON document. Paths use gjson syntax; bracket indexes such as
// "items[0].id" are accepted. A missing path yields nil. Numbers come back
// as float64.
func (e *Expectation) JSONPath(path string, msgAndArgs ...any) *Expectation {
	e.t.Helper()
	doc, ok := e.document(msgAndArgs...)
	if !ok {
		return e.derive(nil)
	}
	if !gjson.ValidBytes(doc) {
		require.Fail(e.t, fmt.Sprintf("Expected a JSON document, got %s", e.format.FormatValue(e.value)), msgAndArgs...)
		return e.derive(nil)
	}

	parsed := gjson.ParseBytes(doc)
	path = convertBracketNotation(path)
	if path == "" {
		return e.derive(parsed.Value())
	}

	result := parsed.Get(path)
	if !result.Exists() {
		return e.derive(nil)
	}
	return e.derive(result.Value())
}

// convertBracketNotation converts array bracket notation to gjson dot notation
// e.g., "[0].id" -> "0.id", "items[0].tags[1]" -> "items.0.tags.1"
func convertBracketNotation(path string) string {
	result := bracketIndex.ReplaceAllString(path, ".$1")
	return strings.TrimPrefix(result, ".")
}

// document returns the observed value as JSON text. Strings and byte slices
// are taken as they are; anything else is marshalled.
func (e *Expectation) document(msgAndArgs ...any) ([]byte, bool) {
	e.t.Helper()
	switch v := e.value.(type) {
	case []byte:
		return v, true
	case json.RawMessage:
		return v, true
	case string:
		return []byte(v), true
	}

	doc, err := json.Marshal(e.value)
	if err != nil {
		require.Fail(e.t, fmt.Sprintf("failed to marshal observed value: %v", err), msgAndArgs...)
		return nil, false
	}
	return doc, true
}

// ToBeUUID asserts that the observed value is a uuid.UUID or a string or
// []byte holding one in any form uuid.Parse accepts.
func (e *Expectation) ToBeUUID(msgAndArgs ...any) *Expectation {
	e.t.Helper()

	var err error
	switch v := e.value.(type) {
	case uuid.UUID:
		return e
	case string:
		_, err = uuid.Parse(v)
	case []byte:
		_, err = uuid.ParseBytes(v)
	default:
		require.Fail(e.t, fmt.Sprintf("Expected a UUID, got %s", e.describeInstance(e.value)), msgAndArgs...)
		return e
	}

	if err != nil {
		require.Fail(e.t, fmt.Sprintf("Expected %s to be a UUID: %v", e.format.FormatValue(e.value), err), msgAndArgs...)
	}
	return e
}
