// Package config holds the diagnostic settings used by chamomile expectations.
//
// It provides functionality for:
//   - Default configuration values
//   - Parsing configuration from YAML documents
//   - Environment variable overrides (CHAMOMILE_VERBOSE, CHAMOMILE_NO_COLOR, NO_COLOR,
//     CHAMOMILE_MAX_VALUE_LENGTH)
//   - Merging configurations with explicit values taking precedence
package config
