// Package output renders the diagnostics chamomile writes to the test log.
//
// It provides:
//   - Value summaries that keep failure and usage messages short
//   - Coloured success notes, written through the test's Logf
//
// Nothing here writes to stdout or stderr directly; the testing framework owns
// the log.
package output
