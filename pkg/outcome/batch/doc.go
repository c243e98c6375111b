// Package batch applies a fallible computation to many inputs, folding
// each result into an Outcome so that no capturable failure escapes the
// batch itself.
//
// Common usage:
// - All: process a slice in order, one outcome per input
// - Run: same contract with fan-out over a fixed number of lines
// - ToChan/Collect: cancellation-aware channel adapters for producers and
//   consumers of outcomes
//
// Fatal signals keep their meaning: when a computation returns an error
// the classifier deems fatal (cancellation by default), All and Run stop
// dispatching and return it alongside the outcomes gathered so far,
// following the partial-results-plus-error convention of io.Reader.
package batch
