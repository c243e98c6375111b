// Package outcome provides Outcome[T], a closed two-variant container that
// holds either a successfully computed value or a captured failure, plus a
// small algebra of transformation and inspection operations and capture
// helpers that fold a fallible computation into a value.
//
// Highlights:
// - Success/Fail/From: construct an Outcome[T]
// - MustGet/Get/GetOrZero/GetOrElse/Err: extract the value or the error
// - Map/MapCatching: transform the success value (failures pass through)
// - Recover/RecoverCatching: turn a captured failure back into a success
// - OnSuccess/OnFailure: side-effect tees that return the original outcome
// - Catching/CatchingCtx/CatchingWith/Capture: run a computation and fold
//   its result into an Outcome
//
// Operations without a Catching suffix treat their transform as part of the
// current unit of work: a panic inside the transform propagates to the
// caller like any ordinary sequential step. Catching-suffixed operations
// treat the transform as a new unit of work and fold its failure into the
// returned outcome instead.
//
// Fatal signals are never folded. A Classifier separates fatal failures
// (cancellation, deadline expiry) from capturable ones, and every capture
// path re-raises what it classifies as fatal, so wrapping a computation in
// Catching cannot silently swallow a cancellation request. The policy is
// swappable per call site via WithClassifier.
//
// The container deliberately offers no bind/flatMap. Sequential composition
// of fallible steps should use ordinary error-returning Go; outcomes are
// for aggregating and inspecting results at the edges, not for sequencing.
package outcome
