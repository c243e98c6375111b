// Package chain provides a minimal fluent Chain[T] for synchronous,
// same-type composition of Outcome[T] values.
//
// Key operations:
// - Start/FromValue/Catching: begin a chain from an outcome, a value, or a
//   computation folded via outcome.CatchingCtx
// - Map/MapCatching: transform the successful value
// - Recover/RecoverCatching: turn a failure back into a success
// - OnSuccess/OnFailure: trigger side effects without changing the result
// - Outcome/Finally: unwrap the chain or reduce it to a concrete value
//
// Catching-suffixed steps honor the classifier carried by the chain's
// context (see outcome.WithClassifier). The chain is deliberately
// same-type and offers no bind-style step: sequencing of fallible work
// belongs in ordinary error-returning code.
package chain
