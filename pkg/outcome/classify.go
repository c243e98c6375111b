package outcome

import (
	"context"
	"errors"
)

// Classifier separates fatal failures from capturable ones at the capture
// boundary. Fatal signals are never stored in an Outcome: every capture
// path re-raises them, so cancellation and process-termination semantics
// survive a Catching wrapper. What counts as fatal is host-specific, so
// the policy is swappable; see WithClassifier for a per-context override.
type Classifier interface {
	// FatalError reports whether an error returned by a computation must
	// propagate past the capture helper instead of being captured.
	FatalError(err error) bool
	// FatalPanic reports whether a recovered panic value must be re-raised.
	FatalPanic(v any) bool
}

// DefaultClassifier treats context cancellation and deadline expiry as
// fatal, for returned errors and panic values alike.
var DefaultClassifier Classifier = defaultClassifier{}

type defaultClassifier struct{}

func (defaultClassifier) FatalError(err error) bool {
	return IsCancellation(err)
}

func (defaultClassifier) FatalPanic(v any) bool {
	err, ok := v.(error)
	return ok && IsCancellation(err)
}

// CaptureAll never classifies a failure as fatal. Embedders whose
// cancellation signal does not travel through the error channel can use it
// to capture everything a computation raises.
var CaptureAll Classifier = captureAll{}

type captureAll struct{}

func (captureAll) FatalError(error) bool { return false }
func (captureAll) FatalPanic(any) bool   { return false }

// ClassifierFuncs adapts two predicates into a Classifier. A nil predicate
// classifies nothing as fatal.
type ClassifierFuncs struct {
	Err   func(err error) bool
	Panic func(v any) bool
}

func (c ClassifierFuncs) FatalError(err error) bool {
	return c.Err != nil && c.Err(err)
}

func (c ClassifierFuncs) FatalPanic(v any) bool {
	return c.Panic != nil && c.Panic(v)
}

// IsCancellation reports whether err carries a context cancellation or
// deadline signal.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
