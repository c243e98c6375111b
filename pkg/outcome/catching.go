package outcome

import (
	"context"
	"fmt"
	"runtime"
)

// PanicError wraps a non-error panic value recovered by a capture helper
// together with the goroutine stack captured at the point of recovery.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// runtime.Stack truncates gracefully if the buffer is too small
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// Catching runs block and folds its result into a value: a normal return
// becomes Success, a capturable returned error or recovered panic becomes
// Fail. Fatal signals per DefaultClassifier are never captured: a fatal
// panic is re-raised, and a fatal returned error is raised as a panic,
// since Catching has no other channel to let it escape. Use Capture when
// the caller wants the fatal error back as an ordinary return instead.
func Catching[T any](block func() (T, error)) Outcome[T] {
	out, err := Capture(DefaultClassifier, block)
	if err != nil {
		panic(err)
	}
	return out
}

// CatchingCtx is Catching with a context-bound computation. The classifier
// is taken from ctx (see WithClassifier).
func CatchingCtx[T any](ctx context.Context, block func(ctx context.Context) (T, error)) Outcome[T] {
	out, err := Capture(ClassifierFrom(ctx), func() (T, error) {
		return block(ctx)
	})
	if err != nil {
		panic(err)
	}
	return out
}

// CatchingWith runs block with recv bound as its receiver argument.
// Capture semantics are identical to Catching.
func CatchingWith[R, T any](recv R, block func(recv R) (T, error)) Outcome[T] {
	return Catching(func() (T, error) {
		return block(recv)
	})
}

// Capture is the primitive behind the Catching helpers. It runs block and
// returns either the folded outcome or, when block returns an error that c
// classifies as fatal, that error unwrapped so the caller can propagate it
// through its own error return. A recovered panic that c classifies as
// fatal is re-raised; runtime.Goexit is not observable by recover and
// propagates on its own.
func Capture[T any](c Classifier, block func() (T, error)) (out Outcome[T], fatal error) {
	defer func() {
		if r := recover(); r != nil {
			if c.FatalPanic(r) {
				panic(r)
			}
			out = Fail[T](panicToError(r))
		}
	}()

	v, err := block()
	if err != nil {
		if c.FatalError(err) {
			var zero Outcome[T]
			return zero, err
		}
		return Fail[T](err), nil
	}
	return Success(v), nil
}

// panicToError keeps an error panic payload intact, so a failure re-raised
// by MustGet round-trips through a capture unchanged. Anything else is
// wrapped in a PanicError carrying the stack.
func panicToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return newPanicError(v)
}
