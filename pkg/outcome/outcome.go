package outcome

import (
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ErrNilFailure reports construction of a failure from a nil error.
var ErrNilFailure = errors.New("outcome: nil error passed to Fail")

// Outcome holds either a successfully computed value of type T or a
// captured failure. It is immutable once constructed; every operation
// returns a new Outcome. Construct via Success, Fail, From or the capture
// helpers. The zero value is neither variant and is not a valid outcome.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err in the failure variant. A nil err is a programming error
// at the boundary: Fail panics with ErrNilFailure.
func Fail[T any](err error) Outcome[T] {
	if err == nil {
		panic(ErrNilFailure)
	}
	return Outcome[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From adapts Go's (value, error) convention: a nil err yields Success(v),
// anything else yields Fail(err).
func From[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return o.err != nil
}

// MustGet returns the value or re-raises the captured failure by panicking
// with the wrapped error. This is the one operation that converts an
// encapsulated failure back into an ambient one.
func (o Outcome[T]) MustGet() T {
	if o.err != nil {
		panic(o.err)
	}
	return o.value
}

// Get returns the wrapped value and error.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// GetOrZero returns the value for the success variant and T's zero value
// otherwise. It never raises.
func (o Outcome[T]) GetOrZero() T {
	return o.value
}

// GetOrElse returns the value for the success variant; otherwise it invokes
// fallback with the captured error and returns its result. A panic inside
// fallback propagates to the caller, it is not re-captured.
func (o Outcome[T]) GetOrElse(fallback func(err error) T) T {
	if o.isSuccess {
		return o.value
	}
	return fallback(o.err)
}

// Err returns the captured error, or nil for the success variant.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt reports creation time (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// OnSuccess invokes sideEffect with the value when o is a success and
// returns the original outcome either way, for chaining. A panic inside
// sideEffect propagates to the caller.
func (o Outcome[T]) OnSuccess(sideEffect func(v T)) Outcome[T] {
	if o.isSuccess {
		sideEffect(o.value)
	}
	return o
}

// OnFailure mirrors OnSuccess for the failure variant.
func (o Outcome[T]) OnFailure(sideEffect func(err error)) Outcome[T] {
	if o.err != nil {
		sideEffect(o.err)
	}
	return o
}

// Equal reports whether both outcomes hold the same variant with the same
// payload. Identity metadata (ID, CreatedAt) is ignored. Failure payloads
// compare by error identity first and fall back to message equality, so an
// outcome that went through a serialization round trip still compares
// equal to the original.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.isSuccess != other.isSuccess || (o.err != nil) != (other.err != nil) {
		return false
	}
	if o.err != nil {
		// errors.Is checks comparability before ==, so uncomparable
		// error types fall through to the message comparison
		return errors.Is(o.err, other.err) || o.err.Error() == other.err.Error()
	}
	if o.isSuccess {
		return reflect.DeepEqual(o.value, other.value)
	}
	return true
}
