package outcome

// Provider is the read-only view a producer hands to consumers that only
// need to inspect a completed computation.
type Provider[T any] interface {
	// Get returns the wrapped value and error
	Get() (T, error)
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// Completion is a consumer callback invoked with one outcome per completed
// computation. Implementations must check the variant before acting on the
// value.
type Completion[T any] func(Outcome[T])

var _ Provider[int] = Outcome[int]{}
