package outcome

// Map applies transform to the success value and wraps the result in a new
// success; a failure passes through with its error untouched, never
// re-wrapped. Map is fail-fast on its own transform: a panic inside it
// propagates to the caller like any ordinary sequential step.
func Map[In, Out any](r Outcome[In], transform func(v In) Out) Outcome[Out] {
	if r.isSuccess {
		return Success(transform(r.value))
	}
	return failFrom[In, Out](r)
}

// MapCatching is Map with the transform treated as a new unit of work: its
// returned error and recovered panics are folded into a failure, under the
// same fatal policy as Catching. The failure branch passes through exactly
// as in Map.
func MapCatching[In, Out any](r Outcome[In], transform func(v In) (Out, error)) Outcome[Out] {
	if r.isSuccess {
		return Catching(func() (Out, error) {
			return transform(r.value)
		})
	}
	return failFrom[In, Out](r)
}

// Recover applies transform to the captured error and wraps the result in
// a success; the success branch passes through unchanged. A panic inside
// transform propagates to the caller.
func Recover[T any](r Outcome[T], transform func(err error) T) Outcome[T] {
	if r.err != nil {
		return Success(transform(r.err))
	}
	return r
}

// RecoverCatching is Recover with capture semantics for the transform.
func RecoverCatching[T any](r Outcome[T], transform func(err error) (T, error)) Outcome[T] {
	if r.err != nil {
		return Catching(func() (T, error) {
			return transform(r.err)
		})
	}
	return r
}

// failFrom re-types a failure, keeping the error object and identity
// metadata of the original.
func failFrom[In, Out any](r Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		id:        r.id,
		createdAt: r.createdAt,
		err:       r.err,
	}
}
