package batch

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// All runs fn over every input in order and returns one outcome per input.
// Capturable failures are folded into the corresponding element and never
// escape the batch. A fatal error stops the batch: All returns the
// outcomes gathered so far together with that error. Context cancellation
// between inputs stops the batch the same way.
func All[In, Out any](ctx context.Context, inputs []In,
	fn func(ctx context.Context, in In) (Out, error)) ([]outcome.Outcome[Out], error) {

	cl := outcome.ClassifierFrom(ctx)
	results := make([]outcome.Outcome[Out], 0, len(inputs))

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, fatal := outcome.Capture(cl, func() (Out, error) {
			return fn(ctx, in)
		})
		if fatal != nil {
			return results, fatal
		}
		results = append(results, res)
	}

	return results, nil
}

// Run is All with fan-out over a fixed number of worker lines. The result
// slice preserves input order regardless of completion order. On a fatal
// error Run stops dispatching and returns the first fatal alongside the
// result slice; entries for inputs that were never processed are
// zero-value outcomes.
func Run[In, Out any](ctx context.Context, inputs []In,
	fn func(ctx context.Context, in In) (Out, error), lines int) ([]outcome.Outcome[Out], error) {

	if lines < 1 {
		lines = 1
	}

	cl := outcome.ClassifierFrom(ctx)
	results := make([]outcome.Outcome[Out], len(inputs))

	idxCh := make(chan int)
	stop := make(chan struct{})
	wg := &sync.WaitGroup{}

	var (
		once  sync.Once
		mu    sync.Mutex
		fatal error
	)
	abort := func(err error) {
		mu.Lock()
		if fatal == nil {
			fatal = err
		}
		mu.Unlock()
		once.Do(func() { close(stop) })
	}

	for n := 0; n < lines; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				res, err := outcome.Capture(cl, func() (Out, error) {
					return fn(ctx, inputs[i])
				})
				if err != nil {
					abort(err)
					return
				}
				results[i] = res
			}
		}()
	}

dispatch:
	for i := range inputs {
		select {
		case idxCh <- i:
		case <-stop:
			break dispatch
		case <-ctx.Done():
			abort(ctx.Err())
			break dispatch
		}
	}
	close(idxCh)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return results, fatal
}

// ToChan emits each value as a successful outcome, stopping early when ctx
// is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T])

	go func() {
		defer close(out)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains ch into a slice, stopping early when ctx is done and
// returning what was gathered up to that point.
func Collect[T any](ctx context.Context, ch <-chan outcome.Outcome[T]) []outcome.Outcome[T] {
	var results []outcome.Outcome[T]

	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-ctx.Done():
			return results
		}
	}
}

// Notify invokes done once per outcome drained from ch, in arrival order.
// It returns when ch closes or ctx is done.
func Notify[T any](ctx context.Context, ch <-chan outcome.Outcome[T], done outcome.Completion[T]) {
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return
			}
			done(r)
		case <-ctx.Done():
			return
		}
	}
}
