package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

type Chain[T any] struct {
	ctx context.Context
	res outcome.Outcome[T]
}

func Start[T any](ctx context.Context, r outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Catching begins a chain from a computation folded via outcome.CatchingCtx.
func Catching[T any](ctx context.Context, block func(ctx context.Context) (T, error)) Chain[T] {
	return Start(ctx, outcome.CatchingCtx(ctx, block))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.res
}

// Map transforms the successful value; failures pass through. A panic in
// transform propagates.
func (c Chain[T]) Map(transform func(ctx context.Context, v T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) T {
		return transform(c.ctx, v)
	})}
}

// MapCatching transforms the successful value, folding the transform's
// error or panic into a failure under the classifier carried by the
// chain's context.
func (c Chain[T]) MapCatching(transform func(ctx context.Context, v T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	v := c.res.GetOrZero()
	return Chain[T]{ctx: c.ctx, res: outcome.CatchingCtx(c.ctx, func(ctx context.Context) (T, error) {
		return transform(ctx, v)
	})}
}

// Recover turns a failure back into a success; successes pass through.
func (c Chain[T]) Recover(transform func(ctx context.Context, err error) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Recover(c.res, func(err error) T {
		return transform(c.ctx, err)
	})}
}

// RecoverCatching is Recover with capture semantics for the transform.
func (c Chain[T]) RecoverCatching(transform func(ctx context.Context, err error) (T, error)) Chain[T] {
	if !c.res.IsFailure() {
		return c
	}
	err := c.res.Err()
	return Chain[T]{ctx: c.ctx, res: outcome.CatchingCtx(c.ctx, func(ctx context.Context) (T, error) {
		return transform(ctx, err)
	})}
}

// OnSuccess triggers a side effect on the success branch without changing
// the result.
func (c Chain[T]) OnSuccess(sideEffect func(ctx context.Context, v T)) Chain[T] {
	c.res.OnSuccess(func(v T) {
		sideEffect(c.ctx, v)
	})
	return c
}

// OnFailure triggers a side effect on the failure branch without changing
// the result.
func (c Chain[T]) OnFailure(sideEffect func(ctx context.Context, err error)) Chain[T] {
	c.res.OnFailure(func(err error) {
		sideEffect(c.ctx, err)
	})
	return c
}

// Finally collapses the chain to a final value via the branch handlers.
func (c Chain[T]) Finally(
	onSuccess func(ctx context.Context, v T) T,
	onFailure func(ctx context.Context, err error) T,
) T {
	if c.res.IsFailure() {
		return onFailure(c.ctx, c.res.Err())
	}
	return onSuccess(c.ctx, c.res.GetOrZero())
}
