package chain

import (
	"context"

	"github.com/Inventex-Development/rustify/pkg/rust"
)

// Chain carries a Result[T, error] together with the context it travels
// under, so application edges can compose fallible steps fluently.
type Chain[T any] struct {
	ctx context.Context
	res rust.Result[T, error]
}

// Start begins a chain from an existing Result.
func Start[T any](ctx context.Context, r rust.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue begins a chain from a plain value, wrapped as Ok.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rust.Ok[T, error](v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() rust.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a Result. An Err chain
// short-circuits: onOk is never invoked.
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) rust.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// Try composes a function that returns (T, error), like repository calls,
// lifting the pair through rust.TryFrom.
func (c Chain[T]) Try(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rust.TryFrom(try(c.ctx, c.res.Unwrap()))}
}

// Map transforms the successful value without changing its type.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rust.Ok[T, error](onOk(c.ctx, c.res.Unwrap()))}
}

// Ensure triggers side effects for whichever branch is live, without
// changing the result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.Fail().Unwrap())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Unwrap())
	}
	return c
}

// Finally collapses the chain to a final value, dispatching on the live
// branch.
func Finally[T, U any](c Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	if c.res.IsErr() {
		return onErr(c.ctx, c.res.Fail().Unwrap())
	}
	return onOk(c.ctx, c.res.Unwrap())
}
