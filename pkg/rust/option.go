package rust

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option holds either a present value (Some) or nothing (None). The tag is
// fixed at construction; combinators return fresh instances and never touch
// the receiver.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	some      bool
}

// Some constructs an Option holding value. A nil-like payload is legal but
// usually a bug, so it is reported through the package logger (nop unless
// SetLogger was called).
func Some[T any](value T) Option[T] {
	if IsNil(value) {
		logger.Warn("Some constructed with nil-like payload",
			zap.String("payload_type", fmt.Sprintf("%T", value)))
	}
	return Option[T]{
		value:     value,
		some:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{
		some:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Maybe treats a nil pointer as the absent marker: nil becomes None,
// anything else becomes Some of the pointed-to value.
func Maybe[T any](value *T) Option[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Id returns the instance id minted at construction.
func (o Option[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt returns the construction time (UTC).
func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

// Unwrap returns the payload, or panics with an UnwrapOnNone error when the
// Option is None. Callers who cannot rule None out should use UnwrapOr,
// UnwrapOrGet, or Match instead.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(UnwrapOnNone.New("called Unwrap on a None value"))
	}
	return o.value
}

// UnwrapOr returns the payload, or fallback when None. Never fails.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrGet returns the payload, or asks supplier for one. The supplier
// runs at most once and only when the Option is None.
func (o Option[T]) UnwrapOrGet(supplier func() T) T {
	if !o.some {
		return supplier()
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message. The panic carries
// exactly message, nothing else.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(errors.New(message))
	}
	return o.value
}

// Inspect invokes callback with the payload when Some, for side effects,
// and returns the receiver unchanged either way.
func (o Option[T]) Inspect(callback func(T)) Option[T] {
	if o.some {
		callback(o.value)
	}
	return o
}

// And returns other when Some, None otherwise.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return o
}

// Or returns the receiver when Some, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse is Or with a lazily supplied alternative, asked for only on None.
func (o Option[T]) OrElse(supplier func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return supplier()
}

// Xor returns whichever operand is Some when exactly one of them is; both
// Some or both None yields None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Filter keeps a Some payload only if predicate accepts it; None stays None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Ok projects the Option into a Result, fabricating a Unit error for None.
// Use OkOr or OkOrElse to attach a real error payload.
func (o Option[T]) Ok() Result[T, Unit] {
	if o.some {
		return Ok[T, Unit](o.value)
	}
	return Err[T, Unit](Unit{})
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Match dispatches to exactly one of the two arms and returns its result.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the payload when Some; None passes through and fn is never
// invoked on it.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// MapOr is Map with an eager fallback payload for the None branch. Note the
// fallback is wrapped in Some, not returned raw.
func MapOr[T, U any](o Option[T], fn func(T) U, fallback U) Option[U] {
	if !o.some {
		return Some(fallback)
	}
	return Some(fn(o.value))
}

// MapOrElse is MapOr with the fallback supplied lazily, asked for only on
// None.
func MapOrElse[T, U any](o Option[T], fn func(T) U, supplier func() U) Option[U] {
	if !o.some {
		return Some(supplier())
	}
	return Some(fn(o.value))
}

// FlatMap applies fn, which already returns an Option, so nothing gets
// double-wrapped; None passes through.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// OkOr projects the Option into a Result with err as the None payload.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err)
}

// OkOrElse is OkOr with the error supplied lazily, asked for only on None.
func OkOrElse[T, E any](o Option[T], supplier func() E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](supplier())
}

// Zip pairs the payloads when both operands are Some, and yields None when
// either is empty.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}

// Unzip splits an Option of a Pair into an Option per side; None splits
// into two Nones.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if !o.some {
		return None[A](), None[B]()
	}
	return Some(o.value.First), Some(o.value.Second)
}
