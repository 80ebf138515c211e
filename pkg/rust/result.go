package rust

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success payload (Ok) or an error payload (Err).
// E is an independent type parameter; use Unit when a branch carries no
// payload. Like Option, instances are immutable values.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Ok constructs a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err constructs a failed Result holding err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OkVoid constructs a valueless success.
func OkVoid[E any]() Result[Unit, E] {
	return Ok[Unit, E](Unit{})
}

// ErrVoid constructs a valueless failure.
func ErrVoid[T any]() Result[T, Unit] {
	return Err[T, Unit](Unit{})
}

// TryFrom lifts an idiomatic Go (value, error) pair into a Result: a nil
// error becomes Ok(value), anything else becomes Err(err).
func TryFrom[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Id returns the instance id minted at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Unwrap returns the success payload, or panics with an UnwrapOnErr error
// that embeds the textual form of the contained error, so diagnostics are
// not lost.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(UnwrapOnErr.New("called Unwrap on an Err value: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success payload, or fallback when Err. Never fails.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrGet returns the success payload, or asks supplier for one. The
// supplier runs at most once and only when the Result is Err.
func (r Result[T, E]) UnwrapOrGet(supplier func() T) T {
	if !r.ok {
		return supplier()
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied panic message. The panic carries
// exactly message; the error payload stays retrievable through Fail before
// unwrapping.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(errors.New(message))
	}
	return r.value
}

// Get projects the Result into an Option, discarding the error payload:
// Ok becomes Some, Err becomes None.
func (r Result[T, E]) Get() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Fail projects the error side into an Option: Err becomes Some of the
// error payload, Ok becomes None.
func (r Result[T, E]) Fail() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
