package rust

import (
	"time"

	"github.com/google/uuid"
)

// Unwrapper is the extraction surface shared by both families.
type Unwrapper[T any] interface {
	// Unwrap returns the payload or panics on the empty variant
	Unwrap() T
	// UnwrapOr returns the payload or fallback
	UnwrapOr(fallback T) T
	// UnwrapOrGet returns the payload or asks supplier, at most once
	UnwrapOrGet(supplier func() T) T
	// Expect is Unwrap with a caller-supplied panic message
	Expect(message string) T
}

// Stamped exposes the provenance metadata every instance carries.
type Stamped interface {
	// Id returns the instance id minted at construction
	Id() uuid.UUID
	// CreatedAt returns the construction time (UTC)
	CreatedAt() time.Time
}

var (
	_ Unwrapper[int] = Option[int]{}
	_ Unwrapper[int] = Result[int, error]{}
	_ Stamped        = Option[int]{}
	_ Stamped        = Result[int, error]{}
)
