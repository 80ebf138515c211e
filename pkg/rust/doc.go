// Package rust provides two algebraic container types — Option[T] for
// presence/absence and Result[T, E] for success/failure — together with a
// uniform combinator surface, so that calling code can express "maybe a
// value" and "value or error" without nil sentinels or sentinel errors.
//
// Both families are immutable value types: every combinator returns a fresh
// instance and never touches the receiver. Type-preserving operations are
// methods; operations that change the payload type (Map, FlatMap, Zip,
// OkOr, Match) are package functions, since Go methods cannot introduce new
// type parameters.
//
// Highlights:
//   - Some/None/Maybe: construct an Option (Maybe treats a nil pointer as None)
//   - Ok/Err/OkVoid/ErrVoid/TryFrom: construct a Result
//   - Unwrap/UnwrapOr/UnwrapOrGet/Expect: extract with explicit failure rules
//   - Map/MapOr/MapOrElse/FlatMap/Filter/Zip/Unzip: transform Options
//   - Ok/OkOr/OkOrElse and Get/Fail: convert between the two families
//   - Record/HydrateOption/HydrateResult: cross an I/O boundary as plain
//     tag+payload records and come back fully capable
//
// The only failures the package raises are the unwrap-family panics
// (UnwrapOnNone, UnwrapOnErr, and Expect with a caller message); everything
// else is total. For fluent synchronous composition over Result[T, error],
// see the chain subpackage.
package rust
