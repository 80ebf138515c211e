// Package chain provides a fluent wrapper around rust.Result[T, error]
// for building synchronous pipelines at application edges.
//
// It composes fallible steps behind a convenient Chain[T] type so callers
// do not branch on Ok/Err at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then: compose a function that already returns a Result
// - Try: compose a function returning (T, error) and lift it via TryFrom
// - Map: transform the successful value
// - Ensure: run side effects on either branch without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
