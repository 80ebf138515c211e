package rust

import "github.com/zeebo/errs"

// Failure classes for the unwrap family. Both signal programmer error
// (extracting from the empty variant), are raised via panic, and are never
// recovered inside this package. Expect is the exception to the class
// scheme: its contract is a panic carrying exactly the caller's message, so
// it uses a bare error instead.
var (
	// UnwrapOnNone classifies the panic raised by Option.Unwrap on None.
	UnwrapOnNone = errs.Class("unwrap on none")

	// UnwrapOnErr classifies the panic raised by Result.Unwrap on Err.
	UnwrapOnErr = errs.Class("unwrap on err")
)
