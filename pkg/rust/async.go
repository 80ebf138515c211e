package rust

// Pending-computation aliases. These are pure type aliases: the package
// imposes no ordering or cancellation semantics of its own, those belong to
// whoever owns the channel.

// AsyncOption denotes a computation that will resolve to an Option.
type AsyncOption[T any] = <-chan Option[T]

// AsyncResult denotes a computation that will resolve to a Result.
type AsyncResult[T, E any] = <-chan Result[T, E]
