package rust

// Boundary records. An Option or Result that crosses an I/O edge travels as
// a tag+payload record with exported fields; hydrating the record on the
// other side yields a fully capable instance again. Records carry no
// behavior and no provenance stamp, only the data model.

// OptionRecord is the boundary form of an Option.
type OptionRecord[T any] struct {
	Some  bool `json:"some"`
	Value T    `json:"value,omitempty"`
}

// ResultRecord is the boundary form of a Result.
type ResultRecord[T, E any] struct {
	Ok    bool `json:"ok"`
	Value T    `json:"value,omitempty"`
	Err   E    `json:"err,omitempty"`
}

// Record strips the Option down to its tag and payload.
func (o Option[T]) Record() OptionRecord[T] {
	if !o.some {
		return OptionRecord[T]{Some: false}
	}
	return OptionRecord[T]{Some: true, Value: o.value}
}

// Record strips the Result down to its tag and payloads.
func (r Result[T, E]) Record() ResultRecord[T, E] {
	if !r.ok {
		return ResultRecord[T, E]{Ok: false, Err: r.err}
	}
	return ResultRecord[T, E]{Ok: true, Value: r.value}
}

// HydrateOption rebuilds a capable Option from a boundary record. The tag
// and payload carry over unchanged, except that a stale payload under a
// None tag is normalized to the zero value (None carries no payload in the
// data model). Hydrating the record of an already hydrated Option yields a
// behaviorally equivalent Option, so the operation is idempotent; only the
// provenance stamp is minted anew.
func HydrateOption[T any](rec OptionRecord[T]) Option[T] {
	if !rec.Some {
		return None[T]()
	}
	return Some(rec.Value)
}

// HydrateResult rebuilds a capable Result from a boundary record, with the
// same normalization and idempotence rules as HydrateOption.
func HydrateResult[T, E any](rec ResultRecord[T, E]) Result[T, E] {
	if !rec.Ok {
		return Err[T, E](rec.Err)
	}
	return Ok[T, E](rec.Value)
}
