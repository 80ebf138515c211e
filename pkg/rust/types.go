package rust

// Unit is the dedicated "no payload" type: the success payload of OkVoid,
// the error payload of ErrVoid, and the sentinel error Option.Ok fabricates
// when projecting None. It exists so a missing payload never has to be
// modeled as nil.
type Unit struct{}

func (Unit) String() string {
	return "()"
}

// Pair carries the two payloads produced by Zip; Unzip splits it back.
type Pair[A, B any] struct {
	First  A
	Second B
}
