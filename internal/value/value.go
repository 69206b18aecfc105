// Package value implements the tagged Value union of spec.md §3/§4.2:
// Number, String, Boolean, Symbol, Nil, and Vector, each with a
// print form (String) and an inspect form (Inspect, used by
// get_stack-style serialization).
//
// Shaped on the teacher's internal/interp value variants, each of
// which implements a small Type()/String() interface rather than
// being a closed sum type matched with a switch — the same shape is
// used here since Go has no native sum types.
package value

// Kind names a Value's runtime tag.
type Kind string

const (
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindSymbol  Kind = "symbol"
	KindNil     Kind = "nil"
	KindVector  Kind = "vector"
)

// Value is implemented by every rstack runtime value.
type Value interface {
	// Kind reports the value's tag.
	Kind() Kind
	// String renders the value the way "."/PRINT write it: no
	// quotes around strings, vectors recursing the same way.
	String() string
	// Inspect renders the value the way get_stack serializes it for
	// a human/host to read back: strings keep their surrounding
	// quotes.
	Inspect() string
}

// Truthy reports whether v counts as true for IF (spec.md §4.5.4).
// False: Boolean(false), Number(0/1), Nil, empty String, empty Vector.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Boolean:
		return bool(t)
	case Number:
		return t.R.P != 0
	case Nil:
		return false
	case String:
		return len(t) != 0
	case Vector:
		return len(t) != 0
	default:
		return true
	}
}

// Equal reports structural equality between two Values, used by "=".
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Number:
		bv := b.(Number)
		return av.R.P*bv.R.Q == bv.R.P*av.R.Q
	case String:
		return av == b.(String)
	case Boolean:
		return av == b.(Boolean)
	case Symbol, WordRef:
		// Both spellings of a KindSymbol value compare by name,
		// regardless of whether either side is a quoted sym: literal
		// or a not-yet-dispatched identifier.
		return a.String() == b.String()
	case Nil:
		return true
	case Vector:
		bv := b.(Vector)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
