package kernel

import (
	"github.com/rstack-lang/rstack/internal/value"
)

// maxSafeInteger is 2^53-1, the largest integer a host's native
// double-precision number can represent exactly (spec.md §6's
// host-number-safety note).
const maxSafeInteger = 1<<53 - 1

// SerializedValue is the wire shape of spec.md §6's get_stack() /
// get_register() tagged record: {type, value}. Vector's Value is a
// nested []SerializedValue; Number's Value is an int64 when it fits a
// safe host integer, else a string, per §6.
type SerializedValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Serialize converts one evaluator Value into its wire form.
func Serialize(v value.Value) SerializedValue {
	switch t := v.(type) {
	case value.Number:
		return SerializedValue{Type: "number", Value: serializeNumber(t)}
	case value.String:
		return SerializedValue{Type: "string", Value: string(t)}
	case value.Boolean:
		return SerializedValue{Type: "boolean", Value: bool(t)}
	case value.Symbol:
		return SerializedValue{Type: "symbol", Value: string(t)}
	case value.WordRef:
		// A dispatch-pending identifier left unresolved on the stack
		// (e.g. quoted inside a vector that was never executed) carries
		// the same wire tag as Symbol: spec.md §6 has no separate
		// "wordref" type, and to a host both are just a bare name.
		return SerializedValue{Type: "symbol", Value: string(t)}
	case value.Nil:
		return SerializedValue{Type: "nil", Value: nil}
	case value.Vector:
		out := make([]SerializedValue, len(t))
		for i, e := range t {
			out[i] = Serialize(e)
		}
		return SerializedValue{Type: "vector", Value: out}
	default:
		return SerializedValue{Type: "nil", Value: nil}
	}
}

// serializeNumber renders n as a host-native number when it fits
// exactly (denominator 1, magnitude within the safe integer range),
// else as its Rational text form ("n" or "n/d"), per spec.md §6.
func serializeNumber(n value.Number) any {
	if n.R.Q == 1 && n.R.P >= -maxSafeInteger && n.R.P <= maxSafeInteger {
		return n.R.P
	}
	return n.R.String()
}
